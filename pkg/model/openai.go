package model

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/narraforge/narraforge/pkg/config"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// providerClient speaks the chat-completions protocol against one configured
// endpoint. Retries and fallback live in the router; this type makes exactly
// one HTTP call per generate.
type providerClient struct {
	name string
	cfg  *config.ProviderConfig
	http *resty.Client
}

func newProviderClient(name string, cfg *config.ProviderConfig, timeout time.Duration) *providerClient {
	client := resty.New()
	client.SetTimeout(timeout)

	return &providerClient{
		name: name,
		cfg:  cfg,
		http: client,
	}
}

func (c *providerClient) baseURL() string {
	if c.cfg.BaseURL != "" {
		return c.cfg.BaseURL
	}
	return defaultOpenAIBaseURL
}

func (c *providerClient) apiKey() string {
	if c.cfg.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.cfg.APIKeyEnv)
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

// generate performs one chat-completion call and classifies any failure
func (c *providerClient) generate(ctx context.Context, req Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}

	messages := []map[string]string{}
	if req.System != "" {
		messages = append(messages, map[string]string{"role": "system", "content": req.System})
	}
	messages = append(messages, map[string]string{"role": "user", "content": req.User})

	body := map[string]interface{}{
		"model":       c.cfg.Model,
		"messages":    messages,
		"temperature": req.Temperature,
	}
	if maxTokens > 0 {
		body["max_tokens"] = maxTokens
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+c.apiKey()).
		SetBody(body).
		Post(c.baseURL() + "/chat/completions")

	if err != nil {
		// Context cancellation surfaces as-is so callers can distinguish
		// a cancelled job from a flaky provider
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &APIError{
			Provider: c.name,
			Model:    c.cfg.Model,
			Class:    ErrorClassTransient,
			Message:  err.Error(),
		}
	}

	if resp.StatusCode() != http.StatusOK {
		apiErr := &APIError{
			Provider:   c.name,
			Model:      c.cfg.Model,
			StatusCode: resp.StatusCode(),
			Class:      classifyStatus(resp.StatusCode()),
			Message:    truncateBody(resp.String()),
		}
		if apiErr.Class == ErrorClassRateLimited {
			apiErr.RetryAfter = parseRetryAfter(resp.Header().Get("Retry-After"))
		}
		return nil, apiErr
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, &APIError{
			Provider: c.name,
			Model:    c.cfg.Model,
			Class:    ErrorClassTransient,
			Message:  fmt.Sprintf("malformed completion body: %v", err),
		}
	}

	if len(parsed.Choices) == 0 {
		return nil, &APIError{
			Provider: c.name,
			Model:    c.cfg.Model,
			Class:    ErrorClassTransient,
			Message:  "completion returned no choices",
		}
	}

	return &Response{
		Content:          parsed.Choices[0].Message.Content,
		PromptTokens:     parsed.Usage.PromptTokens,
		CompletionTokens: parsed.Usage.CompletionTokens,
		Provider:         c.name,
		ModelID:          c.cfg.Model,
	}, nil
}

// parseRetryAfter handles the delay-seconds form of the header. The HTTP-date
// form is rare on completion APIs and falls back to zero.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func truncateBody(body string) string {
	const maxLen = 500
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}
