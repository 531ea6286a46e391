package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/narraforge/narraforge/pkg/model"
)

// countingClient returns a fixed completion size per call
type countingClient struct {
	mu         sync.Mutex
	calls      int
	completion int
}

func (c *countingClient) Generate(_ context.Context, _ model.CallMeta, _ model.Request) (*model.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return &model.Response{Content: "{}", CompletionTokens: c.completion}, nil
}

// multiCallAgent drives its own call pattern: a fixed number of model calls
// per attempt, like the prose stages
type multiCallAgent struct {
	calls int
}

func (a *multiCallAgent) Name() string               { return "multi-call" }
func (a *multiCallAgent) Stage() int                 { return 6 }
func (a *multiCallAgent) RequiredKeys() []string     { return nil }
func (a *multiCallAgent) ProducedKey() string        { return "multi_call_output" }
func (a *multiCallAgent) PreferredTier() config.Tier { return config.TierAdvanced }
func (a *multiCallAgent) SystemPrompt() string       { return "write" }

func (a *multiCallAgent) BuildUserPrompt(*Context) (string, error) {
	return "", fmt.Errorf("multi-call drives its own call pattern")
}

func (a *multiCallAgent) Parse(raw string) (any, error) { return raw, nil }
func (a *multiCallAgent) Validate(any, *Context) error  { return nil }

func (a *multiCallAgent) Execute(ctx context.Context, env *Env, pc *Context) (json.RawMessage, error) {
	for i := 0; i < a.calls; i++ {
		if _, err := env.Generate(ctx, a.Stage(), model.Request{User: "segment"}); err != nil {
			return nil, err
		}
	}
	return json.RawMessage(`{"segments":[]}`), nil
}

// Executor stages size their context entry by the completion tokens of every
// call they made, same as the default flow does for its single call
func TestRunAttempt_ExecutorSumsCompletionTokens(t *testing.T) {
	client := &countingClient{completion: 40}
	runner := NewRunner(client, &config.Config{Production: config.DefaultProductionConfig()}, nil, nil)

	result, err := runner.RunAttempt(context.Background(), &multiCallAgent{calls: 3},
		NewContext(), "job-tokens", 1, config.TierAdvanced, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
	assert.Equal(t, 120, result.Tokens)
}

func TestEnv_GenerateCarriesCallMeta(t *testing.T) {
	var got model.CallMeta
	client := clientFunc(func(_ context.Context, meta model.CallMeta, _ model.Request) (*model.Response, error) {
		got = meta
		return &model.Response{Content: "{}", CompletionTokens: 7}, nil
	})

	env := &Env{Client: client, JobID: "job-meta", Attempt: 2, Tier: config.TierMini}
	_, err := env.Generate(context.Background(), 8, model.Request{User: "rewrite"})
	require.NoError(t, err)

	assert.Equal(t, model.CallMeta{JobID: "job-meta", Stage: 8, Attempt: 2, Tier: config.TierMini}, got)
	assert.Equal(t, 7, env.CompletionTokens())
}

// clientFunc adapts a function to model.Client
type clientFunc func(context.Context, model.CallMeta, model.Request) (*model.Response, error)

func (f clientFunc) Generate(ctx context.Context, meta model.CallMeta, req model.Request) (*model.Response, error) {
	return f(ctx, meta, req)
}
