package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/narraforge/narraforge/pkg/config"
)

// maxTransientAttempts bounds same-provider retries for transient failures.
// Stage-level retry policy lives in the orchestrator; this only smooths over
// brief provider blips before falling through the chain.
const maxTransientAttempts = 3

// caller abstracts the HTTP client so router tests can script providers
type caller interface {
	generate(ctx context.Context, req Request) (*Response, error)
}

// Router is the production Client: resolves a tier to its provider fallback
// chain and dispatches with rate limiting, circuit breaking, and budget
// enforcement. Every call lands in the ledger.
type Router struct {
	cfg     *config.Config
	clients map[string]caller
	limiter *RateLimiter
	breaker *Breaker
	ledger  Ledger
	logger  *slog.Logger
}

// NewRouter creates a router over all configured providers
func NewRouter(cfg *config.Config, ledger Ledger) *Router {
	providers := cfg.ProviderRegistry.GetAll()

	clients := make(map[string]caller, len(providers))
	for name, p := range providers {
		clients[name] = newProviderClient(name, p, cfg.Production.CallTimeout)
	}

	return &Router{
		cfg:     cfg,
		clients: clients,
		limiter: NewRateLimiter(providers),
		breaker: NewBreaker(),
		ledger:  ledger,
		logger:  slog.With("component", "model.router"),
	}
}

// providerChain returns the ordered providers for a tier: the tier's primary
// first, then the configured fallback order with duplicates removed
func (r *Router) providerChain(tier config.Tier) []string {
	primary := r.cfg.TierProvider(tier)
	chain := []string{primary}
	for _, name := range r.cfg.Production.ProviderFallbackOrder {
		if name != primary {
			chain = append(chain, name)
		}
	}
	return chain
}

// Generate dispatches one request to the tier's provider chain
func (r *Router) Generate(ctx context.Context, meta CallMeta, req Request) (*Response, error) {
	chain := r.providerChain(meta.Tier)
	log := r.logger.With("job_id", meta.JobID, "stage", meta.Stage, "tier", meta.Tier)

	// Budget pre-check: the worst-case cost of this call must fit under the
	// ceiling before anything is sent. A zero ceiling refuses every call;
	// only a negative ceiling disables the check.
	if r.cfg.Production.MaxCostPerJob >= 0 {
		spend, err := r.ledger.JobSpend(ctx, meta.JobID)
		if err != nil {
			return nil, fmt.Errorf("failed to check job spend: %w", err)
		}

		primaryCfg, err := r.cfg.GetProvider(chain[0])
		if err != nil {
			return nil, err
		}

		estimate := EstimateCost(primaryCfg, req)
		if spend+estimate > r.cfg.Production.MaxCostPerJob {
			return nil, fmt.Errorf("%w: spent $%.4f, call estimate $%.4f, ceiling $%.2f",
				ErrBudgetExceeded, spend, estimate, r.cfg.Production.MaxCostPerJob)
		}
	}

	var lastErr error
	for _, name := range chain {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if !r.breaker.Allow(name) {
			log.Warn("Skipping provider, circuit open", "provider", name)
			lastErr = fmt.Errorf("provider %s: circuit open", name)
			continue
		}

		providerCfg, err := r.cfg.GetProvider(name)
		if err != nil {
			return nil, err
		}

		resp, err := r.callProvider(ctx, name, providerCfg, meta, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			// Cancellation or ledger failure; falling through the chain
			// would not help
			return nil, err
		}
		log.Warn("Provider failed, trying next in chain",
			"provider", name,
			"error_class", apiErr.Class,
			"error", apiErr.Message)
	}

	return nil, fmt.Errorf("%w (tier %s): %w", ErrAllProvidersFailed, meta.Tier, lastErr)
}

// callProvider runs one provider with bounded transient retries. Rate-limit
// waits honor Retry-After when the provider supplies it.
func (r *Router) callProvider(ctx context.Context, name string, providerCfg *config.ProviderConfig, meta CallMeta, req Request) (*Response, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = providerCfg.MaxTokens
	}
	estimatedTokens := EstimateTokens(req.System) + EstimateTokens(req.User) + maxTokens

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.cfg.Production.RetryBaseDelay
	bo.MaxInterval = r.cfg.Production.RetryMaxDelay
	bo.MaxElapsedTime = 0 // attempts are bounded, not elapsed time

	for attempt := 1; ; attempt++ {
		if err := r.limiter.Wait(ctx, name, estimatedTokens); err != nil {
			return nil, err
		}

		callCtx, cancel := context.WithTimeout(ctx, r.cfg.Production.CallTimeout)
		start := time.Now()
		resp, err := r.clients[name].generate(callCtx, req)
		cancel()
		duration := time.Since(start)

		if err == nil {
			cost := Cost(providerCfg, resp.PromptTokens, resp.CompletionTokens)
			r.breaker.RecordSuccess(name)

			rec := CallRecord{
				PromptTokens:     resp.PromptTokens,
				CompletionTokens: resp.CompletionTokens,
				USDCost:          cost,
				Duration:         duration,
			}
			if lerr := r.ledger.RecordCall(ctx, meta, name, providerCfg.Model, rec); lerr != nil {
				return nil, lerr
			}
			return resp, nil
		}

		// The per-call timeout is a provider problem; parent cancellation
		// is not
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = &APIError{
				Provider: name,
				Model:    providerCfg.Model,
				Class:    ErrorClassTransient,
				Message:  "call timeout",
			}
		}

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			return nil, err
		}

		r.breaker.RecordFailure(name, apiErr.Class)
		rec := CallRecord{Duration: duration, ErrorClass: string(apiErr.Class)}
		if lerr := r.ledger.RecordCall(ctx, meta, name, providerCfg.Model, rec); lerr != nil {
			r.logger.Error("Failed to record failed call", "provider", name, "error", lerr)
		}

		if !IsRetryableClass(apiErr.Class) || attempt >= maxTransientAttempts {
			return nil, apiErr
		}

		wait := bo.NextBackOff()
		if apiErr.RetryAfter > wait {
			wait = apiErr.RetryAfter
		}

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
