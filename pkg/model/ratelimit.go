package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/narraforge/narraforge/pkg/config"
	"golang.org/x/time/rate"
)

// RateLimiter enforces per-provider RPM and TPM ceilings. Token quota is
// reserved before dispatch using the caller's estimate; long-form stages
// block here rather than burning 429s at the provider.
type RateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*providerLimiter
}

type providerLimiter struct {
	requests *rate.Limiter
	tokens   *rate.Limiter
}

// NewRateLimiter builds limiters for every configured provider
func NewRateLimiter(providers map[string]*config.ProviderConfig) *RateLimiter {
	limiters := make(map[string]*providerLimiter, len(providers))

	for name, cfg := range providers {
		rps := float64(cfg.RPM) / 60.0
		requestBurst := max(1, cfg.RPM/30) // two seconds of quota

		tps := float64(cfg.TPM) / 60.0
		// Burst must cover the largest single reservation or WaitN blocks forever
		tokenBurst := max(cfg.TPM/4, 1)

		limiters[name] = &providerLimiter{
			requests: rate.NewLimiter(rate.Limit(rps), requestBurst),
			tokens:   rate.NewLimiter(rate.Limit(tps), tokenBurst),
		}
	}

	return &RateLimiter{limiters: limiters}
}

// Wait blocks until the provider has request and token quota available.
// estimatedTokens above the token burst is clamped rather than rejected;
// the ceiling is advisory pacing, not a hard per-call cap.
func (l *RateLimiter) Wait(ctx context.Context, provider string, estimatedTokens int) error {
	l.mu.RLock()
	limiter, exists := l.limiters[provider]
	l.mu.RUnlock()

	if !exists {
		return fmt.Errorf("no rate limiter for provider %s", provider)
	}

	if err := limiter.requests.Wait(ctx); err != nil {
		return fmt.Errorf("request rate limit wait: %w", err)
	}

	if estimatedTokens > 0 {
		n := min(estimatedTokens, limiter.tokens.Burst())
		if err := limiter.tokens.WaitN(ctx, n); err != nil {
			return fmt.Errorf("token budget wait: %w", err)
		}
	}

	return nil
}
