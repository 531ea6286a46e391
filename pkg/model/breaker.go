package model

import (
	"sync"
	"time"
)

type breakerState int

const (
	breakerClosed breakerState = iota
	breakerOpen
	breakerHalfOpen
)

const (
	// defaultFailureThreshold is the consecutive transient failures that
	// open a provider's breaker
	defaultFailureThreshold = 5

	// defaultCooldown is how long an open breaker rejects calls before
	// allowing one probe
	defaultCooldown = 30 * time.Second
)

// Breaker tracks per-provider circuit state. Only transient and rate-limited
// failures count toward opening; permanent errors say nothing about provider
// health.
type Breaker struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	circuits  map[string]*circuit
}

type circuit struct {
	state    breakerState
	failures int
	openedAt time.Time
}

// NewBreaker creates a breaker with default thresholds
func NewBreaker() *Breaker {
	return &Breaker{
		threshold: defaultFailureThreshold,
		cooldown:  defaultCooldown,
		circuits:  make(map[string]*circuit),
	}
}

// NewBreakerWithConfig creates a breaker with explicit thresholds (for tests)
func NewBreakerWithConfig(threshold int, cooldown time.Duration) *Breaker {
	return &Breaker{
		threshold: threshold,
		cooldown:  cooldown,
		circuits:  make(map[string]*circuit),
	}
}

// Allow reports whether a call to the provider may proceed. An open circuit
// transitions to half-open after the cooldown, admitting a single probe.
func (b *Breaker) Allow(provider string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.circuit(provider)

	switch c.state {
	case breakerClosed:
		return true
	case breakerOpen:
		if time.Since(c.openedAt) >= b.cooldown {
			c.state = breakerHalfOpen
			return true
		}
		return false
	case breakerHalfOpen:
		// One probe at a time; callers racing here just retry later
		return false
	}
	return true
}

// RecordSuccess closes the circuit and resets the failure count
func (b *Breaker) RecordSuccess(provider string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.circuit(provider)
	c.state = breakerClosed
	c.failures = 0
}

// RecordFailure counts a classified failure. Transient and rate-limited
// failures advance toward open; a failed half-open probe re-opens immediately.
func (b *Breaker) RecordFailure(provider string, class ErrorClass) {
	if !IsRetryableClass(class) {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c := b.circuit(provider)

	if c.state == breakerHalfOpen {
		c.state = breakerOpen
		c.openedAt = time.Now()
		return
	}

	c.failures++
	if c.failures >= b.threshold {
		c.state = breakerOpen
		c.openedAt = time.Now()
	}
}

func (b *Breaker) circuit(provider string) *circuit {
	c, exists := b.circuits[provider]
	if !exists {
		c = &circuit{state: breakerClosed}
		b.circuits[provider] = c
	}
	return c
}
