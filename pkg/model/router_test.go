package model

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCaller returns queued results in order, then repeats the last one
type scriptedCaller struct {
	mu      sync.Mutex
	results []scriptedResult
	calls   int
}

type scriptedResult struct {
	resp *Response
	err  error
}

func (s *scriptedCaller) generate(_ context.Context, _ Request) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	idx := s.calls - 1
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	r := s.results[idx]
	return r.resp, r.err
}

// memLedger tracks spend in memory
type memLedger struct {
	mu      sync.Mutex
	spend   map[string]float64
	records []CallRecord
}

func newMemLedger() *memLedger {
	return &memLedger{spend: make(map[string]float64)}
}

func (l *memLedger) RecordCall(_ context.Context, meta CallMeta, _, _ string, rec CallRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	if rec.ErrorClass == "" {
		l.spend[meta.JobID] += rec.USDCost
	}
	return nil
}

func (l *memLedger) JobSpend(_ context.Context, jobID string) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.spend[jobID], nil
}

func testRouterConfig(t *testing.T) *config.Config {
	t.Helper()

	providers := map[string]*config.ProviderConfig{
		"primary": {
			Type: config.ProviderTypeOpenAI, Model: "model-a",
			RPM: 6000, TPM: 10000000,
			USDPer1KPrompt: 0.001, USDPer1KCompletion: 0.002, MaxTokens: 1000,
		},
		"backup": {
			Type: config.ProviderTypeOpenAI, Model: "model-b",
			RPM: 6000, TPM: 10000000,
			USDPer1KPrompt: 0.001, USDPer1KCompletion: 0.002, MaxTokens: 1000,
		},
	}

	production := config.DefaultProductionConfig()
	production.ModelMini = "primary"
	production.ModelAdvanced = "primary"
	production.ProviderFallbackOrder = []string{"backup"}
	production.MaxCostPerJob = 1.0
	production.RetryBaseDelay = time.Millisecond
	production.RetryMaxDelay = 5 * time.Millisecond
	production.CallTimeout = time.Second

	return &config.Config{
		Production:       production,
		Queue:            config.DefaultQueueConfig(),
		Retention:        config.DefaultRetentionConfig(),
		ProviderRegistry: config.NewProviderRegistry(providers),
	}
}

func newTestRouter(cfg *config.Config, ledger Ledger, clients map[string]caller) *Router {
	return &Router{
		cfg:     cfg,
		clients: clients,
		limiter: NewRateLimiter(cfg.ProviderRegistry.GetAll()),
		breaker: NewBreaker(),
		ledger:  ledger,
		logger:  slog.Default(),
	}
}

func okResponse(provider string) *Response {
	return &Response{
		Content:          "{}",
		PromptTokens:     100,
		CompletionTokens: 50,
		Provider:         provider,
		ModelID:          "model",
	}
}

func TestRouter_SuccessRecordsLedger(t *testing.T) {
	cfg := testRouterConfig(t)
	ledger := newMemLedger()
	router := newTestRouter(cfg, ledger, map[string]caller{
		"primary": &scriptedCaller{results: []scriptedResult{{resp: okResponse("primary")}}},
		"backup":  &scriptedCaller{results: []scriptedResult{{resp: okResponse("backup")}}},
	})

	meta := CallMeta{JobID: "j1", Stage: 1, Attempt: 1, Tier: config.TierMini}
	resp, err := router.Generate(context.Background(), meta, Request{User: "go"})
	require.NoError(t, err)
	assert.Equal(t, "primary", resp.Provider)

	require.Len(t, ledger.records, 1)
	assert.Empty(t, ledger.records[0].ErrorClass)
	assert.Greater(t, ledger.records[0].USDCost, 0.0)
}

func TestRouter_TransientRetriesSameProvider(t *testing.T) {
	cfg := testRouterConfig(t)
	ledger := newMemLedger()
	primary := &scriptedCaller{results: []scriptedResult{
		{err: &APIError{Provider: "primary", Class: ErrorClassTransient, Message: "blip"}},
		{resp: okResponse("primary")},
	}}
	router := newTestRouter(cfg, ledger, map[string]caller{
		"primary": primary,
		"backup":  &scriptedCaller{results: []scriptedResult{{resp: okResponse("backup")}}},
	})

	meta := CallMeta{JobID: "j1", Stage: 2, Attempt: 1, Tier: config.TierMini}
	resp, err := router.Generate(context.Background(), meta, Request{User: "go"})
	require.NoError(t, err)
	assert.Equal(t, "primary", resp.Provider)
	assert.Equal(t, 2, primary.calls)
}

func TestRouter_PermanentFallsThroughChain(t *testing.T) {
	cfg := testRouterConfig(t)
	ledger := newMemLedger()
	primary := &scriptedCaller{results: []scriptedResult{
		{err: &APIError{Provider: "primary", StatusCode: 401, Class: ErrorClassPermanent, Message: "bad key"}},
	}}
	router := newTestRouter(cfg, ledger, map[string]caller{
		"primary": primary,
		"backup":  &scriptedCaller{results: []scriptedResult{{resp: okResponse("backup")}}},
	})

	meta := CallMeta{JobID: "j1", Stage: 1, Attempt: 1, Tier: config.TierMini}
	resp, err := router.Generate(context.Background(), meta, Request{User: "go"})
	require.NoError(t, err)
	assert.Equal(t, "backup", resp.Provider)
	assert.Equal(t, 1, primary.calls, "permanent error must not retry the same provider")
}

func TestRouter_AllProvidersFailed(t *testing.T) {
	cfg := testRouterConfig(t)
	fail := scriptedResult{err: &APIError{Class: ErrorClassPermanent, Message: "no"}}
	router := newTestRouter(cfg, newMemLedger(), map[string]caller{
		"primary": &scriptedCaller{results: []scriptedResult{fail}},
		"backup":  &scriptedCaller{results: []scriptedResult{fail}},
	})

	meta := CallMeta{JobID: "j1", Stage: 1, Attempt: 1, Tier: config.TierMini}
	_, err := router.Generate(context.Background(), meta, Request{User: "go"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
}

func TestRouter_BudgetExceededBeforeDispatch(t *testing.T) {
	cfg := testRouterConfig(t)
	cfg.Production.MaxCostPerJob = 0.001

	primary := &scriptedCaller{results: []scriptedResult{{resp: okResponse("primary")}}}
	router := newTestRouter(cfg, newMemLedger(), map[string]caller{
		"primary": primary,
		"backup":  primary,
	})

	meta := CallMeta{JobID: "j1", Stage: 6, Attempt: 1, Tier: config.TierAdvanced}
	_, err := router.Generate(context.Background(), meta, Request{User: "long prompt", MaxTokens: 1000})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Zero(t, primary.calls, "budget check must happen before dispatch")
}

// A zero ceiling refuses the very first call: nothing reaches a provider
// and the ledger stays empty
func TestRouter_ZeroBudgetRefusesFirstCall(t *testing.T) {
	cfg := testRouterConfig(t)
	cfg.Production.MaxCostPerJob = 0.0

	primary := &scriptedCaller{results: []scriptedResult{{resp: okResponse("primary")}}}
	ledger := newMemLedger()
	router := newTestRouter(cfg, ledger, map[string]caller{
		"primary": primary,
		"backup":  primary,
	})

	meta := CallMeta{JobID: "j1", Stage: 1, Attempt: 1, Tier: config.TierMini}
	_, err := router.Generate(context.Background(), meta, Request{User: "go"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Zero(t, primary.calls, "zero ceiling must refuse before dispatch")
	assert.Empty(t, ledger.records, "refused calls must not reach the ledger")
}

func TestRouter_NegativeBudgetDisablesCeiling(t *testing.T) {
	cfg := testRouterConfig(t)
	cfg.Production.MaxCostPerJob = -1

	router := newTestRouter(cfg, newMemLedger(), map[string]caller{
		"primary": &scriptedCaller{results: []scriptedResult{{resp: okResponse("primary")}}},
		"backup":  &scriptedCaller{results: []scriptedResult{{resp: okResponse("backup")}}},
	})

	meta := CallMeta{JobID: "j1", Stage: 1, Attempt: 1, Tier: config.TierMini}
	resp, err := router.Generate(context.Background(), meta, Request{User: "go"})
	require.NoError(t, err)
	assert.Equal(t, "primary", resp.Provider)
}

func TestRouter_CancelledContext(t *testing.T) {
	cfg := testRouterConfig(t)
	router := newTestRouter(cfg, newMemLedger(), map[string]caller{
		"primary": &scriptedCaller{results: []scriptedResult{{resp: okResponse("primary")}}},
		"backup":  &scriptedCaller{results: []scriptedResult{{resp: okResponse("backup")}}},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	meta := CallMeta{JobID: "j1", Stage: 1, Attempt: 1, Tier: config.TierMini}
	_, err := router.Generate(ctx, meta, Request{User: "go"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRouter_ProviderChainOrder(t *testing.T) {
	cfg := testRouterConfig(t)
	router := newTestRouter(cfg, newMemLedger(), map[string]caller{})

	chain := router.providerChain(config.TierMini)
	assert.Equal(t, []string{"primary", "backup"}, chain)

	// Primary never appears twice even when listed in the fallback order
	cfg.Production.ProviderFallbackOrder = []string{"primary", "backup"}
	chain = router.providerChain(config.TierMini)
	assert.Equal(t, []string{"primary", "backup"}, chain)
}
