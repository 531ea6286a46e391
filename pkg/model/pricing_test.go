package model

import (
	"testing"

	"github.com/narraforge/narraforge/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 2, EstimateTokens("hello"))
	assert.Equal(t, 251, EstimateTokens(string(make([]byte, 1000))))
}

func TestCost(t *testing.T) {
	cfg := &config.ProviderConfig{
		USDPer1KPrompt:     0.0025,
		USDPer1KCompletion: 0.01,
	}

	assert.InDelta(t, 0.0125, Cost(cfg, 1000, 1000), 1e-9)
	assert.InDelta(t, 0.0, Cost(cfg, 0, 0), 1e-9)
	assert.InDelta(t, 0.005, Cost(cfg, 2000, 0), 1e-9)
}

func TestEstimateCost_UsesCompletionCap(t *testing.T) {
	cfg := &config.ProviderConfig{
		USDPer1KPrompt:     0.001,
		USDPer1KCompletion: 0.002,
		MaxTokens:          1000,
	}

	// Explicit request cap wins over the provider default
	withCap := EstimateCost(cfg, Request{User: "hi", MaxTokens: 500})
	withDefault := EstimateCost(cfg, Request{User: "hi"})
	assert.Less(t, withCap, withDefault)
}
