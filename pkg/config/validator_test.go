package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "sk-test")

	builtin := GetBuiltinConfig()
	providers := mergeProviders(builtin.Providers, nil)

	return &Config{
		Production:       DefaultProductionConfig(),
		Queue:            DefaultQueueConfig(),
		Retention:        DefaultRetentionConfig(),
		ProviderRegistry: NewProviderRegistry(providers),
	}
}

func TestValidateAll_ValidDefaults(t *testing.T) {
	cfg := validTestConfig(t)
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateProduction(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name        string
		mutate      func(*ProductionConfig)
		errContains string
	}{
		{
			name:        "coherence score above one",
			mutate:      func(p *ProductionConfig) { p.MinCoherenceScore = 1.5 },
			errContains: "min_coherence_score",
		},
		{
			name:        "zero stylized ratio",
			mutate:      func(p *ProductionConfig) { p.MinStylizedRatio = 0 },
			errContains: "min_stylized_ratio",
		},
		{
			name:        "max delay below base delay",
			mutate:      func(p *ProductionConfig) { p.RetryMaxDelay = p.RetryBaseDelay / 2 },
			errContains: "retry_max_delay",
		},
		{
			name:        "zero segment concurrency",
			mutate:      func(p *ProductionConfig) { p.SegmentConcurrency = 0 },
			errContains: "segment_concurrency",
		},
		{
			name:        "stage timeout out of range",
			mutate:      func(p *ProductionConfig) { p.StageTimeouts = map[int]time.Duration{11: time.Minute} },
			errContains: "out of range",
		},
		{
			name:        "empty banned phrase",
			mutate:      func(p *ProductionConfig) { p.BannedPhrases = []BannedPhrase{{Phrase: ""}} },
			errContains: "banned_phrases",
		},
		{
			name: "negative phrase budget",
			mutate: func(p *ProductionConfig) {
				p.BannedPhrases = []BannedPhrase{{Phrase: "x", MaxPer1000Words: intPtr(-1)}}
			},
			errContains: "max_per_1000w",
		},
		{
			name:        "negative repetition budget",
			mutate:      func(p *ProductionConfig) { p.RepetitionBudgets = map[string]int{"very": -1} },
			errContains: "repetition_budgets",
		},
		{
			name:        "missing output directory",
			mutate:      func(p *ProductionConfig) { p.OutputDirectory = "" },
			errContains: "output_directory",
		},
		{
			name:        "unknown fallback provider",
			mutate:      func(p *ProductionConfig) { p.ProviderFallbackOrder = []string{"ghost"} },
			errContains: "provider 'ghost' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig(t)
			tt.mutate(cfg.Production)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

// Zero and negative cost ceilings are both meaningful (refuse everything /
// no limit), so neither fails validation
func TestValidateProduction_CostCeilingRange(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.Production.MaxCostPerJob = 0
	require.NoError(t, NewValidator(cfg).ValidateAll())

	cfg.Production.MaxCostPerJob = -1
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateProviders(t *testing.T) {
	tests := []struct {
		name        string
		provider    ProviderConfig
		errContains string
	}{
		{
			name: "invalid type",
			provider: ProviderConfig{
				Type: "grpc", Model: "m", RPM: 1, TPM: 1,
			},
			errContains: "invalid provider type",
		},
		{
			name: "missing model",
			provider: ProviderConfig{
				Type: ProviderTypeOpenAI, RPM: 1, TPM: 1,
			},
			errContains: "model required",
		},
		{
			name: "compatible without base url",
			provider: ProviderConfig{
				Type: ProviderTypeOpenAICompatible, Model: "m", RPM: 1, TPM: 1,
			},
			errContains: "base_url required",
		},
		{
			name: "unset api key env",
			provider: ProviderConfig{
				Type: ProviderTypeOpenAI, Model: "m", APIKeyEnv: "NO_SUCH_KEY_VAR", RPM: 1, TPM: 1,
			},
			errContains: "NO_SUCH_KEY_VAR is not set",
		},
		{
			name: "zero rpm",
			provider: ProviderConfig{
				Type: ProviderTypeOpenAI, Model: "m", RPM: 0, TPM: 1,
			},
			errContains: "rpm",
		},
		{
			name: "negative pricing",
			provider: ProviderConfig{
				Type: ProviderTypeOpenAI, Model: "m", RPM: 1, TPM: 1, USDPer1KPrompt: -0.1,
			},
			errContains: "pricing cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig(t)
			bad := tt.provider
			cfg.ProviderRegistry = NewProviderRegistry(map[string]*ProviderConfig{
				"openai-mini":     mustGet(t, cfg.ProviderRegistry, "openai-mini"),
				"openai-advanced": mustGet(t, cfg.ProviderRegistry, "openai-advanced"),
				"bad":             &bad,
			})

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func mustGet(t *testing.T, r *ProviderRegistry, name string) *ProviderConfig {
	t.Helper()
	p, err := r.Get(name)
	require.NoError(t, err)
	return p
}

func TestTierUpgrade(t *testing.T) {
	assert.Equal(t, TierAdvanced, TierMini.Upgrade())
	assert.Equal(t, TierAdvanced, TierAdvanced.Upgrade())
	assert.True(t, TierMini.IsValid())
	assert.False(t, Tier("ultra").IsValid())
}
