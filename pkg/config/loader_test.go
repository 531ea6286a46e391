package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, mainYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "narraforge.yaml"), []byte(mainYAML), 0o644))
	if providersYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "providers.yaml"), []byte(providersYAML), 0o644))
	}
	return dir
}

func TestInitialize_DefaultsApplied(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	dir := writeConfigDir(t, "production: {}\n", "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "openai-mini", cfg.Production.ModelMini)
	assert.Equal(t, "openai-advanced", cfg.Production.ModelAdvanced)
	assert.Equal(t, 0.85, cfg.Production.MinCoherenceScore)
	assert.Equal(t, 3, cfg.Production.MaxStageRetries)
	assert.Equal(t, 120*time.Second, cfg.Production.CallTimeout)
	assert.Equal(t, 0.95, cfg.Production.MinStylizedRatio)
	assert.NotEmpty(t, cfg.Production.BannedPhrases)
	assert.NotEmpty(t, cfg.Production.RepetitionBudgets)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 180, cfg.Retention.JobRetentionDays)
	assert.Equal(t, 2, cfg.ProviderRegistry.Len())
}

func TestInitialize_UserOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	mainYAML := `
production:
  min_coherence_score: 0.9
  max_cost_per_job: 10
  segment_concurrency: 8
queue:
  worker_count: 4
  max_concurrent_jobs: 4
retention:
  job_retention_days: 30
`
	dir := writeConfigDir(t, mainYAML, "")

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.Production.MinCoherenceScore)
	assert.Equal(t, 10.0, cfg.Production.MaxCostPerJob)
	assert.Equal(t, 8, cfg.Production.SegmentConcurrency)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, 30, cfg.Retention.JobRetentionDays)

	// Unset values keep defaults
	assert.Equal(t, 3, cfg.Production.MaxStageRetries)
	assert.Equal(t, 5*time.Minute, cfg.Queue.OrphanThreshold)
}

func TestInitialize_CustomProviderWithEnvExpansion(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LOCAL_LLM_KEY", "local-secret")
	t.Setenv("LOCAL_LLM_URL", "http://llm.internal:8000/v1")

	providersYAML := `
providers:
  local-vllm:
    type: openai_compatible
    model: qwen2.5-72b
    api_key_env: LOCAL_LLM_KEY
    base_url: "{{.LOCAL_LLM_URL}}"
    rpm: 100
    tpm: 100000
    usd_per_1k_prompt: 0
    usd_per_1k_completion: 0
`
	mainYAML := `
production:
  model_advanced: local-vllm
`
	dir := writeConfigDir(t, mainYAML, providersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	provider, err := cfg.GetProvider("local-vllm")
	require.NoError(t, err)
	assert.Equal(t, ProviderTypeOpenAICompatible, provider.Type)
	assert.Equal(t, "http://llm.internal:8000/v1", provider.BaseURL)
	assert.Equal(t, "local-vllm", cfg.TierProvider(TierAdvanced))
	assert.Equal(t, "openai-mini", cfg.TierProvider(TierMini))
}

func TestInitialize_MissingMainFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, "production: [not a map\n", "")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitialize_UnknownTierProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	dir := writeConfigDir(t, "production:\n  model_mini: nope\n", "")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider 'nope' not found")
}
