package config

import (
	"fmt"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast, stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Providers first so tier references validate against a known-good set
	if err := v.validateProviders(); err != nil {
		return fmt.Errorf("provider validation failed: %w", err)
	}

	if err := v.validateProduction(); err != nil {
		return fmt.Errorf("production validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateProviders() error {
	for name, provider := range v.cfg.ProviderRegistry.GetAll() {
		if !provider.Type.IsValid() {
			return NewValidationError("provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		if provider.Model == "" {
			return NewValidationError("provider", name, "model", fmt.Errorf("model required"))
		}

		// openai_compatible endpoints have no well-known default URL
		if provider.Type == ProviderTypeOpenAICompatible && provider.BaseURL == "" {
			return NewValidationError("provider", name, "base_url", fmt.Errorf("base_url required for openai_compatible providers"))
		}

		if provider.APIKeyEnv != "" {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}

		if provider.RPM <= 0 {
			return NewValidationError("provider", name, "rpm", fmt.Errorf("must be positive"))
		}
		if provider.TPM <= 0 {
			return NewValidationError("provider", name, "tpm", fmt.Errorf("must be positive"))
		}

		if provider.USDPer1KPrompt < 0 || provider.USDPer1KCompletion < 0 {
			return NewValidationError("provider", name, "pricing", fmt.Errorf("pricing cannot be negative"))
		}

		if provider.MaxTokens < 0 {
			return NewValidationError("provider", name, "max_tokens", fmt.Errorf("cannot be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateProduction() error {
	p := v.cfg.Production

	// Tier primaries must reference known providers
	if p.ModelMini == "" {
		return NewValidationError("production", "tiers", "model_mini", fmt.Errorf("required"))
	}
	if !v.cfg.ProviderRegistry.Has(p.ModelMini) {
		return NewValidationError("production", "tiers", "model_mini", fmt.Errorf("provider '%s' not found", p.ModelMini))
	}
	if p.ModelAdvanced == "" {
		return NewValidationError("production", "tiers", "model_advanced", fmt.Errorf("required"))
	}
	if !v.cfg.ProviderRegistry.Has(p.ModelAdvanced) {
		return NewValidationError("production", "tiers", "model_advanced", fmt.Errorf("provider '%s' not found", p.ModelAdvanced))
	}

	for _, name := range p.ProviderFallbackOrder {
		if !v.cfg.ProviderRegistry.Has(name) {
			return NewValidationError("production", "tiers", "provider_fallback_order", fmt.Errorf("provider '%s' not found", name))
		}
	}

	// MaxCostPerJob: any value is meaningful (zero refuses all calls,
	// negative disables the ceiling), so nothing to validate

	if p.MinCoherenceScore < 0 || p.MinCoherenceScore > 1 {
		return NewValidationError("production", "quality", "min_coherence_score", fmt.Errorf("must be in [0,1]"))
	}

	if !p.CoherenceTier.IsValid() {
		return NewValidationError("production", "quality", "coherence_tier", fmt.Errorf("unknown tier %q", p.CoherenceTier))
	}

	if p.MinStylizedRatio <= 0 || p.MinStylizedRatio > 1 {
		return NewValidationError("production", "quality", "min_stylized_ratio", fmt.Errorf("must be in (0,1]"))
	}

	if p.MaxStageRetries < 0 {
		return NewValidationError("production", "retry", "max_stage_retries", fmt.Errorf("cannot be negative"))
	}
	if p.RetryBaseDelay <= 0 {
		return NewValidationError("production", "retry", "retry_base_delay", fmt.Errorf("must be positive"))
	}
	if p.RetryMaxDelay < p.RetryBaseDelay {
		return NewValidationError("production", "retry", "retry_max_delay", fmt.Errorf("cannot be below retry_base_delay"))
	}
	if p.CallTimeout <= 0 {
		return NewValidationError("production", "retry", "call_timeout", fmt.Errorf("must be positive"))
	}

	if p.SegmentConcurrency < 1 {
		return NewValidationError("production", "generation", "segment_concurrency", fmt.Errorf("must be at least 1"))
	}

	for stage, timeout := range p.StageTimeouts {
		if stage < 1 || stage > 10 {
			return NewValidationError("production", "timeouts", "stage_timeouts", fmt.Errorf("stage %d out of range 1..10", stage))
		}
		if timeout <= 0 {
			return NewValidationError("production", "timeouts", "stage_timeouts", fmt.Errorf("stage %d timeout must be positive", stage))
		}
	}

	for i, bp := range p.BannedPhrases {
		if bp.Phrase == "" {
			return NewValidationError("production", "quality", fmt.Sprintf("banned_phrases[%d].phrase", i), fmt.Errorf("required"))
		}
		if bp.MaxPer1000Words != nil && *bp.MaxPer1000Words < 0 {
			return NewValidationError("production", "quality", fmt.Sprintf("banned_phrases[%d].max_per_1000w", i), fmt.Errorf("cannot be negative"))
		}
	}

	for word, budget := range p.RepetitionBudgets {
		if word == "" {
			return NewValidationError("production", "quality", "repetition_budgets", fmt.Errorf("empty word"))
		}
		if budget < 0 {
			return NewValidationError("production", "quality", "repetition_budgets", fmt.Errorf("budget for '%s' cannot be negative", word))
		}
	}

	if p.OutputDirectory == "" {
		return NewValidationError("production", "output", "output_directory", fmt.Errorf("required"))
	}

	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "pool", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentJobs < 1 {
		return NewValidationError("queue", "pool", "max_concurrent_jobs", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "pool", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.JobTimeout <= 0 {
		return NewValidationError("queue", "pool", "job_timeout", fmt.Errorf("must be positive"))
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "pool", "heartbeat_interval", fmt.Errorf("must be positive"))
	}
	if q.OrphanThreshold <= 0 {
		return NewValidationError("queue", "pool", "orphan_threshold", fmt.Errorf("must be positive"))
	}

	return nil
}
