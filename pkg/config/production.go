package config

import "time"

// BannedPhrase is one entry of the cliché list. A nil MaxPer1000Words means
// never-use: any occurrence is an error. A non-nil value allows up to that
// many occurrences per 1000 words.
type BannedPhrase struct {
	Phrase          string `yaml:"phrase"`
	MaxPer1000Words *int   `yaml:"max_per_1000w,omitempty"`
}

// ProductionConfig holds the per-job pipeline policy: tier routing, budgets,
// quality gates, and retry schedule. Read once at job start and passed
// immutably; a running job never observes a config change.
type ProductionConfig struct {
	// ModelMini and ModelAdvanced name the primary provider for each tier
	ModelMini     string `yaml:"model_mini"`
	ModelAdvanced string `yaml:"model_advanced"`

	// ProviderFallbackOrder lists providers to try, in order, when the
	// tier's primary provider fails
	ProviderFallbackOrder []string `yaml:"provider_fallback_order"`

	// MaxCostPerJob is the hard USD ceiling, enforced before every model
	// call. Zero refuses all calls; negative disables the check.
	MaxCostPerJob float64 `yaml:"max_cost_per_job"`

	// MinCoherenceScore is the stage 7 gate threshold
	MinCoherenceScore float64 `yaml:"min_coherence_score"`

	// CoherenceTier selects the tier for the stage 7 validator; raise to
	// advanced when validation needs deeper judgement
	CoherenceTier Tier `yaml:"coherence_tier"`

	// Retry schedule for failed stage attempts
	MaxStageRetries int                   `yaml:"max_stage_retries"`
	RetryBaseDelay  time.Duration         `yaml:"retry_base_delay"`
	RetryMaxDelay   time.Duration         `yaml:"retry_max_delay"`
	CallTimeout     time.Duration         `yaml:"call_timeout"`
	StageTimeouts   map[int]time.Duration `yaml:"stage_timeouts,omitempty"`

	// MinStylizedRatio is the cut-detection floor: stylized output below
	// this fraction of the source word count is treated as truncation
	MinStylizedRatio float64 `yaml:"min_stylized_ratio"`

	// SegmentConcurrency bounds the stage 6 generation pool
	SegmentConcurrency int `yaml:"segment_concurrency"`

	// Text quality policy
	BannedPhrases     []BannedPhrase `yaml:"banned_phrases"`
	RepetitionBudgets map[string]int `yaml:"repetition_budgets"`

	// OutputDirectory receives one subdirectory per completed job
	OutputDirectory string `yaml:"output_directory"`
}

// DefaultProductionConfig returns the built-in production defaults.
// Provider names reference the built-in provider set.
func DefaultProductionConfig() *ProductionConfig {
	return &ProductionConfig{
		ModelMini:             "openai-mini",
		ModelAdvanced:         "openai-advanced",
		ProviderFallbackOrder: []string{},
		MaxCostPerJob:         50.0,
		MinCoherenceScore:     0.85,
		CoherenceTier:         TierMini,
		MaxStageRetries:       3,
		RetryBaseDelay:        1 * time.Second,
		RetryMaxDelay:         60 * time.Second,
		CallTimeout:           120 * time.Second,
		MinStylizedRatio:      0.95,
		SegmentConcurrency:    4,
		BannedPhrases:         DefaultBannedPhrases(),
		RepetitionBudgets:     DefaultRepetitionBudgets(),
		OutputDirectory:       "./output",
	}
}
