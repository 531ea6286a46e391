package config

// BuiltinConfig holds the configuration shipped with the binary. User YAML
// overrides entries by name; anything not overridden keeps these values.
type BuiltinConfig struct {
	Providers map[string]ProviderConfig
}

// GetBuiltinConfig returns the built-in configuration
func GetBuiltinConfig() *BuiltinConfig {
	return &BuiltinConfig{
		Providers: map[string]ProviderConfig{
			"openai-mini": {
				Type:               ProviderTypeOpenAI,
				Model:              "gpt-4o-mini",
				APIKeyEnv:          "OPENAI_API_KEY",
				RPM:                500,
				TPM:                200000,
				USDPer1KPrompt:     0.00015,
				USDPer1KCompletion: 0.0006,
				MaxTokens:          16384,
			},
			"openai-advanced": {
				Type:               ProviderTypeOpenAI,
				Model:              "gpt-4o",
				APIKeyEnv:          "OPENAI_API_KEY",
				RPM:                500,
				TPM:                450000,
				USDPer1KPrompt:     0.0025,
				USDPer1KCompletion: 0.01,
				MaxTokens:          16384,
			},
		},
	}
}

// DefaultBannedPhrases returns the built-in cliché list. All entries default
// to never-use; user config can relax individual phrases with max_per_1000w.
func DefaultBannedPhrases() []BannedPhrase {
	return []BannedPhrase{
		{Phrase: "heart pounding like a drum"},
		{Phrase: "heart hammering in her chest"},
		{Phrase: "heart hammering in his chest"},
		{Phrase: "breath caught in her throat"},
		{Phrase: "breath caught in his throat"},
		{Phrase: "sent shivers down her spine"},
		{Phrase: "sent shivers down his spine"},
		{Phrase: "time seemed to stand still"},
		{Phrase: "time stood still"},
		{Phrase: "a single tear rolled down"},
		{Phrase: "let out a breath she didn't know she was holding"},
		{Phrase: "let out a breath he didn't know he was holding"},
		{Phrase: "deafening silence"},
		{Phrase: "eyes widened in shock"},
		{Phrase: "blood ran cold"},
		{Phrase: "in that moment, everything changed"},
		{Phrase: "little did she know"},
		{Phrase: "little did he know"},
		{Phrase: "against all odds"},
		{Phrase: "the calm before the storm"},
	}
}

// DefaultRepetitionBudgets returns per-1000-word caps for words that long-form
// generation tends to overuse.
func DefaultRepetitionBudgets() map[string]int {
	return map[string]int{
		"suddenly":  2,
		"just":      8,
		"very":      6,
		"really":    5,
		"somehow":   2,
		"seemed":    4,
		"felt":      6,
		"realized":  3,
		"whispered": 3,
		"smirked":   2,
	}
}
