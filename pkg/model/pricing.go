package model

import "github.com/narraforge/narraforge/pkg/config"

// EstimateTokens approximates the token count of a prompt. The 4-bytes-per-
// token heuristic overestimates for dense prose, which is the safe direction
// for budget pre-checks and TPM reservations.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return len(text)/4 + 1
}

// Cost computes the USD cost of a call from the provider's pricing table
func Cost(cfg *config.ProviderConfig, promptTokens, completionTokens int) float64 {
	return float64(promptTokens)/1000.0*cfg.USDPer1KPrompt +
		float64(completionTokens)/1000.0*cfg.USDPer1KCompletion
}

// EstimateCost computes the worst-case USD cost of a pending call: the
// estimated prompt plus the full completion cap.
func EstimateCost(cfg *config.ProviderConfig, req Request) float64 {
	promptTokens := EstimateTokens(req.System) + EstimateTokens(req.User)

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = cfg.MaxTokens
	}

	return Cost(cfg, promptTokens, maxTokens)
}
