package config

// Tier identifies a model capability tier. Routine stages run on the mini
// tier; long-form generation and stylization require advanced.
type Tier string

const (
	TierMini     Tier = "mini"
	TierAdvanced Tier = "advanced"
)

// IsValid checks if the tier is a known value
func (t Tier) IsValid() bool {
	switch t {
	case TierMini, TierAdvanced:
		return true
	}
	return false
}

// Upgrade returns the next tier up, or the same tier if already at the top
func (t Tier) Upgrade() Tier {
	if t == TierMini {
		return TierAdvanced
	}
	return t
}

// ProviderType identifies the wire protocol a provider speaks
type ProviderType string

const (
	// ProviderTypeOpenAI is the hosted OpenAI API
	ProviderTypeOpenAI ProviderType = "openai"

	// ProviderTypeOpenAICompatible is any endpoint speaking the
	// chat-completions protocol (vLLM, Ollama, gateway proxies)
	ProviderTypeOpenAICompatible ProviderType = "openai_compatible"
)

// IsValid checks if the provider type is a known value
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeOpenAI, ProviderTypeOpenAICompatible:
		return true
	}
	return false
}
