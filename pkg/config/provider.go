package config

import (
	"fmt"
	"sync"
)

// ProviderConfig defines a model provider endpoint with its rate ceilings
// and pricing. Providers are referenced by name from the tier routing config.
type ProviderConfig struct {
	// Provider type (required)
	Type ProviderType `yaml:"type"`

	// Model identifier sent on the wire (required)
	Model string `yaml:"model"`

	// Environment variable name for the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint; required for openai_compatible
	BaseURL string `yaml:"base_url,omitempty"`

	// Rate ceilings for this model (required, positive)
	RPM int `yaml:"rpm"`
	TPM int `yaml:"tpm"`

	// Pricing in USD per 1000 tokens
	USDPer1KPrompt     float64 `yaml:"usd_per_1k_prompt"`
	USDPer1KCompletion float64 `yaml:"usd_per_1k_completion"`

	// Completion cap passed on each request; 0 means provider default
	MaxTokens int `yaml:"max_tokens,omitempty"`
}

// ProviderRegistry stores provider configurations in memory with thread-safe access
type ProviderRegistry struct {
	providers map[string]*ProviderConfig
	mu        sync.RWMutex
}

// NewProviderRegistry creates a new provider registry
func NewProviderRegistry(providers map[string]*ProviderConfig) *ProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &ProviderRegistry{
		providers: copied,
	}
}

// Get retrieves a provider configuration by name (thread-safe)
func (r *ProviderRegistry) Get(name string) (*ProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all provider configurations (thread-safe, returns copy)
func (r *ProviderRegistry) GetAll() map[string]*ProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*ProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if a provider exists in the registry (thread-safe)
func (r *ProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of providers in the registry (thread-safe)
func (r *ProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
