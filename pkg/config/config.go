package config

// Config is the umbrella configuration object that encapsulates registries,
// policy blocks, and configuration state. This is the primary object
// returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Production policy: tiers, budgets, quality gates, retry schedule
	Production *ProductionConfig

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Data retention and cleanup
	Retention *RetentionConfig

	// Additional WebSocket origin patterns
	AllowedWSOrigins []string

	// Model provider registry
	ProviderRegistry *ProviderRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Providers         int
	BannedPhrases     int
	RepetitionBudgets int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ProviderRegistry != nil {
		s.Providers = c.ProviderRegistry.Len()
	}
	if c.Production != nil {
		s.BannedPhrases = len(c.Production.BannedPhrases)
		s.RepetitionBudgets = len(c.Production.RepetitionBudgets)
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetProvider retrieves a provider configuration by name.
// This is a convenience method that wraps ProviderRegistry.Get().
func (c *Config) GetProvider(name string) (*ProviderConfig, error) {
	return c.ProviderRegistry.Get(name)
}

// TierProvider returns the primary provider name for a tier.
func (c *Config) TierProvider(tier Tier) string {
	if tier == TierAdvanced {
		return c.Production.ModelAdvanced
	}
	return c.Production.ModelMini
}
