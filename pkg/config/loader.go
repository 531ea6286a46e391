package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// NarraForgeYAMLConfig represents the complete narraforge.yaml file structure
type NarraForgeYAMLConfig struct {
	Production *ProductionConfig `yaml:"production"`
	Queue      *QueueConfig      `yaml:"queue"`
	Retention  *RetentionConfig  `yaml:"retention"`
	System     *SystemYAMLConfig `yaml:"system"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// ProvidersYAMLConfig represents the complete providers.yaml file structure
type ProvidersYAMLConfig struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Build in-memory registries
//  6. Apply default values
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"providers", stats.Providers,
		"banned_phrases", stats.BannedPhrases,
		"repetition_budgets", stats.RepetitionBudgets)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load narraforge.yaml (production policy, queue, retention, system)
	mainConfig, err := loader.loadNarraForgeYAML()
	if err != nil {
		return nil, NewLoadError("narraforge.yaml", err)
	}

	// 2. Load providers.yaml (optional; built-ins cover the common case)
	providers, err := loader.loadProvidersYAML()
	if err != nil {
		return nil, NewLoadError("providers.yaml", err)
	}

	// 3. Merge built-in + user-defined providers (user overrides built-in)
	builtin := GetBuiltinConfig()
	providersMerged := mergeProviders(builtin.Providers, providers)

	// 4. Build registry
	providerRegistry := NewProviderRegistry(providersMerged)

	// 5. Resolve production config (merge user YAML into built-in defaults,
	// non-zero values override)
	productionConfig := DefaultProductionConfig()
	if mainConfig.Production != nil {
		if err := mergo.Merge(productionConfig, mainConfig.Production, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge production config: %w", err)
		}
	}

	// 6. Resolve queue config the same way
	queueConfig := DefaultQueueConfig()
	if mainConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, mainConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	// 7. Resolve retention config
	retentionConfig := resolveRetentionConfig(mainConfig.Retention)

	return &Config{
		configDir:        configDir,
		Production:       productionConfig,
		Queue:            queueConfig,
		Retention:        retentionConfig,
		AllowedWSOrigins: resolveAllowedWSOrigins(mainConfig.System),
		ProviderRegistry: providerRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser produce the clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadNarraForgeYAML() (*NarraForgeYAMLConfig, error) {
	var config NarraForgeYAMLConfig

	if err := l.loadYAML("narraforge.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadProvidersYAML() (map[string]ProviderConfig, error) {
	var config ProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.Providers = make(map[string]ProviderConfig)

	err := l.loadYAML("providers.yaml", &config)
	if err != nil {
		// providers.yaml is optional; built-in providers cover setups that
		// only set OPENAI_API_KEY
		if errors.Is(err, ErrConfigNotFound) {
			return config.Providers, nil
		}
		return nil, err
	}

	return config.Providers, nil
}

// resolveRetentionConfig resolves retention configuration from YAML, applying defaults.
func resolveRetentionConfig(r *RetentionConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if r == nil {
		return cfg
	}

	if r.JobRetentionDays > 0 {
		cfg.JobRetentionDays = r.JobRetentionDays
	}
	if r.CheckpointRetention > 0 {
		cfg.CheckpointRetention = r.CheckpointRetention
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}

// resolveAllowedWSOrigins returns additional WebSocket origin patterns from system YAML.
func resolveAllowedWSOrigins(sys *SystemYAMLConfig) []string {
	if sys != nil {
		return sys.AllowedWSOrigins
	}
	return nil
}
