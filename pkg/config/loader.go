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

// VigilYAMLConfig represents the complete vigil.yaml file structure.
type VigilYAMLConfig struct {
	Indexing  *IndexingConfig  `yaml:"indexing"`
	Retrieval *RetrievalConfig `yaml:"retrieval"`
	Providers *ProvidersConfig `yaml:"providers"`
	Cache     *CacheConfig     `yaml:"cache"`
	Git       *GitConfig       `yaml:"git"`
	Tickets   *TicketsConfig   `yaml:"tickets"`
	Queue     *QueueConfig     `yaml:"queue"`
	Retention *RetentionConfig `yaml:"retention"`

	Redaction     *RedactionConfig     `yaml:"redaction"`
	Notifications *NotificationsConfig `yaml:"notifications"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load vigil.yaml from configDir (missing file means pure defaults)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-provided values over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
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

	log.Info("Configuration initialized successfully",
		"embedding_dimension", cfg.Retrieval.EmbeddingDimension,
		"similarity_threshold", cfg.Retrieval.SimilarityThreshold,
		"workers", cfg.Queue.WorkerCount)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	userCfg, err := loader.loadVigilYAML()
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No vigil.yaml found, using built-in defaults")
			userCfg = &VigilYAMLConfig{}
		} else {
			return nil, NewLoadError("vigil.yaml", err)
		}
	}

	cfg := &Config{
		configDir: configDir,
		Indexing:  DefaultIndexingConfig(),
		Retrieval: DefaultRetrievalConfig(),
		Providers: DefaultProvidersConfig(),
		Cache:     DefaultCacheConfig(),
		Git:       DefaultGitConfig(),
		Tickets:   DefaultTicketsConfig(),
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),

		Redaction:     DefaultRedactionConfig(),
		Notifications: DefaultNotificationsConfig(),
	}

	// Merge user-provided sections into defaults (non-zero values override)
	sections := []struct {
		name string
		dst  any
		src  any
	}{
		{"indexing", cfg.Indexing, userCfg.Indexing},
		{"retrieval", cfg.Retrieval, userCfg.Retrieval},
		{"providers", cfg.Providers, userCfg.Providers},
		{"cache", cfg.Cache, userCfg.Cache},
		{"git", cfg.Git, userCfg.Git},
		{"tickets", cfg.Tickets, userCfg.Tickets},
		{"queue", cfg.Queue, userCfg.Queue},
		{"retention", cfg.Retention, userCfg.Retention},
		{"redaction", cfg.Redaction, userCfg.Redaction},
		{"notifications", cfg.Notifications, userCfg.Notifications},
	}
	for _, s := range sections {
		if s.src == nil || isNilPtr(s.src) {
			continue
		}
		if err := mergo.Merge(s.dst, s.src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge %s config: %w", s.name, err)
		}
	}

	return cfg, nil
}

func isNilPtr(v any) bool {
	switch p := v.(type) {
	case *IndexingConfig:
		return p == nil
	case *RetrievalConfig:
		return p == nil
	case *ProvidersConfig:
		return p == nil
	case *CacheConfig:
		return p == nil
	case *GitConfig:
		return p == nil
	case *TicketsConfig:
		return p == nil
	case *QueueConfig:
		return p == nil
	case *RetentionConfig:
		return p == nil
	case *RedactionConfig:
		return p == nil
	case *NotificationsConfig:
		return p == nil
	}
	return false
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

	// Expand ${VAR} references from the environment
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadVigilYAML() (*VigilYAMLConfig, error) {
	var config VigilYAMLConfig
	if err := l.loadYAML("vigil.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}
