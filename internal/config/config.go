// Package config provides Viper-based hierarchical configuration management
// for the analyzer: defaults, an optional config file, and BSA_-prefixed
// environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"rsgrecovery/statement-analyzer/internal/models"
)

var envOnce sync.Once

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Match struct {
		// Similarity cutoffs on a 0-100 scale. Empirical constants with no
		// documented derivation, so they are configurable rather than fixed.
		ExclusionThreshold float64 `mapstructure:"exclusion_threshold" yaml:"exclusion_threshold"`
		HeaderThreshold    float64 `mapstructure:"header_threshold" yaml:"header_threshold"`
	} `mapstructure:"match" yaml:"match"`

	Store struct {
		MerchantsFile   string `mapstructure:"merchants_file" yaml:"merchants_file"`
		ExclusionsFile  string `mapstructure:"exclusions_file" yaml:"exclusions_file"`
		SuggestionsFile string `mapstructure:"suggestions_file" yaml:"suggestions_file"`
	} `mapstructure:"store" yaml:"store"`

	Batch struct {
		TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"batch" yaml:"batch"`
}

// Thresholds returns the configured similarity cutoffs as the model type the
// engine consumes.
func (c *Config) Thresholds() models.MatchThresholds {
	return models.MatchThresholds{
		Exclusion: c.Match.ExclusionThreshold,
		Header:    c.Match.HeaderThreshold,
	}
}

// LoadEnv loads environment variables from a .env file if one exists in the
// current or parent directory. Safe to call more than once.
func LoadEnv() {
	envOnce.Do(func() {
		for _, envFile := range []string{".env", "../.env"} {
			if _, err := os.Stat(envFile); err == nil {
				_ = godotenv.Load(envFile)
				return
			}
		}
	})
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-analyzer")
	v.AddConfigPath(".statement-analyzer")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BSA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars; a broken config file
			// should not block analysis.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	defaults := models.DefaultThresholds()
	v.SetDefault("match.exclusion_threshold", defaults.Exclusion)
	v.SetDefault("match.header_threshold", defaults.Header)

	v.SetDefault("store.merchants_file", "merchants.yaml")
	v.SetDefault("store.exclusions_file", "exclusions.yaml")
	v.SetDefault("store.suggestions_file", "suggestions.yaml")

	v.SetDefault("batch.timeout_seconds", 60)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	for name, threshold := range map[string]float64{
		"match.exclusion_threshold": config.Match.ExclusionThreshold,
		"match.header_threshold":    config.Match.HeaderThreshold,
	} {
		if threshold < 0 || threshold > 100 {
			return fmt.Errorf("%s must be between 0 and 100, got: %v", name, threshold)
		}
	}

	if config.Batch.TimeoutSeconds < 0 {
		return fmt.Errorf("batch.timeout_seconds must not be negative, got: %d", config.Batch.TimeoutSeconds)
	}

	return nil
}

// ConfigureLogging builds a logrus logger from the Config.
func ConfigureLogging(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
