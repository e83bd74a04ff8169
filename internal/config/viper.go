// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Sepa struct {
		TransferSchema string `mapstructure:"transfer_schema" yaml:"transfer_schema"`
		DebitSchema    string `mapstructure:"debit_schema" yaml:"debit_schema"`
		Currency       string `mapstructure:"currency" yaml:"currency"`
		Clean          bool   `mapstructure:"clean" yaml:"clean"`
		Validate       bool   `mapstructure:"validate" yaml:"validate"`
		Pretty         bool   `mapstructure:"pretty" yaml:"pretty"`
	} `mapstructure:"sepa" yaml:"sepa"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		DateFormat     string `mapstructure:"date_format" yaml:"date_format"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	Camt struct {
		StrictValidation bool `mapstructure:"strict_validation" yaml:"strict_validation"`
	} `mapstructure:"camt" yaml:"camt"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.sepa-pain")
	v.AddConfigPath(".sepa-pain")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("SEPA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Payment initiation defaults
	v.SetDefault("sepa.transfer_schema", "pain.001.001.03")
	v.SetDefault("sepa.debit_schema", "pain.008.003.02")
	v.SetDefault("sepa.currency", "EUR")
	v.SetDefault("sepa.clean", true)
	v.SetDefault("sepa.validate", true)
	v.SetDefault("sepa.pretty", false)

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.date_format", "DD.MM.YYYY")
	v.SetDefault("csv.include_headers", true)

	// Bank statement parsing defaults
	v.SetDefault("camt.strict_validation", true)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	// Validate currency code
	if len(config.Sepa.Currency) != 3 {
		return fmt.Errorf("sepa.currency must be a three-letter ISO code, got: %s", config.Sepa.Currency)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	// Parse and set log level
	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Configure log format
	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
