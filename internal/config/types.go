package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Token   string        `mapstructure:"token"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Output  string        `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`

	// TokenSet reports whether token came from the environment or a config
	// file at all, even as an empty string.
	TokenSet bool `mapstructure:"-"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
