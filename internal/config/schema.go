package config

import (
	"time"
)

// Config is the root configuration structure
type Config struct {
	Version  int            `yaml:"version"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	API      APIConfig      `yaml:"api"`
	Search   SearchConfig   `yaml:"search"`
	Recipe   RecipeConfig   `yaml:"recipe"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string   `yaml:"addr" validate:"required"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
	// AllowedOrigins lists CORS origins; empty allows any
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// APIConfig points at the recipe API
type APIConfig struct {
	BaseURL string   `yaml:"base_url" validate:"required,url"`
	Timeout Duration `yaml:"timeout"`
	// FetchConcurrency bounds parallel recipe fetches
	FetchConcurrency int `yaml:"fetch_concurrency" validate:"gte=1,lte=32"`
}

// SearchConfig controls result paging; reloaded live when the file changes
type SearchConfig struct {
	PageSize   int `yaml:"page_size" validate:"gte=1,lte=100"`
	TitleLimit int `yaml:"title_limit" validate:"gte=0"`
}

// RecipeConfig controls the servings and cooking-time estimates
type RecipeConfig struct {
	Servings            int `yaml:"servings" validate:"gte=1"`
	IngredientsPerGroup int `yaml:"ingredients_per_group" validate:"gte=1"`
	MinutesPerGroup     int `yaml:"minutes_per_group" validate:"gte=1"`
}

// LogConfig controls the zap logger
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
