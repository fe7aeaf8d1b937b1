// Package config provides configuration management for recipebox.
//
// The config file holds server, API and display settings. The shopping
// list and likes live in the database, not here.
//
// Config file locations (priority order):
//  1. $RECIPEBOX_CONFIG
//  2. ./recipebox.yaml
//  3. ~/.config/recipebox/config.yaml
//  4. /etc/recipebox/config.yaml
//
// Environment overrides applied after loading:
//
//	RECIPEBOX_DB       database path
//	RECIPEBOX_ADDR     HTTP listen address
//	RECIPEBOX_API_URL  recipe API base URL
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"recipebox/internal/adapter"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	EnvDatabasePath = "RECIPEBOX_DB"
	EnvAddr         = "RECIPEBOX_ADDR"
	EnvAPIURL       = "RECIPEBOX_API_URL"
)

var validate = validator.New()

// Load finds and loads the config file, or returns defaults if none found
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		cfg.applyEnv()
		return cfg, "", cfg.Validate()
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Parse decodes YAML config and fills in defaults. Environment overrides
// are not applied.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = Duration(10 * time.Second)
	}
	if c.Database.Path == "" {
		c.Database.Path = "./recipebox.db"
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = adapter.DefaultForkifyURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(10 * time.Second)
	}
	if c.API.FetchConcurrency == 0 {
		c.API.FetchConcurrency = adapter.DefaultFetchConcurrency
	}
	if c.Search.PageSize == 0 {
		c.Search.PageSize = 10
	}
	if c.Search.TitleLimit == 0 {
		c.Search.TitleLimit = 17
	}
	if c.Recipe.Servings == 0 {
		c.Recipe.Servings = 4
	}
	if c.Recipe.IngredientsPerGroup == 0 {
		c.Recipe.IngredientsPerGroup = 3
	}
	if c.Recipe.MinutesPerGroup == 0 {
		c.Recipe.MinutesPerGroup = 15
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// applyEnv applies environment overrides
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDatabasePath); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.API.BaseURL = v
	}
}

// ForkifyConfig returns the adapter settings
func (c *Config) ForkifyConfig() adapter.ForkifyConfig {
	return adapter.ForkifyConfig{
		BaseURL: c.API.BaseURL,
		Timeout: c.API.Timeout.Duration(),
		Recipe: adapter.RecipeOptions{
			Servings:            c.Recipe.Servings,
			IngredientsPerGroup: c.Recipe.IngredientsPerGroup,
			MinutesPerGroup:     c.Recipe.MinutesPerGroup,
		},
	}
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	return fmt.Sprintf("addr=%s db=%s api=%s page_size=%d title_limit=%d",
		c.Server.Addr, c.Database.Path, c.API.BaseURL, c.Search.PageSize, c.Search.TitleLimit)
}
