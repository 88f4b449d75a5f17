// Package config loads the registry client's process-wide settings.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. ARK_API_KEY.
	EnvPrefix = "ARK"

	DefaultBaseURL = "http://ark.frick.org:8080"
	DefaultTimeout = 5 * time.Second
)

// Config holds the registry endpoint and credential. It is built once at
// startup and passed to the client.
//
// Precedence, lowest first: built-in defaults, the optional YAML file,
// ARK_-prefixed environment variables. Unprefixed names such as API_KEY are
// never consulted. The credential is only ever taken from the environment.
type Config struct {
	BaseURL string        `yaml:"base_url" split_words:"true"`
	Timeout time.Duration `yaml:"timeout"  split_words:"true"`
	APIKey  string        `yaml:"-"        split_words:"true" required:"true"`
}

// Load builds a Config. path may be empty to skip the YAML file.
func Load(path string) (*Config, error) {
	cfg := &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}

	if path != "" {
		// #nosec G304 -- path is operator-provided config path.
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := strings.ReplaceAll(os.ExpandEnv(string(raw)), "\r\n", "\n")
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Str("config_file", path).
		Bool("api_key_present", cfg.APIKey != "").
		Msg("Configuration loaded")

	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s_API_KEY is required", EnvPrefix)
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	return nil
}
