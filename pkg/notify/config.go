package notify

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRegion      = "eu-north-1"
	DefaultFromAddress = "hej@pixelpioneer.se"
	DefaultToAddress   = "anton@pixelpioneer.se"
)

// Config is the mail provider configuration read from the environment.
type Config struct {
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	SessionToken    string `env:"AWS_SESSION_TOKEN"`
	Region          string `env:"AWS_REGION" envDefault:"eu-north-1"`
	Endpoint        string `env:"SES_ENDPOINT"`
	FromAddress     string `env:"SES_FROM_EMAIL" envDefault:"hej@pixelpioneer.se"`
	ToAddress       string `env:"SES_TO_EMAIL" envDefault:"anton@pixelpioneer.se"`
	Theme           string `env:"BRIEF_THEME"`
	ThemeVariant    string `env:"BRIEF_THEME_VARIANT"`
}

// Configured reports whether both provider credentials are present.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.AccessKeyID) != "" && strings.TrimSpace(c.SecretAccessKey) != ""
}

// withDefaults fills blank optional values. Variables set to the empty
// string count as unset.
func (c Config) withDefaults() Config {
	c.AccessKeyID = strings.TrimSpace(c.AccessKeyID)
	c.SecretAccessKey = strings.TrimSpace(c.SecretAccessKey)
	c.Region = strings.TrimSpace(c.Region)
	c.FromAddress = strings.TrimSpace(c.FromAddress)
	c.ToAddress = strings.TrimSpace(c.ToAddress)
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.FromAddress == "" {
		c.FromAddress = DefaultFromAddress
	}
	if c.ToAddress == "" {
		c.ToAddress = DefaultToAddress
	}
	return c
}

// ConfigSource yields the configuration for one request.
type ConfigSource func() (Config, error)

// EnvConfig parses Config from the process environment.
func EnvConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("notify: parse env: %w", err)
	}
	return cfg.withDefaults(), nil
}

// StaticConfig returns a source that always yields cfg.
func StaticConfig(cfg Config) ConfigSource {
	return func() (Config, error) {
		return cfg.withDefaults(), nil
	}
}
