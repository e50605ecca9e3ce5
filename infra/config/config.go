package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/text/language"
)

// Config holds application-level configuration.
type Config struct {
	PublishDelay time.Duration `env:"TERMSOCIAL_PUBLISH_DELAY" envDefault:"1s"`
	RefreshDelay time.Duration `env:"TERMSOCIAL_REFRESH_DELAY" envDefault:"1500ms"`
	AuthDelay    time.Duration `env:"TERMSOCIAL_AUTH_DELAY" envDefault:"1500ms"`
	Seed         uint64        `env:"TERMSOCIAL_SEED"`
	LocaleName   string        `env:"TERMSOCIAL_LOCALE" envDefault:"es-AR"`
	LogPath      string        `env:"TERMSOCIAL_LOG"`
	SkipLogin    bool          `env:"TERMSOCIAL_SKIP_LOGIN"`
}

// Locale returns the parsed locale. Load has already validated it.
func (c Config) Locale() language.Tag {
	tag, err := language.Parse(c.LocaleName)
	if err != nil {
		return language.Spanish
	}
	return tag
}

// Load reads configuration from environment variables.
//
//	TERMSOCIAL_PUBLISH_DELAY: simulated publish latency (default 1s)
//	TERMSOCIAL_REFRESH_DELAY: simulated refresh latency (default 1.5s)
//	TERMSOCIAL_AUTH_DELAY:    simulated login/registration latency (default 1.5s)
//	TERMSOCIAL_SEED:          random seed for generated posts (default: clock)
//	TERMSOCIAL_LOCALE:        BCP 47 tag for dates and numbers (default: es-AR)
//	TERMSOCIAL_LOG:           debug log file, ~ is expanded (default: off)
//	TERMSOCIAL_SKIP_LOGIN:    start on the home feed (default: false)
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom is Load with an explicit environment, for tests and tooling.
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	for name, d := range map[string]time.Duration{
		"TERMSOCIAL_PUBLISH_DELAY": cfg.PublishDelay,
		"TERMSOCIAL_REFRESH_DELAY": cfg.RefreshDelay,
		"TERMSOCIAL_AUTH_DELAY":    cfg.AuthDelay,
	} {
		if d < 0 {
			return Config{}, fmt.Errorf("invalid %s: must not be negative", name)
		}
	}

	if _, err := language.Parse(cfg.LocaleName); err != nil {
		return Config{}, fmt.Errorf("invalid TERMSOCIAL_LOCALE %q: %w", cfg.LocaleName, err)
	}

	if cfg.LogPath != "" {
		path, err := homedir.Expand(cfg.LogPath)
		if err != nil {
			return Config{}, fmt.Errorf("expanding TERMSOCIAL_LOG: %w", err)
		}
		cfg.LogPath = path
	}

	return cfg, nil
}
