// Package config reads runtime settings from PAYDIRT_* environment variables.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

const prefix = "PAYDIRT_"

type Config struct {
	// Seed for the dice; 0 seeds from the clock.
	Seed int64 `env:"SEED" envDefault:"0"`
	// Headless plays the user side at random with no terminal.
	Headless bool `env:"HEADLESS" envDefault:"false"`

	// Team file stems. Empty asks at startup (the comp side picks at random).
	UserTeam string `env:"USER_TEAM"`
	CompTeam string `env:"COMP_TEAM"`
	// PlaysheetDir overrides the embedded playsheets.
	PlaysheetDir string `env:"PLAYSHEET_DIR"`

	LogFile  string     `env:"LOG_FILE" envDefault:"paydirt.log"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`

	CoinToss        bool `env:"COIN_TOSS" envDefault:"false"`
	QuarterSeconds  int  `env:"QUARTER_SECONDS" envDefault:"900"`
	AnimationFrames int  `env:"ANIMATION_FRAMES" envDefault:"12"`
	Telemetry       bool `env:"TELEMETRY" envDefault:"false"`
}

// Telemetry holds the Honeycomb settings. These keep their historical names without the
// PAYDIRT_ prefix.
type Telemetry struct {
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	APIKey   string `env:"HONEYCOMB_PAYDIRT_API_KEY"`
	Dataset  string `env:"HONEYCOMB_PAYDIRT_DATASET" envDefault:"paydirt"`
}

// Load parses the PAYDIRT_* environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: prefix})
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadTelemetry parses the exporter settings.
func LoadTelemetry() (*Telemetry, error) {
	tel, err := env.ParseAs[Telemetry]()
	if err != nil {
		return nil, fmt.Errorf("parsing telemetry environment: %w", err)
	}
	return &tel, nil
}

func (c *Config) validate() error {
	if c.QuarterSeconds <= 0 {
		return fmt.Errorf("%sQUARTER_SECONDS must be positive, got %d", prefix, c.QuarterSeconds)
	}
	if c.AnimationFrames < 0 {
		return fmt.Errorf("%sANIMATION_FRAMES must not be negative, got %d", prefix, c.AnimationFrames)
	}
	if c.UserTeam != "" && c.UserTeam == c.CompTeam {
		return fmt.Errorf("user and comp teams are both %q", c.UserTeam)
	}
	return nil
}
