// Package config loads sandbox and server settings from SATCHEL_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"satchel/assets"
	"satchel/internal/game"
	"satchel/internal/item"
	"satchel/internal/telemetry"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds everything a sandbox or the SSH server needs.
type Config struct {
	// Sandbox.
	MainSize       int           `env:"SATCHEL_MAIN_SIZE"       envDefault:"27"`
	HotbarSize     int           `env:"SATCHEL_HOTBAR_SIZE"     envDefault:"9"`
	UseCost        float64       `env:"SATCHEL_USE_COST"        envDefault:"1"`
	RepeatDelay    time.Duration `env:"SATCHEL_REPEAT_DELAY"    envDefault:"200ms"`
	RepeatInterval time.Duration `env:"SATCHEL_REPEAT_INTERVAL" envDefault:"100ms"`
	FieldWidth     int           `env:"SATCHEL_FIELD_WIDTH"     envDefault:"20"`
	FieldHeight    int           `env:"SATCHEL_FIELD_HEIGHT"    envDefault:"10"`
	// CatalogPath points at a JSON item catalog; empty uses the built-in one.
	CatalogPath string `env:"SATCHEL_CATALOG"`

	// Logging.
	LogLevel string `env:"SATCHEL_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"SATCHEL_LOG_FILE"`

	// SSH server.
	Port        int    `env:"SATCHEL_SSH_PORT"     envDefault:"2222"`
	HostKeyPath string `env:"SATCHEL_SSH_HOST_KEY" envDefault:"satchel_host_key"`
	MaxSessions int    `env:"SATCHEL_MAX_SESSIONS" envDefault:"32"`

	// Tracing is off unless an OTLP/HTTP endpoint is set.
	OTelEndpoint string `env:"SATCHEL_OTEL_ENDPOINT"`
	ServiceName  string `env:"SATCHEL_SERVICE_NAME" envDefault:"satchel"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.MainSize < 0:
		return fmt.Errorf("%w: main size %d", ErrInvalid, c.MainSize)
	case c.HotbarSize < 1 || c.HotbarSize > 9:
		return fmt.Errorf("%w: hotbar size %d not in 1..9", ErrInvalid, c.HotbarSize)
	case c.UseCost <= 0:
		return fmt.Errorf("%w: use cost %v", ErrInvalid, c.UseCost)
	case c.RepeatDelay <= 0 || c.RepeatInterval <= 0:
		return fmt.Errorf("%w: repeat timing %v/%v", ErrInvalid, c.RepeatDelay, c.RepeatInterval)
	case c.FieldWidth < 1 || c.FieldHeight < 1:
		return fmt.Errorf("%w: field %dx%d", ErrInvalid, c.FieldWidth, c.FieldHeight)
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("%w: port %d", ErrInvalid, c.Port)
	case c.MaxSessions < 1:
		return fmt.Errorf("%w: max sessions %d", ErrInvalid, c.MaxSessions)
	}
	if _, err := telemetry.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Catalog loads the configured item catalog.
func (c Config) Catalog() (*item.Catalog, error) {
	if c.CatalogPath == "" {
		return assets.DefaultCatalog(), nil
	}
	f, err := os.Open(c.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	cat, err := item.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.CatalogPath, err)
	}
	return cat, nil
}

// Game builds the sandbox configuration. The catalog is loaded once here so
// every sandbox created from the result shares it.
func (c Config) Game() (game.Config, error) {
	cat, err := c.Catalog()
	if err != nil {
		return game.Config{}, err
	}
	gc := game.DefaultConfig()
	gc.Catalog = cat
	gc.Session.MainSize = c.MainSize
	gc.Session.HotbarSize = c.HotbarSize
	gc.Session.UseCost = c.UseCost
	gc.Session.Width = c.FieldWidth
	gc.Session.Height = c.FieldHeight
	gc.RepeatDelay = c.RepeatDelay
	gc.RepeatInterval = c.RepeatInterval
	return gc, nil
}
