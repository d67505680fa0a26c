package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrNoDatabase is returned alongside an otherwise usable Config when
// DATABASE_URL is unset, so callers that never touch the database can go on.
var ErrNoDatabase = errors.New("DATABASE_URL not set")

type Config struct {
	Env             string        `env:"APP_ENV"          envDefault:"development"`
	ListenAddr      string        `env:"LISTEN_ADDR"      envDefault:":8080"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DBMaxConns      int32         `env:"DB_MAX_CONNS"     envDefault:"10"`
	LogLevel        string        `env:"LOG_LEVEL"        envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Brandfetch Brandfetch
}

// Brandfetch configures the logo lookup client.
type Brandfetch struct {
	APIKey   string        `env:"BRANDFETCH_API_KEY"`
	BaseURL  string        `env:"BRANDFETCH_BASE_URL" envDefault:"https://api.brandfetch.io/v2"`
	Timeout  time.Duration `env:"LOGO_TIMEOUT"        envDefault:"10s"`
	CacheTTL time.Duration `env:"LOGO_CACHE_TTL"      envDefault:"24h"`
	// WarmWorkers > 0 resolves every brand logo once at startup.
	WarmWorkers int `env:"LOGO_WARM_WORKERS" envDefault:"0"`
}

func (c Config) IsDevelopment() bool { return c.Env == "development" }

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBMaxConns <= 0 {
		return cfg, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", cfg.DBMaxConns)
	}
	if cfg.DatabaseURL == "" {
		return cfg, ErrNoDatabase
	}
	return cfg, nil
}
