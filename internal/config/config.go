package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the environment-driven settings.
type Config struct {
	DBPath     string `env:"IDEAS_DB_PATH"`
	DisplayTZ  string `env:"IDEAS_TZ" envDefault:"America/Bogota"`
	WebhookURL string `env:"IDEAS_WEBHOOK_URL"`
	Debug      bool   `env:"IDEAS_DEBUG" envDefault:"false"`
}

// Load reads configuration from the environment, with an optional .env
// file in the working directory. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = filepath.Join(homeDir, ".ideas", "ideas.db")
	}

	return &cfg, nil
}

// Logger returns the debug logger: a development zap logger when
// IDEAS_DEBUG is set, a no-op logger otherwise. User-facing output goes
// to stdout separately; this only surfaces internal state.
func (c *Config) Logger() *zap.Logger {
	if !c.Debug {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
