package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment.
type Config struct {
	// APIKey authenticates against the Twelve Data API. The process
	// refuses to start without it.
	APIKey  string `env:"TWELVE_DATA_API_KEY,required,notEmpty"`
	BaseURL string `env:"TWELVE_DATA_BASE_URL" envDefault:"https://api.twelvedata.com"`
	// RequestTimeoutSec bounds a single upstream HTTP call.
	RequestTimeoutSec int `env:"REQUEST_TIMEOUT_SEC" envDefault:"30"`
}

// Load reads a .env file when one exists, then parses the environment.
// A missing .env file is not an error; a missing API key is.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}
