package config

import (
	"errors"

	"github.com/joeshaw/envdecode"
)

// Config is read from the environment (and .env via godotenv in main).
// UNO_SEED makes a whole session reproducible; 0 seeds from the clock.
type Config struct {
	Seed    int64 `env:"UNO_SEED,default=0"`
	Debug   bool  `env:"UNO_DEBUG,default=false"`
	NoColor bool  `env:"UNO_NO_COLOR,default=false"`
}

func Load() (Config, error) {
	var cfg Config
	err := envdecode.Decode(&cfg)
	if err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}
	return cfg, nil
}
