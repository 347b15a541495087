package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	APIListenAddr string `env:"GRADES_API_ADDR" envDefault:":9000"`
	LogDir        string `env:"GRADES_LOG_DIR" envDefault:"logs"`
	LogPrefix     string `env:"GRADES_LOG_PREFIX" envDefault:"grades"`
	SeedDemo      bool   `env:"GRADES_SEED_DEMO" envDefault:"true"`
}

// Load reads the given dotenv files, if present, and then the environment.
// Variables already set in the environment win over dotenv values.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
