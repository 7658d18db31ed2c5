package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings cleanenv cannot express with tags.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %q", c.Env)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Postgres.Host == "" || c.Postgres.Username == "" || c.Postgres.Database == "" {
			return errors.New("postgres storage requires POSTGRES_HOST, POSTGRES_USERNAME and POSTGRES_DATABASE")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	switch c.Password.Hasher {
	case HasherArgon2id, HasherBcrypt:
	default:
		return fmt.Errorf("unknown password hasher: %q", c.Password.Hasher)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst < 1) {
		return errors.New("rate limit requires a positive RATE_LIMIT_RPS and RATE_LIMIT_BURST")
	}
	return nil
}
