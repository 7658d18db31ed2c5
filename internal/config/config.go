package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

const (
	HasherArgon2id = "argon2id"
	HasherBcrypt   = "bcrypt"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env       string `env:"ENV" env-required:"true"`
	HTTP      HTTPConfig
	Storage   StorageConfig
	Postgres  PostgresConfig
	JWT       JWTConfig
	Password  PasswordConfig
	RateLimit RateLimitConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"memory"`
}

// PostgresConfig is only read when STORAGE_DRIVER is postgres.
type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

type JWTConfig struct {
	Issuer     string        `env:"JWT_ISSUER" env-default:"go-todo-stories"`
	SigningKey string        `env:"JWT_SIGNING_KEY" env-required:"true"`
	TokenTTL   time.Duration `env:"JWT_TOKEN_TTL" env-default:"24h"`
}

type PasswordConfig struct {
	Hasher     string `env:"PASSWORD_HASHER" env-default:"argon2id"`
	BcryptCost int    `env:"PASSWORD_BCRYPT_COST" env-default:"12"`
}

type RateLimitConfig struct {
	Enabled bool    `env:"RATE_LIMIT_ENABLED" env-default:"true"`
	RPS     float64 `env:"RATE_LIMIT_RPS" env-default:"10"`
	Burst   int     `env:"RATE_LIMIT_BURST" env-default:"20"`
}
