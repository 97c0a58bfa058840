package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

type CommonConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN"`
}

// RedisConfig is optional: an empty Addr disables the catalog cache.
type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	CacheTTL time.Duration `env:"REDIS_CACHE_TTL" envDefault:"30s"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}

type Config struct {
	Common   CommonConfig
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Auth     AuthConfig
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Postgres.DSN == "" {
		return Config{}, fmt.Errorf("postgres dsn is empty: set POSTGRES_DSN")
	}
	if cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("jwt secret is empty: set JWT_SECRET")
	}
	return cfg, nil
}
