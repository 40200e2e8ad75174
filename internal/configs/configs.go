package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	RateLimitMemory = "memory"
	RateLimitRedis  = "redis"
)

type Config struct {
	AppName                string
	AppURL                 string
	LogLevel               string
	LogFormat              string
	DatabaseDriver         string
	DatabaseDSN            string
	RateLimit              int
	RateLimitBackend       string
	RedisAddr              string
	RedisKeyPrefix         string
	JWTSecret              string
	JWTExpiresIn           time.Duration
	ShutdownTimeoutSeconds int
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_HOST", "127.0.0.1")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_NAME", "skill-share")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "skill_share.db")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 60)
	v.SetDefault("RATE_LIMIT_BACKEND", RateLimitMemory)
	v.SetDefault("REDIS_HOST", "127.0.0.1")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_KEY_PREFIX", "rate_limit")
	v.SetDefault("JWT_EXPIRES_IN", "24h")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 20)

	expiresIn, err := time.ParseDuration(v.GetString("JWT_EXPIRES_IN"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid duration value for JWT_EXPIRES_IN: %w", err)
	}

	cfg := Config{
		AppName:                v.GetString("APP_NAME"),
		AppURL:                 fmt.Sprintf("%s:%s", v.GetString("APP_HOST"), v.GetString("APP_PORT")),
		LogLevel:               v.GetString("LOG_LEVEL"),
		LogFormat:              v.GetString("LOG_FORMAT"),
		DatabaseDriver:         v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:            v.GetString("DATABASE_DSN"),
		RateLimit:              v.GetInt("RATE_LIMIT_PER_MINUTE"),
		RateLimitBackend:       v.GetString("RATE_LIMIT_BACKEND"),
		RedisAddr:              fmt.Sprintf("%s:%s", v.GetString("REDIS_HOST"), v.GetString("REDIS_PORT")),
		RedisKeyPrefix:         v.GetString("REDIS_KEY_PREFIX"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		JWTExpiresIn:           expiresIn,
		ShutdownTimeoutSeconds: v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	if cfg.AppURL == ":" {
		return errors.New("APP_HOST and APP_PORT must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDriver != DriverSQLite && cfg.DatabaseDriver != DriverPostgres {
		return fmt.Errorf("DATABASE_DRIVER must be %q or %q", DriverSQLite, DriverPostgres)
	}
	if cfg.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.RateLimitBackend != RateLimitMemory && cfg.RateLimitBackend != RateLimitRedis {
		return fmt.Errorf("RATE_LIMIT_BACKEND must be %q or %q", RateLimitMemory, RateLimitRedis)
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if cfg.JWTExpiresIn <= 0 {
		return errors.New("JWT_EXPIRES_IN must be greater than 0")
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0")
	}
	return nil
}
