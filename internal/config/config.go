package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// DevSecret is the fallback signing secret. It exists so the service can
// start without configuration during development and must never reach
// production; Load callers are expected to warn when it is in use.
const DevSecret = "defaultSecretKeyForDevelopmentEnvironmentOnly"

type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseDSN    string `env:"DATABASE_DSN" envDefault:"file:travel.db?_pragma=busy_timeout(5000)"`

	// RedisAddr is optional. When empty the account cache is disabled and
	// every request authentication hits the database.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	JWTSecret         string `env:"JWT_SECRET" envDefault:"defaultSecretKeyForDevelopmentEnvironmentOnly"`
	AccessTTLSeconds  int    `env:"JWT_ACCESS_TTL_SECONDS" envDefault:"86400"`
	RefreshTTLSeconds int    `env:"JWT_REFRESH_TTL_SECONDS" envDefault:"604800"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	ProviderTimeoutSeconds int `env:"PROVIDER_TIMEOUT_SECONDS" envDefault:"10"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// UsesDevSecret reports whether the insecure development signing secret is
// still in effect.
func (c Config) UsesDevSecret() bool {
	return c.JWTSecret == DevSecret
}

func (c Config) AccessTTL() time.Duration {
	return time.Duration(c.AccessTTLSeconds) * time.Second
}

func (c Config) RefreshTTL() time.Duration {
	return time.Duration(c.RefreshTTLSeconds) * time.Second
}

func (c Config) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}
