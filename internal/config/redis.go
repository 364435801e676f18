package config

import (
	"fmt"
	"time"
)

// RedisConfig holds session store configuration.
type RedisConfig struct {
	// Addr is the Redis server address (host:port).
	Addr string
	// Password is the Redis password (empty means no auth).
	Password string
	// DB is the Redis logical database number.
	DB int
	// KeyPrefix namespaces all session keys.
	KeyPrefix string
	// SessionTTL is how long an idle session survives.
	SessionTTL time.Duration
}

// LoadRedisConfigFromEnv loads Redis configuration from environment variables.
func LoadRedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		Addr:       GetEnv("REDIS_ADDR", "localhost:6379"),
		Password:   GetEnv("REDIS_PASSWORD", ""),
		DB:         GetEnvInt("REDIS_DB", 0),
		KeyPrefix:  GetEnv("REDIS_KEY_PREFIX", "session"),
		SessionTTL: GetEnvDuration("SESSION_TTL", 24*time.Hour),
	}
}

// Validate validates Redis configuration.
func (c RedisConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("REDIS_ADDR must be set")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SessionTTL must be greater than 0")
	}
	return nil
}
