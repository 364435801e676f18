package config

import (
	"fmt"
	"time"
)

// AppConfig holds portability-domain configuration.
type AppConfig struct {
	// AppID is the application identifier embedded in every document path.
	AppID string
	// FeedRefresh is the interval between periodic feed re-broadcasts.
	FeedRefresh time.Duration
}

// LoadAppConfigFromEnv loads application configuration from environment variables.
func LoadAppConfigFromEnv() AppConfig {
	return AppConfig{
		AppID:       GetEnv("APP_ID", "547040634453"),
		FeedRefresh: GetEnvDuration("FEED_REFRESH_INTERVAL", 30*time.Second),
	}
}

// Validate validates application configuration.
func (c AppConfig) Validate() error {
	if c.AppID == "" {
		return fmt.Errorf("APP_ID must be set")
	}
	if c.FeedRefresh <= 0 {
		return fmt.Errorf("FeedRefresh must be greater than 0")
	}
	return nil
}
