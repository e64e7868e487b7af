package util

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	Environment         string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	MigrationURL        string        `mapstructure:"MIGRATION_URL"`
	HTTPServerAddress   string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSecretKey      string        `mapstructure:"TOKEN_SECRET_KEY"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RedisServerAddress  string        `mapstructure:"REDIS_SERVER_ADDRESS"`

	SMTPHost        string `mapstructure:"SMTP_HOST"`
	SMTPPort        int    `mapstructure:"SMTP_PORT"`
	SMTPUsername    string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword    string `mapstructure:"SMTP_PASSWORD"`
	MailFromAddress string `mapstructure:"MAIL_FROM_ADDRESS"`

	// 0 means bid submissions wait for their turn indefinitely.
	BidLockWaitTimeout    time.Duration `mapstructure:"BID_LOCK_WAIT_TIMEOUT"`
	AuctionSweepInterval  time.Duration `mapstructure:"AUCTION_SWEEP_INTERVAL"`
	BroadcastBufferSize   int           `mapstructure:"BROADCAST_BUFFER_SIZE"`
	BroadcastRelayEnabled bool          `mapstructure:"BROADCAST_RELAY_ENABLED"`
}

func (config Config) IsProduction() bool {
	return config.Environment == "production"
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()

	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	v.SetDefault("MIGRATION_URL", "file://internal/db/migration")
	v.SetDefault("HTTP_SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("ACCESS_TOKEN_DURATION", "24h")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("BID_LOCK_WAIT_TIMEOUT", "0s")
	v.SetDefault("AUCTION_SWEEP_INTERVAL", "30s")
	v.SetDefault("BROADCAST_BUFFER_SIZE", 256)
	v.SetDefault("BROADCAST_RELAY_ENABLED", false)

	// Prefer environment variables over config file
	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err = v.ReadInConfig(); err != nil {
		return
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return
	}

	err = validateConfig(config)
	return
}

func validateConfig(config Config) error {
	if config.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if config.TokenSecretKey == "" {
		return fmt.Errorf("TOKEN_SECRET_KEY is required")
	}
	if config.RedisServerAddress == "" {
		return fmt.Errorf("REDIS_SERVER_ADDRESS is required")
	}
	if config.BidLockWaitTimeout < 0 {
		return fmt.Errorf("BID_LOCK_WAIT_TIMEOUT must not be negative")
	}
	if config.AuctionSweepInterval <= 0 {
		return fmt.Errorf("AUCTION_SWEEP_INTERVAL must be positive")
	}

	return nil
}
