package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// LINE channel credentials
	ChannelSecret      string
	ChannelAccessToken string
	LineAPIBaseURL     string

	// Rate limit for the webhook endpoint, in ulule/limiter notation (e.g. "60-M").
	WebhookRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("CHANNEL_SECRET", "")
	viper.SetDefault("CHANNEL_ACCESS_TOKEN", "")
	viper.SetDefault("LINE_API_BASE_URL", "https://api.line.me")
	viper.SetDefault("WEBHOOK_RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.ChannelSecret = viper.GetString("CHANNEL_SECRET")
	if cfg.ChannelSecret == "" {
		log.Println("Warning: CHANNEL_SECRET not set. Webhook signature verification will reject all deliveries.")
	}

	cfg.ChannelAccessToken = viper.GetString("CHANNEL_ACCESS_TOKEN")
	if cfg.ChannelAccessToken == "" {
		log.Println("Warning: CHANNEL_ACCESS_TOKEN not set. Outbound messaging will fail.")
	}

	cfg.LineAPIBaseURL = viper.GetString("LINE_API_BASE_URL")
	cfg.WebhookRateLimit = viper.GetString("WEBHOOK_RATE_LIMIT")

	return cfg, nil
}
