package config

import (
	"fmt"
	"os"
)

type Config struct {
	Environment   string
	ServerPort    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	SlackBotToken string
	// ChannelID is the only channel where attendance commands are accepted
	// and where check-in reminders are posted.
	ChannelID string
}

func Load() (*Config, error) {
	cfg := &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		ServerPort:    getEnv("PORT", "8080"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "attendance"),
		SlackBotToken: getEnv("SLACK_BOT_TOKEN", ""),
		ChannelID:     getEnv("ATTENDANCE_CHANNEL_ID", ""),
	}

	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD environment variable is required")
	}
	if cfg.ChannelID == "" {
		return nil, fmt.Errorf("ATTENDANCE_CHANNEL_ID environment variable is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
