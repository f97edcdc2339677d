package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Log      LogConfig
	Telegram TelegramConfig
}

type LogConfig struct {
	Level  string
	Format string // "console" or "json"
}

type TelegramConfig struct {
	Token   string
	Timeout string // raw BOT_TIMEOUT, seconds; see PollTimeout
}

// PollTimeout parses the getUpdates long-poll timeout in seconds.
func (t TelegramConfig) PollTimeout() (int, error) {
	timeout, err := strconv.Atoi(t.Timeout)
	if err != nil {
		return 0, fmt.Errorf("BOT_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return 0, fmt.Errorf("BOT_TIMEOUT must be >= 0, got %d", timeout)
	}
	return timeout, nil
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Telegram: TelegramConfig{
			Token:   getEnv("TOKEN", ""),
			Timeout: getEnv("BOT_TIMEOUT", "60"),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
