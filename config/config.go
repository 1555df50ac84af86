package config

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Config holds everything tunable from the environment. Defaults give a
// playable game with zero setup.
type Config struct {
	PlayerName string
	BotName    string

	// Seed fixes the shuffle order when non-zero; zero means a fresh
	// seed per game.
	Seed int64

	// TurnDelay paces the bot's turns so its plays are readable.
	TurnDelay time.Duration

	LogLevel logrus.Level
}

func Load() Config {
	cfg := Config{
		PlayerName: getEnv("UNO_PLAYER_NAME", "Player"),
		BotName:    getEnv("UNO_BOT_NAME", "Computer"),
		TurnDelay:  500 * time.Millisecond,
		LogLevel:   logrus.WarnLevel,
	}

	if raw := os.Getenv("UNO_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if raw := os.Getenv("UNO_TURN_DELAY"); raw != "" {
		if delay, err := time.ParseDuration(raw); err == nil {
			cfg.TurnDelay = delay
		}
	}
	if raw := os.Getenv("UNO_LOG_LEVEL"); raw != "" {
		if level, err := logrus.ParseLevel(raw); err == nil {
			cfg.LogLevel = level
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
