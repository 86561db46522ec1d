// internal/config/config.go
//
// Runtime configuration, read once at startup.
// A `.env` file in the working directory is loaded first (if present), then
// the process environment is parsed into Config. Command line flags may
// override fields afterwards; nothing below main reads the environment again.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE" envDefault:"ferdle.log"`

	// DebugFlag mirrors FERDLE_GAME_DEBUG; any non-empty value enables debug output.
	DebugFlag string `env:"FERDLE_GAME_DEBUG"`

	AnswersFile string `env:"WORDS_ANSWERS_FILE"`
	AllowedFile string `env:"WORDS_ALLOWED_FILE"`
	MaxAttempts int    `env:"FERDLE_MAX_ATTEMPTS" envDefault:"6"`
	DailySalt   string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	// DebugAddr enables the diagnostics server when set (e.g. 127.0.0.1:5175).
	DebugAddr   string `env:"FERDLE_DEBUG_ADDR"`
	DebugSecret string `env:"FERDLE_DEBUG_SECRET"`
}

// Debug reports whether debug output is enabled.
func (c Config) Debug() bool { return c.DebugFlag != "" }

// Load reads `.env` (best effort) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse parses the current environment without touching `.env`.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.MaxAttempts <= 0 {
		return Config{}, fmt.Errorf("FERDLE_MAX_ATTEMPTS must be positive, got %d", c.MaxAttempts)
	}
	return c, nil
}
