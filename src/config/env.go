package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds the runtime knobs that may be overridden from the environment.
type Settings struct {
	LogLevel     slog.Level
	LogFile      string
	TickInterval time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		LogLevel:     DefaultLogLevel,
		TickInterval: DefaultTickInterval,
	}
}

// LoadSettings merges the dotenv file at path (if any) with the process environment.
// Process variables win over the file. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	env := map[string]string{}
	if path != "" {
		fileEnv, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("reading env file %s: %w", path, err)
		}
		for key, value := range fileEnv {
			env[key] = value
		}
	}
	for _, key := range []string{EnvLogLevel, EnvLogFile, EnvTickInterval} {
		if value, ok := os.LookupEnv(key); ok {
			env[key] = value
		}
	}
	return parseSettings(env)
}

func parseSettings(env map[string]string) (Settings, error) {
	settings := DefaultSettings()

	if value := strings.TrimSpace(env[EnvLogLevel]); value != "" {
		if err := settings.LogLevel.UnmarshalText([]byte(value)); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	settings.LogFile = strings.TrimSpace(env[EnvLogFile])
	if value := strings.TrimSpace(env[EnvTickInterval]); value != "" {
		interval, err := time.ParseDuration(value)
		if err != nil {
			return Settings{}, fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
		if interval <= 0 {
			return Settings{}, fmt.Errorf("%s: interval must be positive, got %v", EnvTickInterval, interval)
		}
		settings.TickInterval = interval
	}
	return settings, nil
}
