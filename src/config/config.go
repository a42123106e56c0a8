package config

import (
	"log/slog"
	"time"
)

const (
	DefaultNumFloors    = 7
	DefaultSimTicks     = 10
	DefaultTickInterval = 500 * time.Millisecond
	DefaultLogLevel     = slog.LevelInfo
	StatusWidth         = 60
)

// Environment keys read from the process environment or a dotenv file.
const (
	EnvLogLevel     = "ELEVSIM_LOG_LEVEL"
	EnvLogFile      = "ELEVSIM_LOG_FILE"
	EnvTickInterval = "ELEVSIM_TICK_INTERVAL"
)
