package config

import (
	"os"
	"strconv"
	"strings"
)

// Defaults for the monitoring configuration sent to the checker service.
const (
	DefaultInterval = 60
	DefaultTimeout  = 10
)

type Config struct {
	APIBase string // checker service base URL, e.g. "http://localhost:5000/api"
	LogDir  string // diagnostics log directory
}

func FromEnv() Config {
	api := os.Getenv("SITEWATCH_API")
	if api == "" {
		api = "http://localhost:5000/api"
	}

	logDir := os.Getenv("SITEWATCH_LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	return Config{
		APIBase: api,
		LogDir:  logDir,
	}
}

// Monitor is the transient per-start monitoring configuration. It is built
// from user input and never persisted on this side.
type Monitor struct {
	Interval int // seconds between check cycles
	Timeout  int // per-check request timeout in seconds
}

// ResolveMonitor turns the raw interval/timeout field values into a usable
// configuration. Absent, unparseable, or non-positive values fall back to
// the defaults.
func ResolveMonitor(interval, timeout string) Monitor {
	return Monitor{
		Interval: positiveOr(interval, DefaultInterval),
		Timeout:  positiveOr(timeout, DefaultTimeout),
	}
}

func positiveOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
