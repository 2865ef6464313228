// Package config loads application configuration from the environment.
package config

import (
	"os"
	"path/filepath"
)

// Config holds all runtime settings. Everything has a sensible default so
// the binary works with no environment at all.
type Config struct {
	// DataDir is where the journal database lives. Empty means
	// ~/.mindcastle.
	DataDir string `env:"MINDCASTLE_DATA_DIR"`

	LogLevel string `env:"MINDCASTLE_LOG_LEVEL" env-default:"info"`
	Pretty   bool   `env:"MINDCASTLE_PRETTY" env-default:"true"`

	// FreeDailyInsights caps templated generations per day on the free tier.
	FreeDailyInsights int `env:"MINDCASTLE_FREE_DAILY_INSIGHTS" env-default:"3"`

	// EchoMinAgeDays is the minimum age before flagged thoughts resurface.
	EchoMinAgeDays int `env:"MINDCASTLE_ECHO_MIN_AGE_DAYS" env-default:"7"`
}

func defaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".mindcastle")
}
