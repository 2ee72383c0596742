// Package config reads zpersona's settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zarlcorp/zpersona/internal/locale"
)

// Config is the process-wide configuration.
type Config struct {
	DataDir  string
	Locale   string
	Seed     *uint64 // nil means seed from crypto/rand
	LogLevel slog.Level
}

// FromEnv builds a Config from ZPERSONA_LOCALE, ZPERSONA_SEED,
// ZPERSONA_LOG_LEVEL and XDG_DATA_HOME.
func FromEnv() (Config, error) {
	cfg := Config{
		DataDir:  DataDir(),
		Locale:   locale.Default,
		LogLevel: slog.LevelWarn,
	}

	if v := strings.TrimSpace(os.Getenv("ZPERSONA_LOCALE")); v != "" {
		cfg.Locale = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv("ZPERSONA_SEED")); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("ZPERSONA_SEED: %q is not an unsigned integer", v)
		}
		cfg.Seed = &seed
	}

	if v := strings.TrimSpace(os.Getenv("ZPERSONA_LOG_LEVEL")); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("ZPERSONA_LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

// DataDir returns the directory holding the encrypted store.
func DataDir() string {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "zpersona")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zpersona"
	}
	return filepath.Join(home, ".local", "share", "zpersona")
}
