package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const envPrefix = "TERMSHELL_"

// Config holds the host settings. None of it reaches the shell core except
// ShowStderr.
type Config struct {
	Title       string
	LogFile     string
	LogLevel    slog.Level
	ShowStderr  bool
	MetricsAddr string // empty disables the /metrics listener
	TraceFile   string // empty disables span export
}

// Load seeds the environment from envFile when it exists, then reads the
// TERMSHELL_* variables over the defaults. Variables already set win over the
// file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := defaultConfig()

	if v, ok := lookup("TITLE"); ok {
		cfg.Title = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%sLOG_LEVEL: %w", envPrefix, err)
		}
	}
	if v, ok := lookup("SHOW_STDERR"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%sSHOW_STDERR: %w", envPrefix, err)
		}
		cfg.ShowStderr = b
	}
	if v, ok := lookup("METRICS_ADDR"); ok {
		cfg.MetricsAddr = v
	}
	if v, ok := lookup("TRACE_FILE"); ok {
		cfg.TraceFile = v
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Title:    "termshell",
		LogFile:  filepath.Join(os.TempDir(), "termshell.log"),
		LogLevel: slog.LevelInfo,
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}
