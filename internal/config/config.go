// Package config resolves runtime settings for healthdash.
//
// Sources are applied in order, later ones winning: built-in defaults, an
// optional YAML file, an optional .env file, then the process environment.
// Command-line flags are layered on top by cmd/healthdash.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Store backends understood by cmd/healthdash.
const (
	StoreCSV      = "csv"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds every setting the binary needs.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `yaml:"addr"`

	// WebDir serves static files at / when non-empty.
	WebDir string `yaml:"web_dir"`

	// Store selects the record backend: csv, sqlite, postgres or memory.
	Store string `yaml:"store"`

	// DataFile is the CSV or SQLite file path.
	DataFile string `yaml:"data_file"`

	// DatabaseURL is the Postgres connection string.
	DatabaseURL string `yaml:"database_url"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:     ":8080",
		Store:    StoreCSV,
		DataFile: "health_data.csv",
		LogLevel: "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the .env file at envFile (skipped when missing).
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading env file: %w", err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v := os.Getenv(key); v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	for key, dst := range map[string]*string{
		"ADDR":         &cfg.Addr,
		"WEB_DIR":      &cfg.WebDir,
		"STORE":        &cfg.Store,
		"DATA_FILE":    &cfg.DataFile,
		"DATABASE_URL": &cfg.DatabaseURL,
		"LOG_LEVEL":    &cfg.LogLevel,
	} {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	return cfg, nil
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	switch c.Store {
	case StoreCSV, StoreSQLite:
		if c.DataFile == "" {
			return fmt.Errorf("store %q requires a data file", c.Store)
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("store \"postgres\" requires DATABASE_URL")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	return nil
}
