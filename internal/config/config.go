// Package config resolves runtime settings from the environment, after
// loading any .env files in the working directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/alexanderramin/wildercal/internal/discovery"
	"github.com/alexanderramin/wildercal/internal/enrichment"
	"github.com/alexanderramin/wildercal/internal/llm"
	"github.com/alexanderramin/wildercal/internal/logging"
)

type Config struct {
	DBPath      string
	ThemesDir   string
	MetricsFile string

	GeminiAPIKey string
	BraveAPIKey  string
	PlacesAPIKey string

	SourceTimeout time.Duration
	Enrichment    enrichment.Options

	LLM     llm.LLMConfig
	Logging logging.Config
}

// DiscoveryConfigured reports whether any live discovery source has
// credentials. Without one the built-in sample library is used.
func (c Config) DiscoveryConfigured() bool {
	return c.GeminiAPIKey != "" || c.BraveAPIKey != "" || c.LLM.XAI.Configured()
}

// LoadEnvFiles loads ENV_FILE when set, otherwise .env.local then .env.
// Missing files are ignored and variables already set are never replaced.
func LoadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// Load reads .env files and then the environment.
func Load() (Config, error) {
	if err := LoadEnvFiles(); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		DBPath:        os.Getenv("WILDERCAL_DB"),
		ThemesDir:     os.Getenv("WILDERCAL_THEMES_DIR"),
		MetricsFile:   os.Getenv("WILDERCAL_METRICS_FILE"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		BraveAPIKey:   os.Getenv("BRAVE_API_KEY"),
		PlacesAPIKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		SourceTimeout: discovery.DefaultSourceTimeout,
		Enrichment:    enrichment.DefaultOptions(),
		LLM:           llm.LoadConfig(),
		Logging:       logging.ConfigFromEnv(),
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".wildercal", "wildercal.db")
	}
	if cfg.ThemesDir == "" {
		if stat, err := os.Stat("./themes"); err == nil && stat.IsDir() {
			cfg.ThemesDir = "./themes"
		}
	}

	if v := os.Getenv("WILDERCAL_SOURCE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("WILDERCAL_SOURCE_TIMEOUT: invalid duration %q", v)
		}
		cfg.SourceTimeout = d
	}
	if v := os.Getenv("WILDERCAL_ENRICH_BATCH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("WILDERCAL_ENRICH_BATCH: invalid batch size %q", v)
		}
		cfg.Enrichment.BatchSize = n
	}
	if v := os.Getenv("WILDERCAL_ENRICH_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("WILDERCAL_ENRICH_DELAY: invalid duration %q", v)
		}
		cfg.Enrichment.Delay = d
	}
	if v := os.Getenv("WILDERCAL_ENRICH_RATE"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 {
			return Config{}, fmt.Errorf("WILDERCAL_ENRICH_RATE: invalid rate %q", v)
		}
		cfg.Enrichment.Rate = rate.Limit(r)
	}
	return cfg, nil
}
