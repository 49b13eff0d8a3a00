// Package config reads the settings shared by the seed and report commands.
//
// Values come from the environment, optionally populated from a .env file in
// the working directory. The record count, the age threshold and the fake
// data locale are constants, not settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// SeedCount is how many people create_db inserts.
	SeedCount = 200
	// MinimumAge is the report cutoff: people this age or older are listed.
	MinimumAge = 50
	// Locale selects the fake data conventions.
	Locale = "en_CA"

	DefaultDBPath  = "data/social_network.db"
	ReportFileName = "old_people.csv"
)

// BioSource selects how seeded biographies are written.
type BioSource string

const (
	BioSourceFaker BioSource = "faker"
	BioSourceLLM   BioSource = "llm"
)

// LLM settings, only used when BioSource is BioSourceLLM.
type LLM struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type Config struct {
	DBPath     string
	CSVPath    string
	Count      int
	MinimumAge int
	Locale     string
	RandomSeed uint64
	BioSource  BioSource
	LLM        LLM
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (Config, error) {
	dbPath := envString("SQLITE_PATH", DefaultDBPath)
	cfg := Config{
		DBPath:     dbPath,
		CSVPath:    ReportPath(dbPath),
		Count:      SeedCount,
		MinimumAge: MinimumAge,
		Locale:     Locale,
		BioSource:  BioSource(strings.ToLower(envString("SEED_BIO_SOURCE", string(BioSourceFaker)))),
		LLM: LLM{
			APIKey:  os.Getenv("LLM_API_KEY"),
			BaseURL: envString("LLM_BASE_URL", ""),
			Model:   envString("LLM_MODEL", ""),
			Timeout: time.Duration(envInt("LLM_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}

	if raw := os.Getenv("SEED_RANDOM_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse SEED_RANDOM_SEED: %w", err)
		}
		cfg.RandomSeed = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.BioSource {
	case BioSourceFaker:
	case BioSourceLLM:
		if strings.TrimSpace(c.LLM.APIKey) == "" {
			return fmt.Errorf("SEED_BIO_SOURCE=llm requires LLM_API_KEY")
		}
	default:
		return fmt.Errorf("unknown SEED_BIO_SOURCE %q", c.BioSource)
	}
	if c.DBPath == "" {
		return fmt.Errorf("database path is empty")
	}
	return nil
}

// ReportPath places the CSV report next to the database file.
func ReportPath(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), ReportFileName)
}

func envString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}
