package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the server configuration read from the environment.
type Config struct {
	DatabaseURL        string
	RedisURL           string
	BearerToken        string
	Port               string
	MigrationsDir      string
	SeedCatalog        bool
	SuggestionTTL      time.Duration
	RateLimitPerMinute int
}

// Load reads an optional .env file from the working directory and then the
// process environment. Variables already set in the environment win over the
// file.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file path. A missing file is not an
// error.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		BearerToken:   os.Getenv("BEARER_TOKEN"),
		Port:          getEnv("PORT", "8080"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
	}

	var missing []string
	for _, v := range []struct{ key, val string }{
		{"DATABASE_URL", cfg.DatabaseURL},
		{"REDIS_URL", cfg.RedisURL},
		{"BEARER_TOKEN", cfg.BearerToken},
	} {
		if v.val == "" {
			missing = append(missing, v.key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	var err error
	if cfg.SeedCatalog, err = strconv.ParseBool(getEnv("SEED_CATALOG", "true")); err != nil {
		return Config{}, fmt.Errorf("parsing SEED_CATALOG: %w", err)
	}
	if cfg.SuggestionTTL, err = time.ParseDuration(getEnv("SUGGESTION_TTL", "10m")); err != nil {
		return Config{}, fmt.Errorf("parsing SUGGESTION_TTL: %w", err)
	}
	if cfg.RateLimitPerMinute, err = strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "120")); err != nil {
		return Config{}, fmt.Errorf("parsing RATE_LIMIT_PER_MINUTE: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
