package config

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	DBPath     string // BLOGSEED_DB, default "blog.db"
	LogLevel   string // BLOGSEED_LOG_LEVEL, default "info"
	LogFormat  string // BLOGSEED_LOG_FORMAT, "text" or "json", default "text"
	BcryptCost int    // BLOGSEED_BCRYPT_COST, default bcrypt.DefaultCost
	RandSeed   int64  // BLOGSEED_RAND_SEED, 0 means unseeded
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DBPath:     envOr("BLOGSEED_DB", "blog.db"),
		LogLevel:   envOr("BLOGSEED_LOG_LEVEL", "info"),
		LogFormat:  envOr("BLOGSEED_LOG_FORMAT", "text"),
		BcryptCost: bcryptCost(os.Getenv("BLOGSEED_BCRYPT_COST")),
		RandSeed:   int64Or("BLOGSEED_RAND_SEED", 0),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func int64Or(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

// bcryptCost falls back to bcrypt.DefaultCost for values bcrypt would reject.
func bcryptCost(raw string) int {
	cost, err := strconv.Atoi(raw)
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}
