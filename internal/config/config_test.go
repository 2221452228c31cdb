package config_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnwards/blogseed/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	// Unset any env vars that might be set.
	t.Setenv("BLOGSEED_DB", "")
	t.Setenv("BLOGSEED_LOG_LEVEL", "")
	t.Setenv("BLOGSEED_LOG_FORMAT", "")
	t.Setenv("BLOGSEED_BCRYPT_COST", "")
	t.Setenv("BLOGSEED_RAND_SEED", "")

	cfg := config.Load()

	if cfg.DBPath != "blog.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "blog.db")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
	if cfg.BcryptCost != bcrypt.DefaultCost {
		t.Errorf("BcryptCost = %d, want %d", cfg.BcryptCost, bcrypt.DefaultCost)
	}
	if cfg.RandSeed != 0 {
		t.Errorf("RandSeed = %d, want 0", cfg.RandSeed)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BLOGSEED_DB", "/tmp/test.db")
	t.Setenv("BLOGSEED_LOG_LEVEL", "debug")
	t.Setenv("BLOGSEED_LOG_FORMAT", "json")
	t.Setenv("BLOGSEED_BCRYPT_COST", "4")
	t.Setenv("BLOGSEED_RAND_SEED", "42")

	cfg := config.Load()

	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "/tmp/test.db")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
	if cfg.BcryptCost != 4 {
		t.Errorf("BcryptCost = %d, want 4", cfg.BcryptCost)
	}
	if cfg.RandSeed != 42 {
		t.Errorf("RandSeed = %d, want 42", cfg.RandSeed)
	}
}

func TestLoadInvalidBcryptCost(t *testing.T) {
	for _, raw := range []string{"abc", "1", "99"} {
		t.Setenv("BLOGSEED_BCRYPT_COST", raw)

		if got := config.Load().BcryptCost; got != bcrypt.DefaultCost {
			t.Errorf("BLOGSEED_BCRYPT_COST=%q: BcryptCost = %d, want %d", raw, got, bcrypt.DefaultCost)
		}
	}
}
