package config

import (
	"os"
	"strings"
)

type Config struct {
	LogLevel string

	// Seeding
	DatabaseURL string

	// Tokenizer vocabulary cache
	VocabCacheDir string
}

func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel: getenv("LOG_LEVEL", "info"),

		DatabaseURL: NormalizeDatabaseURL(getenv("DATABASE_URL", "")),

		VocabCacheDir: getenv("VOCAB_CACHE_DIR", "deploy/vocab_cache"),
	}
	return cfg, nil
}

// NormalizeDatabaseURL rewrites the postgresql:// scheme to the canonical
// postgres:// form accepted by the driver. Any other input is returned as is.
func NormalizeDatabaseURL(raw string) string {
	if rest, ok := strings.CutPrefix(raw, "postgresql://"); ok {
		return "postgres://" + rest
	}
	return raw
}

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok {
		return v
	}
	return def
}
