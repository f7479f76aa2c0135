package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads .env from the current directory and sets env vars.
// Safe to call multiple times; existing env vars are not overwritten.
func Load() error {
	return godotenv.Load()
}

// APIKey returns the key used to gate API routes (MATHVIZ_API_KEY).
// Empty means the API is open.
func APIKey() string {
	return os.Getenv("MATHVIZ_API_KEY")
}

// GeminiAPIKey returns the Google Gemini API key.
func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

// RunsDir returns the directory for generation runs.
func RunsDir() string {
	if v := os.Getenv("MATHVIZ_RUNS_DIR"); v != "" {
		return v
	}
	return "data/runs"
}

// RunsMax returns the maximum number of run artifacts to retain.
// If unset or invalid, defaults to 50. Set to 0 to disable pruning.
func RunsMax() int {
	if v := os.Getenv("MATHVIZ_RUNS_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return 50
}

// RunsIndexLimit returns the max number of runs kept in index.json.
func RunsIndexLimit() int {
	if v := os.Getenv("MATHVIZ_RUNS_INDEX_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 50
}

// SampleStepsMax returns the upper bound on the steps accepted by the
// sampling endpoint.
func SampleStepsMax() int {
	if v := os.Getenv("MATHVIZ_SAMPLE_STEPS_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}

// CacheTTL returns how long cached Gemini responses are kept before the
// retention sweep deletes them. "0" disables expiry. Defaults to 168h.
func CacheTTL() time.Duration {
	if v := os.Getenv("MATHVIZ_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return 168 * time.Hour
}

// RetentionSchedule returns the cron spec for the retention sweeper.
func RetentionSchedule() string {
	if v := os.Getenv("MATHVIZ_RETENTION_SCHEDULE"); v != "" {
		return v
	}
	return "@hourly"
}
