// Package config reads the configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrAPIURLNotSet    = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid   = errors.New("environment variable API_URL must be a valid URL")
	ErrLogFormat       = errors.New("environment variable LOG_FORMAT must be one of json, human")
	ErrGinMode         = errors.New("environment variable GIN_MODE must be one of debug, release, test")
	ErrCacheTTLInvalid = errors.New("environment variable ANALYSIS_CACHE_TTL must be a duration like 30s or 5m and not negative")
)

// Config is the configuration of the backend.
type Config struct {
	APIURL      *url.URL      // Public URL of the API, used for links in responses
	Port        string        // Port to listen on
	GinMode     string        // debug, release or test
	LogFormat   string        // human or json. Empty means human in debug mode, json otherwise
	DSN         string        // Database connection string
	EnablePprof bool          // Serve pprof profiles on /debug/pprof
	CacheTTL    time.Duration // How long analyses are cached. 0 disables the cache
}

// LoadEnv loads environment variables from the files passed in.
// Variables that are already set are not overwritten. Missing
// files are ignored.
func LoadEnv(files ...string) error {
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}

	if len(existing) == 0 {
		return nil
	}

	return godotenv.Load(existing...)
}

// Load reads the configuration from the environment and validates it.
//
// All problems are reported at once.
func Load() (Config, error) {
	c := Config{
		Port:        getenv("PORT", "8080"),
		GinMode:     getenv("GIN_MODE", "release"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
		EnablePprof: os.Getenv("ENABLE_PPROF") == "true",
	}

	var errs []error

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		errs = append(errs, ErrAPIURLNotSet)
	} else {
		u, err := url.Parse(apiURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%w: %q", ErrAPIURLInvalid, apiURL))
		}
		c.APIURL = u
	}

	dsn, ok := os.LookupEnv("DB_DSN")
	if !ok {
		dsn = filepath.Join(getenv("DATA_DIR", "data"), "fintrack.db")
	}
	c.DSN = dsn

	ttl, err := CacheTTL()
	if err != nil {
		errs = append(errs, err)
	}
	c.CacheTTL = ttl

	if err := c.validate(); err != nil {
		errs = append(errs, err)
	}

	return c, errors.Join(errs...)
}

func (c Config) validate() error {
	var errs []error

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errs = append(errs, fmt.Errorf("%w, got %q", ErrLogFormat, c.LogFormat))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("%w, got %q", ErrGinMode, c.GinMode))
	}

	return errors.Join(errs...)
}

// HumanLogs reports if logs are written in a human readable format.
func (c Config) HumanLogs() bool {
	return c.LogFormat == "human" || (c.LogFormat == "" && c.GinMode == "debug")
}

// DataDir returns the directory of the SQLite database, if any.
func (c Config) DataDir() string {
	if strings.HasPrefix(c.DSN, "postgres://") || strings.HasPrefix(c.DSN, "postgresql://") {
		return ""
	}

	return filepath.Dir(strings.SplitN(c.DSN, "?", 2)[0])
}

// CacheTTL returns the TTL for cached analyses from ANALYSIS_CACHE_TTL.
// It defaults to one minute.
func CacheTTL() (time.Duration, error) {
	s, ok := os.LookupEnv("ANALYSIS_CACHE_TTL")
	if !ok {
		return time.Minute, nil
	}

	ttl, err := time.ParseDuration(s)
	if err != nil || ttl < 0 {
		return 0, fmt.Errorf("%w, got %q", ErrCacheTTLInvalid, s)
	}

	return ttl, nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}
