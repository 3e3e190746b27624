package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Provider names accepted for DISTANCE_PROVIDER.
const (
	ProviderGoogle = "google"
	ProviderMock   = "mock"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv                string
	Port                  string
	DistanceProvider      string
	GoogleMapsAPIKey      string
	RedisURL              string
	DistanceCacheTTL      time.Duration
	DistanceLookupTimeout time.Duration
	BreakerMaxFailures    int
	BreakerOpenFor        time.Duration
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:                valueOrDefault(k.String("APP_ENV"), "development"),
		Port:                  valueOrDefault(k.String("PORT"), "8080"),
		DistanceProvider:      strings.ToLower(valueOrDefault(k.String("DISTANCE_PROVIDER"), ProviderMock)),
		GoogleMapsAPIKey:      strings.TrimSpace(k.String("GOOGLE_MAPS_API_KEY")),
		RedisURL:              strings.TrimSpace(k.String("REDIS_URL")),
		DistanceCacheTTL:      parseDuration(k.String("DISTANCE_CACHE_TTL"), "1h"),
		DistanceLookupTimeout: parseDuration(k.String("DISTANCE_LOOKUP_TIMEOUT"), "5s"),
		BreakerMaxFailures:    intOrDefault(k.Int("DISTANCE_BREAKER_FAILURES"), 5),
		BreakerOpenFor:        parseDuration(k.String("DISTANCE_BREAKER_OPEN_FOR"), "30s"),
	}

	switch cfg.DistanceProvider {
	case ProviderGoogle:
		if cfg.GoogleMapsAPIKey == "" {
			return nil, errors.New("GOOGLE_MAPS_API_KEY is required when DISTANCE_PROVIDER=google")
		}
	case ProviderMock:
	default:
		return nil, fmt.Errorf("unknown DISTANCE_PROVIDER %q", cfg.DistanceProvider)
	}

	return cfg, nil
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// CacheEnabled reports whether a Redis distance cache should be wired.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func intOrDefault(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
