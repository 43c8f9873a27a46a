package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/stash/internal/stash/service"
	"github.com/aussiebroadwan/stash/pkg/cryptox"
	"github.com/aussiebroadwan/stash/pkg/httpx"
	"gopkg.in/yaml.v3"
)

// DefaultDatabaseURL is a local sqlite file in WAL mode.
const DefaultDatabaseURL = "file:stash.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

var (
	ErrMissingSalt = errors.New("ARGON_SALT is required")
	ErrInvalidTTL  = errors.New("SESSION_TTL must be positive")
)

// Config is loaded once at startup and passed to New. Values come from the
// defaults, then the optional YAML file named by STASH_CONFIG_FILE, then the
// environment.
type Config struct {
	SigningKeyFile string        `yaml:"signing_key_file"` // Path to the HS256 secret (default: signing.key, generated when missing)
	ArgonSalt      string        `yaml:"-"`                // Required: process-wide password hashing salt, environment only
	DatabaseURL    string        `yaml:"database_url"`     // postgres:// URL or sqlite DSN (default: DefaultDatabaseURL)
	SessionTTL     time.Duration `yaml:"session_ttl"`      // Session lifetime (default: 168h)
	CookieSecure   *bool         `yaml:"cookie_secure"`    // Secure cookie flag (default: true unless Env is dev)

	Env                 string        `yaml:"env"`                   // Environment (dev, test, prod) (default: prod)
	LogLevel            string        `yaml:"log_level"`             // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        `yaml:"log_format"`            // Log format (json, text) (default: json)
	Port                int           `yaml:"port"`                  // HTTP server port (default: 8000)
	ShutdownGracePeriod time.Duration `yaml:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)

	RateLimits httpx.RateLimitProfiles `yaml:"rate_limits"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		SigningKeyFile:      "signing.key",
		DatabaseURL:         DefaultDatabaseURL,
		SessionTTL:          service.DefaultSessionTTL,
		Env:                 "prod",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8000,
		ShutdownGracePeriod: 10 * time.Second,
		RateLimits:          httpx.DefaultRateLimitProfiles(),
	}
}

func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("STASH_CONFIG_FILE"); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.SigningKeyFile = getEnvOrDefault("STASH_SIGNING_KEY_FILE", cfg.SigningKeyFile)
	cfg.ArgonSalt = os.Getenv("ARGON_SALT")
	cfg.DatabaseURL = getEnvOrDefault("DATABASE_URL", cfg.DatabaseURL)
	cfg.SessionTTL = getEnvDurationOrDefault("SESSION_TTL", cfg.SessionTTL)
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)
	cfg.RateLimits = httpx.LoadRateLimitProfiles(cfg.RateLimits)

	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = &secure
	}

	return cfg, nil
}

// SecureCookies reports whether the session cookie carries the Secure flag.
func (c Config) SecureCookies() bool {
	if c.CookieSecure != nil {
		return *c.CookieSecure
	}
	return c.Env != "dev"
}

// Validate reports configuration the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	if c.ArgonSalt == "" {
		errs = append(errs, ErrMissingSalt)
	} else if _, err := cryptox.ParseSalt(c.ArgonSalt); err != nil {
		errs = append(errs, fmt.Errorf("ARGON_SALT: %w", err))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, ErrInvalidTTL)
	}
	if c.SigningKeyFile == "" {
		errs = append(errs, errors.New("STASH_SIGNING_KEY_FILE must not be empty"))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("DATABASE_URL must not be empty"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}

	return errors.Join(errs...)
}

func loadConfigFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
