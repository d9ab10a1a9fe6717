package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production
	LogLevel    slog.Level

	// Page
	AppTitle string
	MountID  string

	// Static build
	BuildDir string

	// Accounts. An empty DatabaseURL disables them.
	DatabaseURL   string
	SessionSecret string
	SessionMaxAge time.Duration
	TokenSecret   string
	TokenTTL      time.Duration

	// Tracing
	ServiceName      string
	TraceExporter    string // none, stdout
	TraceSampleRatio float64

	// Publishing (S3 compatible storage)
	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3Prefix          string
	S3AccessKeyID     string
	S3SecretAccessKey string
}

// ErrPublishNotConfigured is returned by ValidatePublish when no bucket is set.
var ErrPublishNotConfigured = errors.New("S3_BUCKET is not set")

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		AppTitle: getEnv("APP_TITLE", "Vango UI"),
		MountID:  strings.TrimPrefix(getEnv("MOUNT_ID", "app"), "#"),

		BuildDir: getEnv("BUILD_DIR", "dist"),

		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),

		ServiceName:   getEnv("OTEL_SERVICE_NAME", "vango-ui"),
		TraceExporter: getEnv("TRACE_EXPORTER", "none"),

		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3Prefix:          strings.Trim(os.Getenv("S3_PREFIX"), "/"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.SessionMaxAge, err = getDuration("SESSION_MAX_AGE", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", time.Hour); err != nil {
		return nil, err
	}

	cfg.TraceSampleRatio, err = strconv.ParseFloat(getEnv("TRACE_SAMPLE_RATIO", "1"), 64)
	if err != nil || cfg.TraceSampleRatio < 0 || cfg.TraceSampleRatio > 1 {
		return nil, fmt.Errorf("TRACE_SAMPLE_RATIO must be a number between 0 and 1")
	}
	switch cfg.TraceExporter {
	case "none", "stdout":
	default:
		return nil, fmt.Errorf("TRACE_EXPORTER must be none or stdout, got %q", cfg.TraceExporter)
	}

	if cfg.AccountsEnabled() {
		// Validate session secret length (need 64 bytes for hash key + block key)
		if len(cfg.SessionSecret) < 64 {
			return nil, fmt.Errorf("SESSION_SECRET must be at least 64 characters, got %d", len(cfg.SessionSecret))
		}
		if len(cfg.TokenSecret) < 32 {
			return nil, fmt.Errorf("TOKEN_SECRET must be at least 32 characters, got %d", len(cfg.TokenSecret))
		}
	}

	if cfg.MountID == "" {
		return nil, fmt.Errorf("MOUNT_ID must not be empty")
	}
	if strings.ContainsAny(cfg.MountID, " \t.#[]>:") {
		return nil, fmt.Errorf("MOUNT_ID must be a plain element id, got %q", cfg.MountID)
	}

	return cfg, nil
}

// ValidatePublish checks the settings the publish command needs.
func (c *Config) ValidatePublish() error {
	if c.S3Bucket == "" {
		return ErrPublishNotConfigured
	}
	if (c.S3AccessKeyID == "") != (c.S3SecretAccessKey == "") {
		return fmt.Errorf("S3_ACCESS_KEY_ID and S3_SECRET_ACCESS_KEY must be set together")
	}
	return nil
}

// AccountsEnabled reports whether a database is configured for user accounts.
func (c *Config) AccountsEnabled() bool {
	return c.DatabaseURL != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
