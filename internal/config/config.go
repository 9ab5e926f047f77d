package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds everything the API server reads from the environment.
type Config struct {
	Port             string `validate:"required,numeric"`
	DSN              string `validate:"required"`
	JWTSecret        string `validate:"required,min=16"`
	BaseURL          string `validate:"required,url"`
	UploadDir        string `validate:"required"`
	CORSOrigin       string `validate:"required"`
	FeedLimit        int    `validate:"min=1,max=100"`
	FeedPlaceholders bool
	LogLevel         string `validate:"oneof=debug info warn error"`
	GinMode          string `validate:"omitempty,oneof=debug release test"`
}

// Load reads the .env file (if any) and then the process environment.
// A missing .env file is not an error; the caller decides whether to warn.
func Load() (*Config, bool, error) {
	// 1. --- Load .env ---
	envLoaded := godotenv.Load() == nil

	// 2. --- Read Variables ---
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DSN:              os.Getenv("DB_DSN_PRIMARY"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		BaseURL:          strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		UploadDir:        getEnv("UPLOAD_DIR", "./uploads"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "http://localhost:5173"),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		GinMode:          os.Getenv("GIN_MODE"),
		FeedLimit:        10,
		FeedPlaceholders: true,
	}

	var err error
	if raw := os.Getenv("FEED_LIMIT"); raw != "" {
		if cfg.FeedLimit, err = strconv.Atoi(raw); err != nil {
			return nil, envLoaded, fmt.Errorf("FEED_LIMIT must be an integer: %w", err)
		}
	}
	if raw := os.Getenv("FEED_PLACEHOLDERS"); raw != "" {
		if cfg.FeedPlaceholders, err = strconv.ParseBool(raw); err != nil {
			return nil, envLoaded, fmt.Errorf("FEED_PLACEHOLDERS must be a boolean: %w", err)
		}
	}

	// 3. --- Validate ---
	if err := cfg.Validate(); err != nil {
		return nil, envLoaded, err
	}

	return cfg, envLoaded, nil
}

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
