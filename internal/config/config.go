package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	// Supabase
	SupabaseURL           string
	SupabaseServiceRole   string
	SupabaseStorageBucket string

	// Database
	DatabaseURL string

	// Resend
	ResendAPIKey string
	FromEmail    string
	AdminEmail   string

	// Pricing
	UnitPrice float64

	// Server
	Port        string
	Environment string
}

func Load() (*Config, error) {
	cfg := &Config{
		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceRole:   getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "orders"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("FROM_EMAIL", ""),
		AdminEmail:   getEnv("ADMIN_EMAIL", ""),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	price, err := strconv.ParseFloat(getEnv("UNIT_PRICE", "39.90"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid UNIT_PRICE: %w", err)
	}
	cfg.UnitPrice = price

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceRole == "" {
		return fmt.Errorf("SUPABASE_SERVICE_ROLE_KEY is required")
	}
	if c.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("FROM_EMAIL is required")
	}
	if c.AdminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
