// Package config loads the process-wide settings once at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is read-only after Load returns. Components receive it through fx
// instead of reading the environment themselves.
type Config struct {
	Port           string
	BasePath       string
	PostgresURL    string
	JWTSecret      string
	GoogleClientID string
	FrontendURL    string
	AppEnv         string
	LogLevel       string
	AutoMigrate    bool
}

// LoadDefaults fills in the values used when the environment leaves them unset.
func (c *Config) LoadDefaults() {
	c.Port = "8080"
	c.BasePath = "/rockroutes"
	c.FrontendURL = "http://localhost:3000"
	c.AppEnv = EnvDevelopment
	c.LogLevel = "info"
	c.AutoMigrate = true
}

// Load reads an optional .env file, overlays the process environment on the
// defaults and fails if a required key is missing.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.LoadDefaults()
	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.BasePath, "BASE_PATH")
	setString(&c.PostgresURL, "POSTGRES_URL")
	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.GoogleClientID, "GOOGLE_CLIENT_ID")
	setString(&c.FrontendURL, "FRONTEND_URL")
	setString(&c.AppEnv, "APP_ENV")
	setString(&c.LogLevel, "LOG_LEVEL")

	if v, ok := os.LookupEnv("AUTO_MIGRATE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AUTO_MIGRATE: %w", err)
		}
		c.AutoMigrate = b
	}

	c.BasePath = strings.TrimRight(c.BasePath, "/")
	return nil
}

// Validate reports every required key that is still empty.
func (c *Config) Validate() error {
	var missing []string
	if c.PostgresURL == "" {
		missing = append(missing, "POSTGRES_URL")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.GoogleClientID == "" {
		missing = append(missing, "GOOGLE_CLIENT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.AppEnv != EnvDevelopment && c.AppEnv != EnvProduction {
		return fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.AppEnv)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
