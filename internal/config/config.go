package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Auth   AuthConfig
	Office OfficeConfig
	Sheets SheetsConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// AuthConfig holds the token verification settings
type AuthConfig struct {
	JWTSecret string
}

// OfficeConfig holds the geofence and timezone of the work location.
// Immutable for the process lifetime.
type OfficeConfig struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Timezone     string
}

// SheetsConfig holds the spreadsheet store settings
type SheetsConfig struct {
	SpreadsheetID      string
	ServiceAccountPath string
	ServiceAccountJSON string
	RequestsPerMinute  int
}

func Load() (*Config, error) {
	// A missing .env is fine in deployed environments; real env vars win.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.Auth = AuthConfig{
		JWTSecret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Office geofence configuration. Defaults are the production work
	// location near Athens airport with the 500m production radius.
	officeLat, err := getEnvFloat("OFFICE_LATITUDE", 37.909416)
	if err != nil {
		return nil, err
	}
	officeLon, err := getEnvFloat("OFFICE_LONGITUDE", 23.871109)
	if err != nil {
		return nil, err
	}
	officeRadius, err := getEnvFloat("OFFICE_RADIUS_METERS", 500)
	if err != nil {
		return nil, err
	}

	config.Office = OfficeConfig{
		Latitude:     officeLat,
		Longitude:    officeLon,
		RadiusMeters: officeRadius,
		Timezone:     getEnv("OFFICE_TIMEZONE", "Europe/Athens"),
	}

	sheetsRPM, err := strconv.Atoi(getEnv("SHEETS_REQUESTS_PER_MINUTE", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHEETS_REQUESTS_PER_MINUTE: %w", err)
	}

	config.Sheets = SheetsConfig{
		SpreadsheetID:      getEnv("GOOGLE_SHEETS_ID", ""),
		ServiceAccountPath: getEnv("GOOGLE_SERVICE_ACCOUNT_PATH", ""),
		ServiceAccountJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		RequestsPerMinute:  sheetsRPM,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("GOOGLE_SHEETS_ID is required")
	}
	if c.Sheets.ServiceAccountPath == "" && c.Sheets.ServiceAccountJSON == "" {
		return fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_PATH or GOOGLE_SERVICE_ACCOUNT_JSON is required")
	}
	if c.Office.RadiusMeters <= 0 {
		return fmt.Errorf("OFFICE_RADIUS_METERS must be positive")
	}
	if _, err := time.LoadLocation(c.Office.Timezone); err != nil {
		return fmt.Errorf("invalid OFFICE_TIMEZONE: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
