package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	Version     string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig holds the monetary constants used by the payroll engine.
type PayrollConfig struct {
	LTARate                 decimal.Decimal
	AllowanceMode           string // "auto" or "fixed"
	StandardAllowanceAmount decimal.Decimal
	ProfessionalTax         decimal.Decimal
	DefaultWorkingDays      int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "dayflow-hrms"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		Version:     getEnv("APP_VERSION", "v1.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION", "1h"),
	}

	// Payroll configuration
	payroll, err := loadPayrollConfig()
	if err != nil {
		return nil, err
	}
	config.Payroll = payroll

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadPayrollConfig() (PayrollConfig, error) {
	ltaRate, err := getEnvDecimal("PAYROLL_LTA_RATE", "8.33")
	if err != nil {
		return PayrollConfig{}, err
	}
	standardAllowance, err := getEnvDecimal("PAYROLL_STANDARD_ALLOWANCE", "4167.00")
	if err != nil {
		return PayrollConfig{}, err
	}
	professionalTax, err := getEnvDecimal("PAYROLL_PROFESSIONAL_TAX", "200.00")
	if err != nil {
		return PayrollConfig{}, err
	}
	workingDays, err := strconv.Atoi(getEnv("PAYROLL_DEFAULT_WORKING_DAYS", "22"))
	if err != nil {
		return PayrollConfig{}, fmt.Errorf("invalid PAYROLL_DEFAULT_WORKING_DAYS: %w", err)
	}

	return PayrollConfig{
		LTARate:                 ltaRate,
		AllowanceMode:           strings.ToLower(getEnv("PAYROLL_ALLOWANCE_MODE", "auto")),
		StandardAllowanceAmount: standardAllowance,
		ProfessionalTax:         professionalTax,
		DefaultWorkingDays:      workingDays,
	}, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.AllowanceMode != "auto" && c.Payroll.AllowanceMode != "fixed" {
		return fmt.Errorf("PAYROLL_ALLOWANCE_MODE must be 'auto' or 'fixed'")
	}
	if !c.Payroll.LTARate.IsPositive() {
		return fmt.Errorf("PAYROLL_LTA_RATE must be positive")
	}
	if c.Payroll.ProfessionalTax.IsNegative() {
		return fmt.Errorf("PAYROLL_PROFESSIONAL_TAX must not be negative")
	}
	if c.Payroll.StandardAllowanceAmount.IsNegative() {
		return fmt.Errorf("PAYROLL_STANDARD_ALLOWANCE must not be negative")
	}
	if c.Payroll.DefaultWorkingDays <= 0 {
		return fmt.Errorf("PAYROLL_DEFAULT_WORKING_DAYS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDecimal(key, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, fallback))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
