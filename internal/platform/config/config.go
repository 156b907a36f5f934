package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret       = "a-very-secret-key-should-be-longer-and-random"
	defaultMaxUploadBytes  = 5 << 20
	defaultErrorDisplayCap = 5
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTIssuer         string
	JWTExpiryDuration time.Duration

	// EmployeePlanLimit is the subscription's employee cap; -1 means unlimited.
	EmployeePlanLimit int
	// RosterErrorDisplayLimit caps the error summary returned for an import.
	RosterErrorDisplayLimit int
	RosterMaxUploadBytes    int64
	// ImportRateLimit uses the limiter's formatted rate, e.g. "10-M".
	ImportRateLimit string

	CORSAllowedOrigins []string
	PosthogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "hr-payroll-admin")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("EMPLOYEE_PLAN_LIMIT", -1)
	viper.SetDefault("ROSTER_ERROR_DISPLAY_LIMIT", defaultErrorDisplayCap)
	viper.SetDefault("ROSTER_MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	viper.SetDefault("IMPORT_RATE_LIMIT", "10-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.EmployeePlanLimit = viper.GetInt("EMPLOYEE_PLAN_LIMIT")
	if cfg.EmployeePlanLimit < -1 {
		log.Printf("Warning: Invalid EMPLOYEE_PLAN_LIMIT (%d). Treating as unlimited.\n", cfg.EmployeePlanLimit)
		cfg.EmployeePlanLimit = -1
	}

	cfg.RosterErrorDisplayLimit = viper.GetInt("ROSTER_ERROR_DISPLAY_LIMIT")
	if cfg.RosterErrorDisplayLimit <= 0 {
		cfg.RosterErrorDisplayLimit = defaultErrorDisplayCap
	}
	cfg.RosterMaxUploadBytes = viper.GetInt64("ROSTER_MAX_UPLOAD_BYTES")
	if cfg.RosterMaxUploadBytes <= 0 {
		cfg.RosterMaxUploadBytes = defaultMaxUploadBytes
	}
	cfg.ImportRateLimit = viper.GetString("IMPORT_RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
