package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"fixitfast/pkg/logger"
)

// Config holds application configuration loaded once at startup.
type Config struct {
	Port     string
	LogLevel string

	PostgresURL  string
	QueryTimeout time.Duration

	JWTSecret string

	// Shared secret required to self-register an admin account.
	AdminSignupKey string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailFromName string
	AppBaseURL   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		PostgresURL:  getEnv("POSTGRES_URL", ""),
		QueryTimeout: time.Duration(getEnvInt("QUERY_TIMEOUT_SECONDS", 5)) * time.Second,

		JWTSecret:      getEnv("JWT_SECRET", ""),
		AdminSignupKey: getEnv("ADMIN_SIGNUP_KEY", ""),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@fixitfast.local"),
		MailFromName: getEnv("MAIL_FROM_NAME", "FixItFast"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:3000"),
	}

	if cfg.JWTSecret == "" {
		logger.Warn().Msg("JWT_SECRET is not set; tokens will not survive restarts safely")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
