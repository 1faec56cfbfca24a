// File: /config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Routing provider (OSRM-compatible)
	OSRMBaseURL        string
	OSRMTimeoutSeconds int

	// Base URL used when building share links for emails
	ShareBaseURL string

	// Email Configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

func Load() *Config {
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "2525"))
	osrmTimeout, _ := strconv.Atoi(getEnv("OSRM_TIMEOUT_SECONDS", "15"))

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/tripplanner?charset=utf8mb4&parseTime=True&loc=Local"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),

		// Public OSRM demo server; point at a self-hosted instance in production
		OSRMBaseURL:        getEnv("OSRM_URL", "https://router.project-osrm.org"),
		OSRMTimeoutSeconds: osrmTimeout,

		ShareBaseURL: getEnv("SHARE_BASE_URL", "http://localhost:8080/shared"),

		// Email settings
		SMTPHost:     getEnv("SMTP_HOST", "sandbox.smtp.mailtrap.io"),
		SMTPPort:     smtpPort,
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		FromEmail:    getEnv("FROM_EMAIL", "noreply@tripplanner.app"),
		FromName:     getEnv("FROM_NAME", "Trip Planner"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
