package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// APP
	AppEnv string
	Port   string

	// ClickUp
	ClickUpToken   string
	ClickUpTeamID  string
	ClickUpBaseURL string
	ClickUpTimeout time.Duration

	JWTSecret   string
	CORSOrigins []string

	// Admin login. AdminPasswordHash wins over AdminPassword when both are set.
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	// Underload ≤ 35 hours/week
	// Normal 36–45 hours/week
	// Overload ≥ 60 hours/week
	WorkloadUnderload float64
	WorkloadNormalMin float64
	WorkloadNormalMax float64
	WorkloadOverload  float64
}

func Load() (*Config, error) {
	cfg := &Config{
		// App
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8001"),

		// ClickUp
		ClickUpToken:   getEnv("CLICKUP_TOKEN", ""),
		ClickUpTeamID:  getEnv("CLICKUP_TEAM_ID", ""),
		ClickUpBaseURL: getEnv("CLICKUP_BASE_URL", "https://api.clickup.com/api/v2/"),
		ClickUpTimeout: time.Duration(getEnvFloat("CLICKUP_TIMEOUT_SECONDS", 20) * float64(time.Second)),

		// JWT
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		// Admin login
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		// Workload settings
		WorkloadUnderload: getEnvFloat("WORKLOAD_UNDERLOAD", 35),
		WorkloadNormalMin: getEnvFloat("WORKLOAD_NORMAL_MIN", 36),
		WorkloadNormalMax: getEnvFloat("WORKLOAD_NORMAL_MAX", 45),
		WorkloadOverload:  getEnvFloat("WORKLOAD_OVERLOAD", 60),
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv == "production" {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "dev-secret"
	}
	if cfg.WorkloadUnderload >= cfg.WorkloadOverload {
		return nil, errors.New("WORKLOAD_UNDERLOAD must be below WORKLOAD_OVERLOAD")
	}

	return cfg, nil
}

// getEnv returns environment variable or default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvFloat returns float from env or default.
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
