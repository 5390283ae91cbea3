package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	Addr           string
	DatabaseDSN    string
	JWTSecret      string
	TokenDuration  time.Duration
	AllowedOrigins []string
	MaxUploadBytes int64
}

// Load reads configuration from the environment. Every value has a
// development default so the server starts with an empty environment.
func Load() *Config {
	cfg := &Config{
		Addr:           ":" + getEnv("PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", defaultDSN()),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretkey"),
		TokenDuration:  24 * time.Hour,
		AllowedOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"), ","),
		MaxUploadBytes: 10 << 20,
	}

	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenDuration = d
		}
	}

	return cfg
}

func defaultDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "password"),
		getEnv("DB_NAME", "careerportal"),
		getEnv("DB_PORT", "5432"),
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
