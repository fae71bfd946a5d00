package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds application level configuration loaded from environment
// variables. Every field has a fixed default so the server starts against a
// local database with nothing set.
type Config struct {
	ServerPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("PORT", "3001"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "vgtracker"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

// DSN assembles the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// Default allowed origins for local SPA development.
var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// AllowedOrigins returns the CORS origin whitelist: the development defaults
// plus CLIENT_URL and any comma-separated ALLOWED_ORIGINS entries.
func AllowedOrigins() []string {
	origins := make([]string, len(defaultOrigins))
	copy(origins, defaultOrigins)

	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}

	if allowed := os.Getenv("ALLOWED_ORIGINS"); allowed != "" {
		for _, origin := range strings.Split(allowed, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
	}

	return origins
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
