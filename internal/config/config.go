package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Host         string
	Port         int
	DatabasePath string
}

// Addr returns the host:port pair the HTTP server binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return Config{}, fmt.Errorf("parse PORT: %w", err)
	}

	return Config{
		Host:         getEnv("HOST", "localhost"),
		Port:         port,
		DatabasePath: getEnv("DATABASE_PATH", "projects.db"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(v)
}
