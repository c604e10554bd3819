package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	API     APIConfig
	Session SessionConfig
	Server  ServerConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	// TokenFile is where the access token is persisted between runs.
	// Empty means in-memory only.
	TokenFile string
}

type ServerConfig struct {
	Port      string
	JWTSecret string
}

// Load reads the environment. Callers load .env first when they want
// file-based config.
func Load() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			BaseURL: getEnv("API_BASE_URL", "http://localhost:3000/api/v1"),
			Timeout: getEnvDuration("API_TIMEOUT", 100*time.Second),
		},
		Session: SessionConfig{
			TokenFile: getEnv("SESSION_TOKEN_FILE", ""),
		},
		Server: ServerConfig{
			Port:      getEnv("PORT", "3000"),
			JWTSecret: getEnv("JWT_SECRET", "your-super-secret-key-change-in-production"),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
