// Package config exposes application settings read from the environment.
// Database connection settings live in the database package.
package config

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenLifetime = 24 * time.Hour

// Config holds the settings the HTTP server and handlers depend on.
type Config struct {
	Port string

	JWTSecret        string
	JWTExpirationDur time.Duration

	UploadDir string
	ExportDir string
}

var (
	appConfig *Config
	loadOnce  sync.Once
)

// Load reads configuration from the environment. A .env file is applied
// first when one exists next to the binary.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	appConfig = &Config{
		Port:             getEnv("PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		JWTExpirationDur: tokenLifetime(),
		UploadDir:        getEnv("UPLOAD_DIR", "uploads"),
		ExportDir:        getEnv("EXPORT_DIR", "exports"),
	}
	return appConfig, nil
}

// Get returns the loaded configuration, loading it on first use.
func Get() *Config {
	loadOnce.Do(func() {
		if appConfig != nil {
			return
		}
		if _, err := Load(); err != nil {
			log.Fatalf("load configuration: %v", err)
		}
	})
	return appConfig
}

func tokenLifetime() time.Duration {
	raw := getEnv("JWT_EXPIRES_IN", "24h")
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid JWT_EXPIRES_IN %q, using %s", raw, defaultTokenLifetime)
		return defaultTokenLifetime
	}
	return d
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
