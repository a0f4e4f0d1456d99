package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads the .env file when present. Missing files are fine; real
// deployments rely on the process environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file loaded, using process environment: %v", err)
	}
}

// GetEnv returns the value of an environment variable.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault returns the value of an environment variable or a default
// when unset.
func GetEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
