package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() error {
	err := godotenv.Load(".env")
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
		return err
	}
	return nil
}

// GetEnv returns the value of an optional environment variable. Every
// credential in this service is optional: absence degrades the feature that
// needs it rather than preventing startup.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvDefault returns the variable's value, or fallback when unset or empty.
func GetEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
