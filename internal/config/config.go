package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string `validate:"required"`
	APIBaseURL    string `validate:"required,url"`
	SessionSecret string `validate:"required"`
	LogFormat     string
}

var validate = validator.New()

// New loads configuration from environment variables and validates it.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		ServerAddr:    getEnv("SERVER_ADDR", ":8080"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:5000"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
