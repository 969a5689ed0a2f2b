package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	DatabaseURL     string
	GraphQLEndpoint string
	HTTPTimeout     time.Duration
	LogLevel        string
	LogFormat       string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL env var is required")
	}

	timeout, err := time.ParseDuration(envOrDefault("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}

	return Config{
		DatabaseURL:     dsn,
		GraphQLEndpoint: os.Getenv("RA_GRAPHQL_URL"),
		HTTPTimeout:     timeout,
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
