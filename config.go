package main

import (
	"os"
	"strconv"
)

// Config holds all environment variables for the API.
type Config struct {
	Port           string // Service port (default: 8000)
	DatabaseURL    string // MongoDB connection string; empty means no database
	DatabaseName   string // MongoDB database name; empty means no database
	Environment    string // "production" switches logging to JSON
	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig loads environment variables into a Config struct. The database
// settings are optional: without them the service runs in fallback mode.
func LoadConfig() *Config {
	cfg := &Config{
		Port:           os.Getenv("PORT"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseName:   os.Getenv("DATABASE_NAME"),
		Environment:    os.Getenv("ENVIRONMENT"),
		RateLimitRPS:   10,
		RateLimitBurst: 20,
	}

	if cfg.Port == "" {
		cfg.Port = "8000"
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil && rps > 0 {
			cfg.RateLimitRPS = rps
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if burst, err := strconv.Atoi(v); err == nil && burst > 0 {
			cfg.RateLimitBurst = burst
		}
	}

	return cfg
}
