package config

import (
	"os"
	"strconv"
)

// Config holds application configuration, loaded from environment variables.
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// DefaultZoneRadius is used when an analysis request omits a zone radius.
	DefaultZoneRadius float64
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/haulcycle.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "change-me-in-production"
	}

	radius := 100.0
	if v := os.Getenv("DEFAULT_ZONE_RADIUS_M"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			radius = parsed
		}
	}

	return &Config{
		Port:              port,
		DBPath:            dbPath,
		JWTSecret:         jwtSecret,
		DefaultZoneRadius: radius,
	}
}
