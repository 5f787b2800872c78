package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server settings, all sourced from the environment.
type Config struct {
	Port        string
	DatabaseURL string // empty means in-memory store with demo data
	JWTSecret   string
	JWTIssuer   string
	CORSOrigin  string
}

// Load reads .env when present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getenv("JWT_SECRET", "courseboard-dev-secret"),
		JWTIssuer:   getenv("JWT_ISSUER", "courseboard"),
		CORSOrigin:  getenv("CORS_ORIGIN", "*"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
