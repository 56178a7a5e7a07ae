package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	JWTSecret       string
	DBPath          string
	DefaultPassword string
	TokenTTL        time.Duration
	CORSOrigins     string
}

var (
	AppConfig Config
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	AppConfig = Config{
		Port:            getEnvOrDefault("PORT", "5000"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", "supersecretkey"),
		DBPath:          getEnvOrDefault("DB_PATH", "hrm.db"),
		DefaultPassword: getEnvOrDefault("DEFAULT_PASSWORD", "welcome123"),
		TokenTTL:        getDurationOrDefault("TOKEN_TTL", 10*time.Hour),
		CORSOrigins:     getEnvOrDefault("CORS_ORIGINS", "http://localhost:5173"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Environment variable %s is not a valid duration: %v", key, err)
	}
	return d
}
