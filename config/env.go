package config

import (
	"fmt"
	"os"
)

// LoadTestConfig populates AppConfig for the test suite without needing a
// .env file on disk. The in-memory database keeps test runs isolated.
func LoadTestConfig() error {
	os.Setenv("DB_PATH", "file::memory:?cache=shared")
	LoadConfig()

	if AppConfig.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET not set for tests")
	}
	if AppConfig.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", AppConfig.TokenTTL)
	}

	return nil
}
