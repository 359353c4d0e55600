package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("DB_HOST", "localhost")
	os.Setenv("DB_PORT", "5432")
	os.Setenv("DB_USER", "postgres")
	os.Setenv("DB_PASSWORD", "postgres")
	os.Setenv("DB_NAME", "platewise")
	os.Setenv("DB_SSL_MODE", "disable")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("REDIS_URL", "redis://localhost:6379")
	os.Setenv("DEEPSEEK_API_KEY", "test-key")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	// Test database configuration
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "platewise", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)

	// Test JWT configuration
	assert.Equal(t, "test-secret", cfg.JWTSecret)

	// Test Redis configuration
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)

	// Test LLM configuration
	assert.Equal(t, "test-key", cfg.LLMAPIKey)
	assert.Equal(t, "deepseek-chat", cfg.LLMModel)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	os.Unsetenv("DB_HOST")
	os.Unsetenv("DB_PORT")
	os.Unsetenv("DB_USER")
	os.Unsetenv("DB_PASSWORD")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("DB_SSL_MODE")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("REDIS_URL")
	os.Unsetenv("CI")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	// Test default values
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "platewise", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "your-secret-key", cfg.JWTSecret)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, "https://api.deepseek.com/v1/chat/completions", cfg.LLMAPIURL)
}

func TestValidateConfigProduction(t *testing.T) {
	os.Setenv("ENV", "production")
	defer os.Unsetenv("ENV")

	cfg := &Config{
		ServerPort: "8080",
		DBHost:     "db",
		DBName:     "platewise",
		JWTSecret:  "your-secret-key",
	}

	err := ValidateConfig(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DEEPSEEK_API_KEY")
}
