package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("API_KEY", "test-api-key")
	t.Setenv("SECRET_KEY", "test-cookie-secret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("DB_NAME", "receptkylen")
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_HOST", "redis.internal")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "receptkylen", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "test-api-key", cfg.APIKey)
	assert.Equal(t, "test-cookie-secret", cfg.CookieSecret)

	assert.Equal(t, "redis.internal", cfg.RedisHost)
	assert.True(t, cfg.CacheEnabled())
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("SERVER_HOST", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "6379", cfg.RedisPort)
	assert.False(t, cfg.CacheEnabled())
}

func TestValidateConfigReportsEveryMissingField(t *testing.T) {
	err := ValidateConfig(&Config{DBPort: "5432"})
	assert.Error(t, err)

	assert.Contains(t, err.Error(), "API_KEY")
	assert.Contains(t, err.Error(), "SECRET_KEY")
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "DB_NAME")
	assert.NotContains(t, err.Error(), "DB_PORT is not set")
}

func TestLoadConfigFailsWithoutAPIKey(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("API_KEY", "")

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
