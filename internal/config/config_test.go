package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "key")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, 60*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, 1, cfg.EnhanceConcurrency)
	assert.Len(t, cfg.CORSOrigins, 3)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("ENHANCE_CONCURRENCY", "4")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()

	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 4, cfg.EnhanceConcurrency)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestValidate_MissingSecrets(t *testing.T) {
	cfg := &Config{DBDriver: DriverSQLite, EnhanceConcurrency: 1}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &Config{GoogleAPIKey: "k", JWTSecret: "s", DBDriver: "postgres", EnhanceConcurrency: 1}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}
