package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "JWT_SECRET", "JWT_ISSUER", "JWT_EXPIRES_IN", "CURRENCY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "tradelog", cfg.JWTIssuer)
	assert.Equal(t, 720*time.Hour, cfg.JWTExpirationDur)
	assert.Equal(t, "USD", cfg.Currency)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("CURRENCY", "EUR")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpirationDur)
	assert.Equal(t, "EUR", cfg.Currency)
}

func TestLoadBadTTLFallsBack(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("JWT_EXPIRES_IN", "-5m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 720*time.Hour, cfg.JWTExpirationDur)
}

func TestLoadProductionNeedsSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}
