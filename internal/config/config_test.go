package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("AUTH_SESSION_TTL_MINUTES", "")
	t.Setenv("RATE_LIMIT_CONTACT_PER_MINUTE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, 5, cfg.RateLimit.ContactPerMinute)
	assert.Equal(t, "admin_session", cfg.Auth.CookieName)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "dev-secret", cfg.Auth.JWTSecret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_SESSION_TTL_MINUTES", "15")
	t.Setenv("AUTH_SECURE_COOKIES", "false")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("ADMIN_EMAIL", "partner@firm.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, 15*time.Minute, cfg.Auth.SessionTTL())
	assert.False(t, cfg.Auth.SecureCookies)
	assert.Equal(t, 30, cfg.App.RequestTimeoutSeconds)
	assert.Equal(t, "partner@firm.test", cfg.Admin.Email)
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "first")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRequiresJWTSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")

	t.Setenv("AUTH_JWT_SECRET", "s3cr3t-from-vault")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t-from-vault", cfg.Auth.JWTSecret)
}
