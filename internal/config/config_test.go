package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "SERVER_PORT", "ADMIN_PASSWORD", "TWILIO_ACCOUNT_SID",
		"TWILIO_AUTH_TOKEN", "TWILIO_PHONE_NUMBER", "REDIS_URL",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "ARCHIVE_S3_BUCKET", "NOTIFY_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.False(t, cfg.UsesDatabase())
	assert.False(t, cfg.SMSConfigured())
	assert.False(t, cfg.ArchiveEnabled())
	assert.Equal(t, "", cfg.AdminPassword)
	assert.Equal(t, 10, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 10*time.Second, cfg.NotifyTimeout)
	assert.Equal(t, "eu-central-1", cfg.ArchiveRegion)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/barber")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ADMIN_PASSWORD", "geheim")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "token")
	t.Setenv("TWILIO_PHONE_NUMBER", "+4930123456")
	t.Setenv("RATE_LIMIT_REQUESTS", "3")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("ARCHIVE_S3_BUCKET", "barber-archive")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.UsesDatabase())
	assert.True(t, cfg.SMSConfigured())
	assert.True(t, cfg.ArchiveEnabled())
	assert.Equal(t, "geheim", cfg.AdminPassword)
	assert.Equal(t, 3, cfg.RateLimitRequests)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "many")
	t.Setenv("RATE_LIMIT_WINDOW", "soon")

	cfg := Load()

	assert.Equal(t, 10, cfg.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}
