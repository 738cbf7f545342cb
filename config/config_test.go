package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "noreply@mybexa.com", cfg.FromEmail)
	assert.Equal(t, "info@mybexa.com", cfg.ToEmail)
	assert.False(t, cfg.SendConfirmation)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, 60, cfg.RateLimitCooldownSeconds)
	assert.Equal(t, 3600, cfg.RateLimitTTLSeconds)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("FRONTEND_URL", "https://www.mybexa.com")
	t.Setenv("SEND_CONFIRMATION", "true")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "user")
	t.Setenv("SMTP_PASS", "pass")
	t.Setenv("RATE_LIMIT_COOLDOWN_SECONDS", "120")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://www.mybexa.com", cfg.FrontendURL)
	assert.True(t, cfg.SendConfirmation)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 120, cfg.RateLimitCooldownSeconds)
}

func TestGetEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_COOLDOWN_SECONDS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.RateLimitCooldownSeconds)
}

func TestGetEnvBoolInvalidFallsBack(t *testing.T) {
	t.Setenv("SEND_CONFIRMATION", "yes please")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.SendConfirmation)
}
