package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9999")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("METRICS_TOKEN", "tok")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Address)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, "tok", cfg.MetricsToken)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("ADDRESS", ":8080")
	t.Setenv("SESSION_SECRET", "too-short")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadAddress(t *testing.T) {
	t.Setenv("ADDRESS", "not an address")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")

	_, err := Load()
	assert.Error(t, err)
}
