package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, "admin123", cfg.AdminPassword)
	assert.Equal(t, 5.99, cfg.ShippingCost)
	assert.Equal(t, float64(50), cfg.FreeShippingThreshold)
	assert.Equal(t, time.Second, cfg.CheckoutDelay())
	assert.Equal(t, 500*time.Millisecond, cfg.LoginDelay())
	assert.False(t, cfg.TracingEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_PORT", "9090")
	t.Setenv("ADMIN_USERNAME", "operator")
	t.Setenv("CHECKOUT_DELAY_MS", "0")
	t.Setenv("CORS_ORIGINS", "https://store.example.com,https://admin.example.com")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "operator", cfg.AdminUsername)
	assert.Equal(t, time.Duration(0), cfg.CheckoutDelay())
	assert.Equal(t, []string{"https://store.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("STOREFRONT_HTTP_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid HTTP port")
}

func TestLoad_NegativeDelay(t *testing.T) {
	t.Setenv("LOGIN_DELAY_MS", "-5")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidSamplerRatio(t *testing.T) {
	t.Setenv("OTEL_TRACES_SAMPLER_RATIO", "1.5")

	_, err := Load()
	require.Error(t, err)
}
