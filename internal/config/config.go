package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/vitacart/storefront/pkg/config"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"STOREFRONT_HTTP_PORT" envDefault:"8080"`

	// Provider portal credentials
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	// Checkout policy
	ShippingCost          float64 `env:"SHIPPING_COST" envDefault:"5.99"`
	FreeShippingThreshold float64 `env:"FREE_SHIPPING_THRESHOLD" envDefault:"50"`

	// Simulated provider round trips, in milliseconds
	CheckoutDelayMs int `env:"CHECKOUT_DELAY_MS" envDefault:"1000"`
	LoginDelayMs    int `env:"LOGIN_DELAY_MS" envDefault:"500"`

	// CORS
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// pprof is only mounted when at least one CIDR is allowed
	PprofCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envSeparator:","`

	// Tracing
	TracingEnabled  bool    `env:"OTEL_TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	TracingSampler  float64 `env:"OTEL_TRACES_SAMPLER_RATIO" envDefault:"1.0"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		return fmt.Errorf("admin credentials must not be empty")
	}
	if c.ShippingCost < 0 {
		return fmt.Errorf("shipping cost must not be negative: %v", c.ShippingCost)
	}
	if c.FreeShippingThreshold < 0 {
		return fmt.Errorf("free shipping threshold must not be negative: %v", c.FreeShippingThreshold)
	}
	if c.CheckoutDelayMs < 0 || c.LoginDelayMs < 0 {
		return fmt.Errorf("simulated delays must not be negative")
	}
	if c.TracingSampler < 0 || c.TracingSampler > 1 {
		return fmt.Errorf("invalid trace sampler ratio: %v", c.TracingSampler)
	}
	return nil
}

// CheckoutDelay returns the simulated payment processing delay.
func (c *Config) CheckoutDelay() time.Duration {
	return time.Duration(c.CheckoutDelayMs) * time.Millisecond
}

// LoginDelay returns the simulated credential check delay.
func (c *Config) LoginDelay() time.Duration {
	return time.Duration(c.LoginDelayMs) * time.Millisecond
}
