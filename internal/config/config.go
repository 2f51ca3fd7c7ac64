// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"checkout/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server"`

	// Catalog contains catalog store configuration
	Catalog CatalogConfig `json:"catalog"`

	// Cache contains catalog cache configuration
	Cache CacheConfig `json:"cache"`

	// Gateways contains payment gateway configuration
	Gateways GatewaysConfig `json:"gateways"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Address is the listen address
	Address string `json:"address"`

	// ReadTimeoutSeconds bounds request reading
	ReadTimeoutSeconds int `json:"read_timeout_seconds"`

	// WriteTimeoutSeconds bounds response writing
	WriteTimeoutSeconds int `json:"write_timeout_seconds"`

	// EnableMetrics exposes prometheus metrics on /metrics
	EnableMetrics bool `json:"enable_metrics"`
}

// CatalogConfig contains catalog store settings
type CatalogConfig struct {
	// Driver selects the store implementation (memory, mysql)
	Driver string `json:"driver"`

	// DSN is the MySQL connection string (mysql driver only)
	DSN string `json:"dsn,omitempty"`

	// Migrate runs schema migration and seeds reference data on startup
	Migrate bool `json:"migrate"`
}

// CacheConfig contains catalog cache settings
type CacheConfig struct {
	// Enabled turns the redis read-through cache on
	Enabled bool `json:"enabled"`

	// Address is the redis server address
	Address string `json:"address"`

	// TTLSeconds is how long catalog records stay cached
	TTLSeconds int `json:"ttl_seconds"`
}

// GatewaysConfig contains per-backend gateway settings
type GatewaysConfig struct {
	Paypal PaypalConfig `json:"paypal"`
	Stripe StripeConfig `json:"stripe"`
}

// PaypalConfig contains PayPal gateway settings
type PaypalConfig struct {
	// MaxAmount is the largest amount the gateway accepts
	MaxAmount float64 `json:"max_amount"`
}

// StripeConfig contains Stripe gateway settings
type StripeConfig struct {
	// MinAmount is the smallest amount the gateway processes
	MinAmount int64 `json:"min_amount"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Address:             ":8080",
			ReadTimeoutSeconds:  30,
			WriteTimeoutSeconds: 30,
			EnableMetrics:       true,
		},
		Catalog: CatalogConfig{
			Driver:  "memory",
			Migrate: false,
		},
		Cache: CacheConfig{
			Enabled:    false,
			Address:    "localhost:6379",
			TTLSeconds: 300,
		},
		Gateways: GatewaysConfig{
			Paypal: PaypalConfig{MaxAmount: 100000},
			Stripe: StripeConfig{MinAmount: 100},
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
