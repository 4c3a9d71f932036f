package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// DefaultUserAddress is the wallet used by the showcase run when no
// address is configured.
const DefaultUserAddress = "0xdB79e7E9e1412457528e40db9fCDBe69f558777d"

// DefaultBaseURL is the hosted vaults.fyi API.
const DefaultBaseURL = "https://api.vaults.fyi"

// Config holds all application configuration
type Config struct {
	// API settings
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// Wallet the lookups are keyed by
	UserAddress string
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		Timeout:     30 * time.Second,
		UserAddress: DefaultUserAddress,
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() {
	if key := os.Getenv("VAULTS_FYI_API_KEY"); key != "" {
		c.APIKey = key
	}

	if baseURL := os.Getenv("VAULTS_FYI_BASE_URL"); baseURL != "" {
		c.BaseURL = baseURL
	}

	if timeout := os.Getenv("VAULTS_FYI_TIMEOUT"); timeout != "" {
		if t, err := strconv.Atoi(timeout); err == nil {
			c.Timeout = time.Duration(t) * time.Second
		}
	}

	if address := os.Getenv("VAULTS_FYI_ADDRESS"); address != "" {
		c.UserAddress = address
	}
}

// Validate checks if the configuration is valid. It runs before any
// network call so a missing API key fails deterministically.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("missing API key: set the VAULTS_FYI_API_KEY environment variable")
	}

	if c.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid base URL: %s", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %s", c.Timeout)
	}

	if c.UserAddress == "" {
		return fmt.Errorf("user address cannot be empty")
	}

	return nil
}
