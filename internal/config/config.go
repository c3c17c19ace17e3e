// Package config loads configuration from environment variables,
// 12-factor style.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/balcao-cafe/balcao/internal/store/jsonstore"
)

// Client configures the storefront client.
type Client struct {
	Endpoint string // catalog endpoint URL
	DataDir  string // where the cart is persisted
}

// LoadClient reads the client configuration. The defaults match the
// bundled catalogd fixture server.
func LoadClient() (*Client, error) {
	dataDir := os.Getenv("BALCAO_DATA_DIR")
	if dataDir == "" {
		var err error
		dataDir, err = jsonstore.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return &Client{
		Endpoint: getEnv("BALCAO_API_URL", "http://localhost:3000/coffee"),
		DataDir:  dataDir,
	}, nil
}

// Server configures the catalogd fixture server.
type Server struct {
	Host            string
	Port            string
	LogLevel        string
	ReadTimeout     int // seconds
	WriteTimeout    int
	ShutdownTimeout int
}

// LoadServer reads and validates the catalogd configuration.
func LoadServer() (*Server, error) {
	cfg := &Server{
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
		WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
		ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the server configuration.
func (c *Server) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
