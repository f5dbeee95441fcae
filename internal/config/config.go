package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Orders  OrdersConfig
	Storage StorageConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// OrdersConfig holds the external order-acceptance API configuration.
type OrdersConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// StorageConfig holds cart snapshot persistence configuration.
type StorageConfig struct {
	Backend       string // "file" or "redis"
	FilePath      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CartKey       string // fixed key-value slot for the cart snapshot
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Orders: OrdersConfig{
			BaseURL:        getEnv("ORDERS_BASE_URL", ""),
			TimeoutSeconds: getEnvAsInt("ORDERS_TIMEOUT", 15),
		},
		Storage: StorageConfig{
			Backend:       getEnv("STORAGE_BACKEND", "file"),
			FilePath:      getEnv("CART_FILE_PATH", "data/cart.json"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvAsInt("REDIS_DB", 0),
			CartKey:       getEnv("CART_KEY", "air:cart"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Orders.BaseURL == "" {
		return fmt.Errorf("orders base URL is required")
	}

	if c.Orders.TimeoutSeconds < 1 {
		return fmt.Errorf("orders timeout must be at least 1 second")
	}

	switch c.Storage.Backend {
	case "file":
		if c.Storage.FilePath == "" {
			return fmt.Errorf("cart file path is required when storage backend is file")
		}
	case "redis":
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("redis address is required when storage backend is redis")
		}
		if c.Storage.CartKey == "" {
			return fmt.Errorf("cart key is required when storage backend is redis")
		}
	default:
		return fmt.Errorf("invalid storage backend: %s (must be file or redis)", c.Storage.Backend)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
