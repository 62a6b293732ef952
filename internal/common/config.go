package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Catalog  CatalogConfig
	Watch    WatchConfig
	Export   ExportConfig
}

// DatabaseConfig holds remote-store (authoritative catalog) configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// CatalogConfig holds local-cache and resolver configuration
type CatalogConfig struct {
	CachePath      string
	SeedPath       string
	FuzzyThreshold float64
	SyncTimeout    time.Duration
}

// ExportConfig holds output artifact configuration
type ExportConfig struct {
	OutputDir string
}

// WatchConfig holds watch-mode folder scan configuration
type WatchConfig struct {
	Dir          string
	PollInterval time.Duration
	Workers      int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Catalog: CatalogConfig{
			CachePath:      getEnv("CACHE_PATH", "./data/vessels_cache.db"),
			SeedPath:       getEnv("SEED_PATH", ""),
			FuzzyThreshold: getEnvAsFloat64("FUZZY_THRESHOLD", 0.80),
			SyncTimeout:    getEnvAsDuration("SYNC_TIMEOUT", 15*time.Second),
		},
		Watch: WatchConfig{
			Dir:          getEnv("WATCH_DIR", ""),
			PollInterval: getEnvAsDuration("WATCH_POLL_INTERVAL", time.Second),
			Workers:      getEnvAsInt("WATCH_WORKERS", 4),
		},
		Export: ExportConfig{
			OutputDir: getEnv("OUTPUT_DIR", "./output"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Catalog.CachePath == "" {
		return NewAppError("CONFIG_ERROR", "CACHE_PATH is required", ErrInvalidInput)
	}
	if c.Catalog.FuzzyThreshold <= 0 || c.Catalog.FuzzyThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "FUZZY_THRESHOLD must be in (0, 1]", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
