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
	Client   ClientConfig
	Engine   EngineConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration
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
	GRPCAddr   string
	ReportsDir string
}

// ClientConfig holds tracking-client configuration
type ClientConfig struct {
	ServerAddr string
	// PollInterval is the fixed delay between status queries while a job
	// is non-terminal.
	PollInterval time.Duration
	// MaxPollFailures bounds the run of consecutive failed polls before
	// tracking gives up; isolated failures are logged and absorbed.
	MaxPollFailures int
	// PreferPush selects the push channel as the initial transport,
	// falling back to polling on a connection error.
	PreferPush bool
}

// EngineConfig holds the remote audit engine configuration
type EngineConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// IngestConfig holds drop-directory ingestion configuration
type IngestConfig struct {
	WatchDir string
	Debounce time.Duration
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
			GRPCAddr:   getEnv("GRPC_ADDR", ":8080"),
			ReportsDir: getEnv("REPORTS_DIR", "./reports"),
		},
		Client: ClientConfig{
			ServerAddr:      getEnv("AUDIT_SERVER_ADDR", "localhost:8080"),
			PollInterval:    getEnvAsDuration("AUDIT_POLL_INTERVAL", time.Second),
			MaxPollFailures: getEnvAsInt("AUDIT_MAX_POLL_FAILURES", 5),
			PreferPush:      getEnvAsBool("AUDIT_PREFER_PUSH", true),
		},
		Engine: EngineConfig{
			URL:     getEnv("AUDIT_ENGINE_URL", ""),
			APIKey:  getEnv("AUDIT_ENGINE_API_KEY", ""),
			Timeout: getEnvAsDuration("AUDIT_ENGINE_TIMEOUT", 5*time.Minute),
		},
		Ingest: IngestConfig{
			WatchDir: getEnv("AUDIT_WATCH_DIR", ""),
			Debounce: getEnvAsDuration("AUDIT_WATCH_DEBOUNCE", 500*time.Millisecond),
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

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
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

// Validate validates the loaded configuration. DB_URL is not required:
// without it the server falls back to embedded SQLite.
func (c *Config) Validate() error {
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Engine.URL == "" {
		return NewAppError("CONFIG_ERROR", "AUDIT_ENGINE_URL is required", ErrInvalidInput)
	}
	return nil
}
