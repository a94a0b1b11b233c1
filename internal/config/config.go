// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App    AppConfig
	Logger LoggerConfig
	Mongo  MongoConfig
	Server ServerConfig
	Auth   AuthConfig
	Ingest IngestConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// MongoConfig holds document store configuration.
type MongoConfig struct {
	URI      string        // Connection string (default: mongodb://localhost:27017)
	Database string        // Database name (default: goodbooks)
	Timeout  time.Duration // Per-request deadline for store round trips (default: 10s)
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// AuthConfig holds write-path authentication configuration.
type AuthConfig struct {
	// APIKey is the shared secret compared against the x-api-key header.
	APIKey string
	// RatingRPS / RatingBurst bound the per-client write rate on POST /ratings.
	RatingRPS   float64
	RatingBurst int
}

// IngestConfig holds CSV ingest configuration.
type IngestConfig struct {
	// DataDir is the directory holding the five dataset CSV files.
	DataDir string
	// Dataset is an optional subdirectory of DataDir (empty = DataDir itself).
	Dataset string
	// ChunkSize is the number of CSV rows per bulk write (default: 50000).
	ChunkSize int
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")

	mongoURI := flag.String("mongo-uri", "", "MongoDB connection URI")
	mongoDB := flag.String("db-name", "", "MongoDB database name")
	mongoTimeout := flag.String("mongo-timeout", "", "Per-request store deadline (default: 10s)")

	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	apiKey := flag.String("api-key", "", "Shared secret for POST /ratings")

	dataDir := flag.String("data-dir", "", "Directory holding the dataset CSV files")
	dataset := flag.String("dataset", "", "Dataset subdirectory (empty = data dir itself)")
	chunkSize := flag.String("chunk-size", "", "CSV rows per bulk write (default: 50000)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Mongo: MongoConfig{
			URI:      getConfigValue(*mongoURI, "MONGO_URI", "mongodb://localhost:27017"),
			Database: getConfigValue(*mongoDB, "DB_NAME", "goodbooks"),
		},
		Server: ServerConfig{
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		Auth: AuthConfig{
			APIKey:      getConfigValue(*apiKey, "API_KEY", "secret123"),
			RatingRPS:   getFloatConfigValue("", "RATING_RPS", 5),
			RatingBurst: getIntConfigValue("", "RATING_BURST", 10),
		},
		Ingest: IngestConfig{
			DataDir:   getConfigValue(*dataDir, "DATA_DIR", "data"),
			Dataset:   getConfigValue(*dataset, "DATASET", ""),
			ChunkSize: getIntConfigValue(*chunkSize, "INGEST_CHUNK_SIZE", 50000),
		},
	}

	var err error
	cfg.Mongo.Timeout, err = parseDurationValue("mongo timeout", *mongoTimeout, "MONGO_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cfg.Server.ReadTimeout, err = parseDurationValue("read timeout", *readTimeout, "SERVER_READ_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	cfg.Server.WriteTimeout, err = parseDurationValue("write timeout", *writeTimeout, "SERVER_WRITE_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	cfg.Server.IdleTimeout, err = parseDurationValue("idle timeout", *idleTimeout, "SERVER_IDLE_TIMEOUT", "60s")
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Mongo.URI == "" {
		return errors.New("MONGO_URI is required")
	}
	if c.Mongo.Database == "" {
		return errors.New("DB_NAME is required")
	}
	if c.Ingest.ChunkSize <= 0 {
		return fmt.Errorf("invalid ingest chunk size: %d", c.Ingest.ChunkSize)
	}

	return nil
}

// DatasetPath returns the resolved dataset directory (DataDir joined with the
// optional DATASET subdirectory).
func (c *Config) DatasetPath() string {
	if c.Ingest.Dataset == "" {
		return c.Ingest.DataDir
	}
	return filepath.Join(c.Ingest.DataDir, c.Ingest.Dataset)
}

// parseDurationValue resolves a duration with the usual flag > env > default precedence.
func parseDurationValue(name, flagValue, envKey, defaultValue string) (time.Duration, error) {
	raw := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	return d, nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.Atoi(strValue)
	if err != nil {
		return defaultValue
	}
	return result
}

// getFloatConfigValue returns a float64 from flag, env var, or default.
func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	result, err := strconv.ParseFloat(strValue, 64)
	if err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
