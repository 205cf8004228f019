package config

import (
	"os"
	"time"

	"github.com/saransh1220/filevault/internal/database"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database database.PostgresConfig
	Redis    database.RedisConfig
	Session  SessionConfig
	Storage  StorageConfig
	Worker   WorkerConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	MigrationsPath string
}

// SessionConfig holds session token configuration
type SessionConfig struct {
	TTL time.Duration
}

// StorageConfig holds blob storage configuration
type StorageConfig struct {
	UseS3        bool
	S3Region     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3BucketName string
	S3UseSSL     bool
	LocalPath    string
}

// WorkerConfig holds thumbnail worker configuration
type WorkerConfig struct {
	QueueKey string
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "5000"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", ""),
		},
		Database: database.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "filevault"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: database.RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Session: SessionConfig{
			TTL: parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),
		},
		Storage: StorageConfig{
			UseS3:        getEnv("USE_S3", "false") == "true",
			S3Region:     getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:   getEnv("S3_ENDPOINT", ""),
			S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
			S3BucketName: getEnv("S3_BUCKET", ""),
			S3UseSSL:     getEnv("S3_USE_SSL", "true") == "true",
			LocalPath:    getEnv("FOLDER_PATH", "/tmp/files_manager"),
		},
		Worker: WorkerConfig{
			QueueKey: getEnv("QUEUE_KEY", "thumbnail_jobs"),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
