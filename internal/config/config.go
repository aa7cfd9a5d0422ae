package config

import (
	"os"
	"strconv"

	"github.com/mithunxcpu/portfolio/internal/dedup"
)

// Config holds everything the site and the dedup tool read from the environment
type Config struct {
	Server   ServerConfig
	SMTP     SMTPConfig
	Admin    AdminConfig
	Content  ContentConfig
	Storage  StorageConfig
	LogLevel string
}

type ServerConfig struct {
	Port string
}

// SMTPConfig is used by the contact form
type SMTPConfig struct {
	Host    string
	Port    string
	User    string
	Pass    string
	ToEmail string
}

type AdminConfig struct {
	Username string
	Password string
}

// ContentConfig points at the markdown posts and the duplicate check settings
type ContentConfig struct {
	PostsDir       string
	DedupThreshold float64
}

type StorageConfig struct {
	DBPath                 string
	VisitorRetentionMonths int
	TrackVisitors          bool
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: GetStringEnv("PORT", "8080"),
		},
		SMTP: SMTPConfig{
			Host:    GetStringEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:    GetStringEnv("SMTP_PORT", "587"),
			User:    GetStringEnv("SMTP_USER", ""),
			Pass:    GetStringEnv("SMTP_PASS", ""),
			ToEmail: GetStringEnv("TO_EMAIL", ""),
		},
		Admin: AdminConfig{
			Username: GetStringEnv("ADMIN_USERNAME", ""),
			Password: GetStringEnv("ADMIN_PASSWORD", ""),
		},
		Content: ContentConfig{
			PostsDir:       GetStringEnv("CONTENT_DIR", "content/posts"),
			DedupThreshold: GetFloatEnv("DEDUP_THRESHOLD", dedup.DefaultThreshold),
		},
		Storage: StorageConfig{
			DBPath:                 GetStringEnv("DB_PATH", "portfolio.db"),
			VisitorRetentionMonths: GetIntEnv("VISITOR_RETENTION_MONTHS", 12),
			TrackVisitors:          GetBoolEnv("TRACK_VISITORS", true),
		},
		LogLevel: GetStringEnv("LOG_LEVEL", "info"),
	}
}

// Dedup builds the detector configuration for the posts directory
func (c *Config) Dedup() dedup.Config {
	cfg := dedup.DefaultConfig(c.Content.PostsDir)
	cfg.OverlapThreshold = c.Content.DedupThreshold
	return cfg
}

// GetStringEnv gets a string environment variable with a default value
func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnv gets an integer environment variable with a default value
func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetFloatEnv gets a float environment variable with a default value
func GetFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetBoolEnv gets a boolean environment variable with a default value
func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
