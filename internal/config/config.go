package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Backup   BackupConfig
	AI       AIConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	DSN string
}

// BackupConfig holds the cloud backup store credentials and schedule.
type BackupConfig struct {
	BaseURL      string
	Token        string
	CronSchedule string
}

// AIConfig holds settings for the insight provider.
type AIConfig struct {
	AnthropicKey string
}

// Load reads environment variables (optionally from a .env file) and
// materializes a Config instance.
func Load() (*Config, error) {
	// Missing .env files are acceptable when configuration comes from the
	// environment directly.
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			getenvWithDefault("DB_PORT", "5432"),
		)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("PORT", "3000"),
		},
		Database: DatabaseConfig{
			DSN: dsn,
		},
		Backup: BackupConfig{
			BaseURL:      os.Getenv("BACKUP_STORE_URL"),
			Token:        os.Getenv("BACKUP_STORE_TOKEN"),
			CronSchedule: getenvWithDefault("BACKUP_CRON_SCHEDULE", "0 22 * * *"),
		},
		AI: AIConfig{
			AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated. Cloud
// backup and AI keys are optional; the features degrade to static error
// messages without them.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("PORT must be provided")
	}

	if c.Database.DSN == "" {
		return errors.New("DATABASE_URL or DB_* variables must be provided")
	}

	if c.Backup.CronSchedule == "" {
		return errors.New("BACKUP_CRON_SCHEDULE must not be empty")
	}

	return nil
}

// CloudBackupEnabled reports whether a backup store is configured.
func (c *Config) CloudBackupEnabled() bool {
	return c.Backup.BaseURL != ""
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
