package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the application needs at startup. It is built once
// in main and passed down; nothing reads the environment after Load returns.
type Config struct {
	AppPort   string
	DBDriver  string // "sqlite" or "postgres"
	DBDSN     string
	UploadDir string
	MaxUploadMB int

	JWTSecret string

	AdminUsername string
	AdminPassword string // bootstrap only; never logged

	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SMTPFrom         string
	ContactRecipient string

	MailQueueURL string // optional AMQP URL; empty means synchronous send

	LogLevel string
}

// Load reads configuration from environment variables via Viper. Defaults are
// set only for non-secret values; JWT_SECRET has no default and its absence
// is an error.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "portfolio.db")
	viper.SetDefault("UPLOAD_DIR", "static/uploads")
	viper.SetDefault("MAX_UPLOAD_MB", 16)
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:     viper.GetString("APP_PORT"),
		DBDriver:    viper.GetString("DB_DRIVER"),
		DBDSN:       viper.GetString("DB_DSN"),
		UploadDir:   viper.GetString("UPLOAD_DIR"),
		MaxUploadMB: viper.GetInt("MAX_UPLOAD_MB"),

		JWTSecret: viper.GetString("JWT_SECRET"),

		AdminUsername: viper.GetString("ADMIN_USERNAME"),
		AdminPassword: viper.GetString("ADMIN_PASSWORD"),

		SMTPHost:         viper.GetString("SMTP_HOST"),
		SMTPPort:         viper.GetString("SMTP_PORT"),
		SMTPUsername:     viper.GetString("SMTP_USERNAME"),
		SMTPPassword:     viper.GetString("SMTP_PASSWORD"),
		SMTPFrom:         viper.GetString("SMTP_FROM"),
		ContactRecipient: viper.GetString("CONTACT_RECIPIENT"),

		MailQueueURL: viper.GetString("MAIL_QUEUE_URL"),

		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}
	if cfg.ContactRecipient == "" {
		cfg.ContactRecipient = cfg.SMTPFrom
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 16
	}

	return cfg, nil
}

// MaxUploadBytes returns the request body limit derived from MAX_UPLOAD_MB.
func (c *Config) MaxUploadBytes() int {
	return c.MaxUploadMB * 1024 * 1024
}
