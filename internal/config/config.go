package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. Loaded once at startup and
// passed explicitly to the components that need it.
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	SMTP    SMTPConfig
	Mail    MailConfig
	CORS    CORSConfig
	Upload  UploadConfig
}

type ServerConfig struct {
	Port        string
	Host        string
	Environment string
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type MailConfig struct {
	// ContactEmail receives operator notifications for job applications.
	ContactEmail string
	// FromName is the display name used on outbound mail.
	FromName string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type UploadConfig struct {
	// Dir is the transient holding area for uploaded resumes.
	Dir string
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("MONGODB_DATABASE", "meeraai")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("MAIL_FROM_NAME", "MeeraAI Careers")
	viper.SetDefault("UPLOAD_DIR", "uploads")

	cfg := &Config{
		Server: ServerConfig{
			Port:        viper.GetString("SERVER_PORT"),
			Host:        viper.GetString("SERVER_HOST"),
			Environment: viper.GetString("SERVER_ENVIRONMENT"),
		},
		MongoDB: MongoDBConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		Mail: MailConfig{
			ContactEmail: viper.GetString("CONTACT_EMAIL"),
			FromName:     viper.GetString("MAIL_FROM_NAME"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("ALLOWED_ORIGINS")),
		},
		Upload: UploadConfig{
			Dir: viper.GetString("UPLOAD_DIR"),
		},
	}

	if cfg.MongoDB.URI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	return cfg, nil
}

func splitOrigins(s string) []string {
	out := []string{}
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
