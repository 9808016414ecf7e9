// Package config loads the process configuration from the environment.
// Required variables fail startup; optional feature groups (sheets,
// rabbitmq, smtp) only produce a warning so the service degrades to
// running without the feature.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string

	SheetsSpreadsheetID   string
	SheetsCredentialsFile string

	RabbitMQURL string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
	MailTo   string

	AllowedOrigins []string
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:        envOr("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),

		SheetsSpreadsheetID:   os.Getenv("GOOGLE_SHEETS_ID"),
		SheetsCredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),

		RabbitMQURL: os.Getenv("RABBITMQ_URL"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: envInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: os.Getenv("MAIL_FROM"),
		MailTo:   os.Getenv("MAIL_TO"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if len(cfg.JWTSecret) < 32 {
		log.Println("[CONFIG] JWT_SECRET is weak (< 32 characters), use a stronger secret in production")
	}
	if !cfg.SheetsConfigured() {
		log.Println("[CONFIG] GOOGLE_SHEETS_ID / GOOGLE_CREDENTIALS_FILE not set, sheet sync disabled")
	}
	if cfg.RabbitMQURL == "" {
		log.Println("[CONFIG] RABBITMQ_URL not set, sync runs in-process")
	}
	if !cfg.MailConfigured() {
		log.Println("[CONFIG] SMTP not fully configured, reconcile report mail disabled")
	}

	return cfg, nil
}

func (c *Config) SheetsConfigured() bool {
	return c.SheetsSpreadsheetID != "" && c.SheetsCredentialsFile != ""
}

func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.MailFrom != "" && c.MailTo != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
