// Package config collects the environment-driven settings the service needs
// at startup. Every knob has a BICC_ prefixed variable; defaults suit local
// development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// SMTP holds the mail account used for outbound notifications.
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured reports whether a usable transport is set.
func (s SMTP) Configured() bool {
	return s.Host != "" && s.From != ""
}

// Config is the full runtime configuration.
type Config struct {
	Addr       string
	PGDSN      string
	JWTSecret  string // Base64 or Base64URL, must decode to 32 bytes
	TokenTTL   time.Duration
	CORSOrigin string
	AdminEmail string // recipient for complaint/contact notifications
	Mail       SMTP
	Migrations string
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:       getenv("BICC_ADDR", ":8080"),
		PGDSN:      os.Getenv("BICC_PG_DSN"),
		JWTSecret:  strings.TrimSpace(os.Getenv("BICC_JWT_SECRET")),
		TokenTTL:   24 * time.Hour,
		CORSOrigin: getenv("BICC_CORS_ORIGIN", "http://localhost:4200"),
		AdminEmail: os.Getenv("BICC_ADMIN_EMAIL"),
		Migrations: getenv("BICC_MIGRATIONS_DIR", "migrations"),
		Mail: SMTP{
			Host:     os.Getenv("BICC_SMTP_HOST"),
			Port:     587,
			Username: os.Getenv("BICC_SMTP_USER"),
			Password: os.Getenv("BICC_SMTP_PASS"),
			From:     os.Getenv("BICC_MAIL_FROM"),
		},
	}

	if raw := os.Getenv("BICC_JWT_TTL_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("config: BICC_JWT_TTL_SECONDS must be a positive integer, got %q", raw)
		}
		cfg.TokenTTL = time.Duration(secs) * time.Second
	}
	if raw := os.Getenv("BICC_SMTP_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("config: BICC_SMTP_PORT must be a valid port, got %q", raw)
		}
		cfg.Mail.Port = port
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("config: BICC_JWT_SECRET is required")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
