// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether invitations can be sent by email
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	PublicBaseURL string
	LogLevel      string
	SMTP          SMTPConfig
}

// SlogLevel parses LogLevel, falling back to info
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// viper key -> flag name; env variables are the upper-cased keys
var flagKeys = map[string]string{
	"port":            "port",
	"database_url":    "database-url",
	"database_type":   "database-type",
	"public_base_url": "base-url",
	"log_level":       "log-level",
	"smtp_host":       "smtp-host",
	"smtp_port":       "smtp-port",
	"smtp_user":       "smtp-user",
	"smtp_pass":       "smtp-pass",
	"smtp_from":       "smtp-from",
}

// LoadEnvFile loads variables from .env files without overriding the
// environment. Missing files are ignored.
func LoadEnvFile(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// ParseFlags reads flags, falling back to environment variables and defaults
func ParseFlags(args []string) (Config, error) {
	flags := pflag.NewFlagSet("placings", pflag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	flags.IntP("port", "p", 0, "Server port")
	flags.StringP("database-url", "d", "", "Database URL")
	flags.StringP("database-type", "t", "", "Database type (sqlite or postgres)")
	flags.String("base-url", "", "Public base URL used in judge links")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	// Mail (prefer env for the password, but allow CLI for dev)
	flags.String("smtp-host", "", "SMTP host")
	flags.Int("smtp-port", 0, "SMTP port")
	flags.String("smtp-user", "", "SMTP username")
	flags.String("smtp-pass", "", "SMTP password (prefer env)")
	flags.String("smtp-from", "", "Sender address for invitations")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("port", 3318)
	v.SetDefault("database_type", "sqlite")
	v.SetDefault("log_level", "info")
	v.SetDefault("smtp_port", 587)
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	cfg := Config{
		Port:          v.GetInt("port"),
		DatabaseURL:   v.GetString("database_url"),
		DatabaseType:  strings.ToLower(v.GetString("database_type")),
		PublicBaseURL: v.GetString("public_base_url"),
		LogLevel:      v.GetString("log_level"),
		SMTP: SMTPConfig{
			Host:     v.GetString("smtp_host"),
			Port:     v.GetInt("smtp_port"),
			Username: v.GetString("smtp_user"),
			Password: v.GetString("smtp_pass"),
			From:     v.GetString("smtp_from"),
		},
	}

	if cfg.Port <= 0 {
		return Config{}, errors.New("invalid port (use -p or PORT env)")
	}

	switch cfg.DatabaseType {
	case "sqlite":
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "placings.db"
		}
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	if cfg.SMTP.From == "" {
		cfg.SMTP.From = cfg.SMTP.Username
	}
	if cfg.SMTP.From == "" {
		cfg.SMTP.From = "noreply@example.com"
	}

	return cfg, nil
}
