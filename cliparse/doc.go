// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Flags are parsed with pflag and bound into viper, which supplies the
environment fallback and defaults. LoadEnvFile reads an optional .env file
first:

	_ = cliparse.LoadEnvFile()

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite (default) or postgres
  - DatabaseURL: SQLite path (default: placings.db) or PostgreSQL connection string
  - PublicBaseURL: Prefix for judge links (default: http://localhost:<port>)
  - LogLevel: slog level name (default: info)
  - SMTP: mail settings for judge invitations

# CLI Flags

	-p, --port           Server port
	-d, --database-url   Database URL
	-t, --database-type  Database type
	--base-url           Public base URL
	--log-level          Log level
	--smtp-host, --smtp-port, --smtp-user, --smtp-pass, --smtp-from

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	PUBLIC_BASE_URL → --base-url
	LOG_LEVEL       → --log-level
	SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, SMTP_FROM

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - the port is not a positive number
  - the database type is not sqlite or postgres
  - DATABASE_URL is missing for postgres

Email is sent only when SMTP host, user and password are all present
(SMTPConfig.Enabled). SMTP_FROM defaults to the SMTP user.
*/
package cliparse
