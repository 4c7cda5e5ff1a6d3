// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the placings API server.

Placings runs judged competitions: an organizer enters judges, stages and
teams, each judge receives a private link to rank the teams of their stage,
and teams are placed by the sum of their ranks (lowest wins).

# Starting the Server

With defaults (SQLite file placings.db, port 3318):

	go run .

With PostgreSQL and mail:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... \
	SMTP_HOST=smtp.example.com SMTP_USER=... SMTP_PASS=... go run .

Or with flags:

	go run . -p 8080 -t sqlite -d ./event.db --base-url https://judging.example.com

A .env file in the working directory is loaded first.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - PUBLIC_BASE_URL (--base-url): Prefix for judge links
  - SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, SMTP_FROM: Invitation mail
  - LOG_LEVEL (--log-level): debug, info, warn or error

# Architecture

  - competition: Judging workflow, scoring and report
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain, request and response types
  - db: Document store over SQLite or PostgreSQL
  - notify: Judge invitations by SMTP
  - auth: Link tokens and entity ids
  - cliparse: Configuration parsing
*/
package main
