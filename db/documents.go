// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
)

// Store keeps JSON documents keyed by (collection, user).
// Every Put rewrites the whole document in one statement.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get decodes the document into v. It reports false when no document exists,
// leaving v untouched.
func (s *Store) Get(ctx context.Context, collection, user string, v any) (bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM document
		WHERE collection = $1 AND user_key = $2
	`, collection, user).Scan(&payload)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s document: %w", collection, err)
	}

	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return false, fmt.Errorf("failed to parse %s document: %w", collection, err)
	}

	return true, nil
}

// Put replaces the document with the JSON encoding of v
func (s *Store) Put(ctx context.Context, collection, user string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s document: %w", collection, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO document (collection, user_key, payload, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (collection, user_key)
		DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, collection, user, string(payload), time.Now().UTC())

	if err != nil {
		return fmt.Errorf("failed to write %s document: %w", collection, err)
	}

	slog.Debug("document written",
		"collection", collection,
		"user", user,
		"size", humanize.Bytes(uint64(len(payload))),
	)
	return nil
}

// Delete removes the document. Deleting a missing document is not an error.
func (s *Store) Delete(ctx context.Context, collection, user string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM document WHERE collection = $1 AND user_key = $2
	`, collection, user)

	if err != nil {
		return fmt.Errorf("failed to delete %s document: %w", collection, err)
	}
	return nil
}

// Users lists the users holding a document in the collection, in key order
func (s *Store) Users(ctx context.Context, collection string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_key FROM document
		WHERE collection = $1
		ORDER BY user_key
	`, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", collection, err)
	}
	defer rows.Close()

	users := []string{}
	for rows.Next() {
		var user string
		if err := rows.Scan(&user); err != nil {
			return nil, fmt.Errorf("failed to scan %s document owner: %w", collection, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", collection, err)
	}
	return users, nil
}
