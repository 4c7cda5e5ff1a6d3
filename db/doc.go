// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the JSON
document store.

# Connecting

Open selects the driver from the database type and pings the server:

	conn, err := db.Open(db.TypeSQLite, "placings.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite (modernc.org/sqlite) is limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - document: one JSON payload per (collection, user_key)

# Document Store

Store exposes key-value semantics over the document table:

	store := db.NewStore(conn)
	found, err := store.Get(ctx, models.CollectionJudges, user, &judges)
	err = store.Put(ctx, models.CollectionJudges, user, judges)
	err = store.Delete(ctx, models.CollectionManualPlacement, user)
	users, err := store.Users(ctx, models.CollectionSubmissions)

Put is a single upsert, so each document rewrite is all-or-nothing.
Read-modify-write sequences are not isolated here; callers serialize them.
*/
package db
