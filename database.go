package main

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

// dbTimeout bounds every store access so a hung connection cannot
// suspend a handler indefinitely.
const dbTimeout = 5 * time.Second

func dbContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, dbTimeout)
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func initDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	_, err := db.Exec(schema)
	return err
}

func seedSettings(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM settings WHERE key = 'about'").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaultAbout := "A simple blog. Posts are written and managed by a single administrator through the dashboard."
	_, err := db.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", "about", defaultAbout)
	return err
}
