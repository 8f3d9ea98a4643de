package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var errUsernameTaken = errors.New("username already taken")

// createUser inserts a new user record. The store enforces uniqueness
// on username; a violation surfaces as errUsernameTaken.
func createUser(ctx context.Context, db *sql.DB, username, passwordHash string) (*User, error) {
	ctx, cancel := dbContext(ctx)
	defer cancel()

	result, err := db.ExecContext(ctx, `
		INSERT INTO users (username, password)
		VALUES (?, ?)`, username, passwordHash)
	if err != nil {
		var serr *sqlite.Error
		if errors.As(err, &serr) {
			switch serr.Code() {
			case sqlite3.SQLITE_CONSTRAINT, sqlite3.SQLITE_CONSTRAINT_UNIQUE:
				return nil, errUsernameTaken
			}
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &User{ID: int(id), Username: username, Password: passwordHash}, nil
}

func getUserByUsername(ctx context.Context, db *sql.DB, username string) (*User, error) {
	ctx, cancel := dbContext(ctx)
	defer cancel()

	row := db.QueryRowContext(ctx, `
		SELECT id, username, password
		FROM users
		WHERE username = ?`, username)

	var user User
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
