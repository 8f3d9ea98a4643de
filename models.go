package main

import "time"

type Post struct {
	ID        int
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type User struct {
	ID       int
	Username string
	Password string // bcrypt hash, never plaintext
}
