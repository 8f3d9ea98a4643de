package main

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// postsPerPage is the fixed page size for the public listing.
const postsPerPage = 3

var errPostNotFound = errors.New("post not found")

// getPostsPage returns the page'th slice of posts, newest first.
// Pages are 1-based.
func getPostsPage(ctx context.Context, db *sql.DB, page int) ([]Post, error) {
	ctx, cancel := dbContext(ctx)
	defer cancel()

	query := `
		SELECT id, title, body, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`
	rows, err := db.QueryContext(ctx, query, postsPerPage, (page-1)*postsPerPage)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func countPosts(ctx context.Context, db *sql.DB) (int, error) {
	ctx, cancel := dbContext(ctx)
	defer cancel()

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	return count, err
}

func getPosts(ctx context.Context, db *sql.DB) ([]Post, error) {
	ctx, cancel := dbContext(ctx)
	defer cancel()

	query := `
		SELECT id, title, body, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC, id DESC`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]Post, error) {
	var posts []Post
	for rows.Next() {
		var post Post
		err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func getPostByID(ctx context.Context, db *sql.DB, id int) (*Post, error) {
	ctx, cancel := dbContext(ctx)
	defer cancel()

	row := db.QueryRowContext(ctx, `
		SELECT id, title, body, created_at, updated_at
		FROM posts
		WHERE id = ?`, id)

	var post Post
	err := row.Scan(&post.ID, &post.Title, &post.Body, &post.CreatedAt, &post.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func createPost(ctx context.Context, db *sql.DB, title, body string) (int64, error) {
	ctx, cancel := dbContext(ctx)
	defer cancel()

	now := time.Now().UTC()
	result, err := db.ExecContext(ctx, `
		INSERT INTO posts (title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?)`, title, body, now, now)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// updatePost overwrites title, body and updated_at. id and created_at
// are never touched. Returns errPostNotFound if no row matched.
func updatePost(ctx context.Context, db *sql.DB, id int, title, body string) error {
	ctx, cancel := dbContext(ctx)
	defer cancel()

	result, err := db.ExecContext(ctx, `
		UPDATE posts
		SET title = ?, body = ?, updated_at = ?
		WHERE id = ?`, title, body, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errPostNotFound
	}

	return nil
}

// deletePost is idempotent: deleting an id that does not exist is not
// an error.
func deletePost(ctx context.Context, db *sql.DB, id int) error {
	ctx, cancel := dbContext(ctx)
	defer cancel()

	_, err := db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	return err
}
