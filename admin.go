package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func (b *Blog) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title": "Admin",
	}

	err := b.templates["login.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Login verifies the submitted credentials and, on success, issues a
// session token via the cookie transport. Unknown username and wrong
// password collapse to the same response.
func (b *Blog) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := getUserByUsername(r.Context(), b.db, username)
	if err != nil {
		log.Printf("looking up user: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
		return
	}

	if user == nil || !checkPassword(user.Password, password) {
		respondJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
		return
	}

	token, err := signToken(b.cfg.JWTSecret, user.ID, b.cfg.TokenTTL)
	if err != nil {
		log.Printf("signing token: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
		return
	}

	b.setSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Register creates an admin account. The outcome branches
// (created / duplicate / other failure) are mutually exclusive: exactly
// one response per request.
func (b *Blog) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	hash, err := hashPassword(password)
	if err != nil {
		log.Printf("hashing password: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
		return
	}

	user, err := createUser(r.Context(), b.db, username, hash)
	switch {
	case errors.Is(err, errUsernameTaken):
		respondJSON(w, http.StatusConflict, map[string]string{"message": "Username already in use"})
	case err != nil:
		log.Printf("creating user: %v", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	default:
		respondJSON(w, http.StatusCreated, map[string]any{
			"message": "User Created",
			"user":    map[string]any{"id": user.ID, "username": user.Username},
		})
	}
}

func (b *Blog) Dashboard(w http.ResponseWriter, r *http.Request) {
	posts, err := getPosts(r.Context(), b.db)
	if err != nil {
		log.Printf("listing posts: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title": "Dashboard",
		"Posts": posts,
	}

	err = b.templates["dashboard.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (b *Blog) AddPostForm(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title": "Add Post",
	}

	err := b.templates["add-post.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (b *Blog) AddPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	body := r.FormValue("body")

	if _, err := createPost(r.Context(), b.db, title, body); err != nil {
		log.Printf("creating post: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (b *Blog) EditPostForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	post, err := getPostByID(r.Context(), b.db, id)
	if err != nil {
		log.Printf("getting post %d: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	data := map[string]any{
		"Title": fmt.Sprintf("Editing %q", post.Title),
		"Post":  post,
	}

	err = b.templates["edit-post.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (b *Blog) EditPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	body := r.FormValue("body")

	err = updatePost(r.Context(), b.db, id, title, body)
	if errors.Is(err, errPostNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("updating post %d: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/edit-post/%d", id), http.StatusSeeOther)
}

func (b *Blog) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid post ID", http.StatusBadRequest)
		return
	}

	if err := deletePost(r.Context(), b.db, id); err != nil {
		log.Printf("deleting post %d: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout instructs the client to discard the session cookie. There is
// no server-side session state to invalidate.
func (b *Blog) Logout(w http.ResponseWriter, r *http.Request) {
	b.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
