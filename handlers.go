package main

import (
	"log"
	"net/http"
	"strconv"
)

func (b *Blog) Home(w http.ResponseWriter, r *http.Request) {
	// Garbage or non-positive page numbers clamp to 1.
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	posts, err := getPostsPage(r.Context(), b.db, page)
	if err != nil {
		log.Printf("listing posts: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	total, err := countPosts(r.Context(), b.db)
	if err != nil {
		log.Printf("counting posts: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	hasNext := page*postsPerPage < total
	nextPage := 0
	if hasNext {
		nextPage = page + 1
	}

	data := map[string]any{
		"Title":       "Home",
		"Posts":       posts,
		"Page":        page,
		"HasNextPage": hasNext,
		"NextPage":    nextPage,
	}

	err = b.templates["home.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (b *Blog) Detail(w http.ResponseWriter, r *http.Request) {
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
		"Title": post.Title,
		"Post":  post,
	}

	err = b.templates["post.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (b *Blog) About(w http.ResponseWriter, r *http.Request) {
	about, err := getSetting(r.Context(), b.db, "about")
	if err != nil {
		log.Printf("getting about text: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title": "About",
		"About": about,
	}

	err = b.templates["about.html"].ExecuteTemplate(w, "base", data)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
