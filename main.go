package main

import (
	"database/sql"
	"html/template"
	"log"
	"net/http"

	"github.com/joho/godotenv"
)

type Blog struct {
	db        *sql.DB
	cfg       *Config
	templates map[string]*template.Template
}

func NewBlog(db *sql.DB, cfg *Config) *Blog {
	return &Blog{
		db:        db,
		cfg:       cfg,
		templates: loadTemplates(),
	}
}

func main() {
	godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err = initDB(db); err != nil {
		log.Fatalf("initializing database: %v", err)
	}

	if err = seedSettings(db); err != nil {
		log.Fatalf("seeding settings: %v", err)
	}

	blog := NewBlog(db, cfg)

	fs := http.FileServer(http.Dir("static"))
	http.Handle("GET /static/", http.StripPrefix("/static/", fs))

	// Public routes
	http.HandleFunc("GET /{$}", blog.Home)
	http.HandleFunc("GET /post/{id}", blog.Detail)
	http.HandleFunc("GET /about", blog.About)
	http.HandleFunc("GET /admin", blog.LoginForm)
	http.HandleFunc("POST /admin", blog.Login)
	http.HandleFunc("POST /register", blog.Register)
	http.HandleFunc("GET /logout", blog.Logout)

	// Protected routes
	http.HandleFunc("GET /dashboard", blog.requireAuth(blog.Dashboard))
	http.HandleFunc("GET /add-post", blog.requireAuth(blog.AddPostForm))
	http.HandleFunc("POST /add-post", blog.requireAuth(blog.AddPost))
	http.HandleFunc("GET /edit-post/{id}", blog.requireAuth(blog.EditPostForm))
	http.HandleFunc("PUT /edit-post/{id}", blog.requireAuth(blog.EditPost))
	http.HandleFunc("DELETE /delete-post/{id}", blog.requireAuth(blog.DeletePost))

	log.Printf("Server starting on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
