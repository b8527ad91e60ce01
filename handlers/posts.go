// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/inkwell/cliparse"
	"github.com/danielhkuo/inkwell/middleware"
	"github.com/danielhkuo/inkwell/models"
)

type PostHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPostHandler(db *sql.DB, cfg cliparse.Config) *PostHandler {
	return &PostHandler{db: db, cfg: cfg}
}

// List handles GET /posts?limit&skip&search
// Returns posts with their vote counts, ordered by post id ascending.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 10
	skip := 0
	search := r.URL.Query().Get("search")

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}
	if skipStr := r.URL.Query().Get("skip"); skipStr != "" {
		n, err := strconv.Atoi(skipStr)
		if err != nil || n < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "skip must be a non-negative integer")
			return
		}
		skip = n
	}

	rows, err := h.db.Query(`
		SELECT posts.id, posts.title, posts.content, posts.published,
		       posts.owner_id, posts.created_at,
		       COUNT(votes.post_id) AS votes
		FROM posts
		LEFT JOIN votes ON votes.post_id = posts.id
		WHERE posts.title LIKE '%' || $1 || '%'
		GROUP BY posts.id
		ORDER BY posts.id
		LIMIT $2 OFFSET $3
	`, search, limit, skip)
	if err != nil {
		slog.Error("failed to query posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	results := []models.PostWithVotes{}
	for rows.Next() {
		var pv models.PostWithVotes
		if err := rows.Scan(
			&pv.Post.ID, &pv.Post.Title, &pv.Post.Content, &pv.Post.Published,
			&pv.Post.OwnerID, &pv.Post.CreatedAt, &pv.Votes,
		); err != nil {
			slog.Error("failed to scan post", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		results = append(results, pv)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate posts", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// Latest handles GET /posts/latest
// Returns the single most recently created post, or null when no posts exist.
func (h *PostHandler) Latest(w http.ResponseWriter, r *http.Request) {
	var post models.Post
	err := h.db.QueryRow(`
		SELECT id, title, content, published, owner_id, created_at
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`).Scan(&post.ID, &post.Title, &post.Content, &post.Published, &post.OwnerID, &post.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.JSONResponse(w, http.StatusOK, models.LatestPostResponse{LatestPost: nil})
		return
	}
	if err != nil {
		slog.Error("failed to query latest post", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LatestPostResponse{LatestPost: &post})
}

// Get handles GET /posts/{id}
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	var pv models.PostWithVotes
	err = h.db.QueryRow(`
		SELECT posts.id, posts.title, posts.content, posts.published,
		       posts.owner_id, posts.created_at,
		       COUNT(votes.post_id) AS votes
		FROM posts
		LEFT JOIN votes ON votes.post_id = posts.id
		WHERE posts.id = $1
		GROUP BY posts.id
	`, id).Scan(
		&pv.Post.ID, &pv.Post.Title, &pv.Post.Content, &pv.Post.Published,
		&pv.Post.OwnerID, &pv.Post.CreatedAt, &pv.Votes,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post with id "+strconv.Itoa(id)+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to query post", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, pv)
}

// Create handles POST /posts
// The owner is always the authenticated caller; any owner field in the
// request body is ignored.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req models.CreatePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	var post models.Post
	err := h.db.QueryRow(`
		INSERT INTO posts (title, content, published, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, content, published, owner_id, created_at
	`, req.Title, req.Content, published, user.ID, time.Now()).Scan(
		&post.ID, &post.Title, &post.Content, &post.Published, &post.OwnerID, &post.CreatedAt,
	)
	if err != nil {
		slog.Error("failed to insert post", "error", err, "owner_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	slog.Info("post created", "post_id", post.ID, "owner_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, post)
}

// Update handles PUT /posts/{id}
// Only the owner may update; the patch overwrites title, content and
// published, nothing else.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	var patch models.PostPatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if patch.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if patch.Content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "content is required")
		return
	}

	published := true
	if patch.Published != nil {
		published = *patch.Published
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var ownerID int
	err = tx.QueryRow(`SELECT owner_id FROM posts WHERE id = $1`, id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post with id "+strconv.Itoa(id)+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to query post owner", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if ownerID != user.ID {
		middleware.ErrorResponse(w, http.StatusForbidden, "You are not allowed to update this post")
		return
	}

	var post models.Post
	err = tx.QueryRow(`
		UPDATE posts
		SET title = $1, content = $2, published = $3
		WHERE id = $4
		RETURNING id, title, content, published, owner_id, created_at
	`, patch.Title, patch.Content, published, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.Published, &post.OwnerID, &post.CreatedAt,
	)
	if err != nil {
		slog.Error("failed to update post", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update post")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update post")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, post)
}

// Delete handles DELETE /posts/{id}
// Only the owner may delete. Votes on the post go with it via the
// foreign key cascade.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var ownerID int
	err = tx.QueryRow(`SELECT owner_id FROM posts WHERE id = $1`, id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post with id "+strconv.Itoa(id)+" not found")
		return
	}
	if err != nil {
		slog.Error("failed to query post owner", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if ownerID != user.ID {
		middleware.ErrorResponse(w, http.StatusForbidden, "You are not allowed to delete this post")
		return
	}

	if _, err := tx.Exec(`DELETE FROM posts WHERE id = $1`, id); err != nil {
		slog.Error("failed to delete post", "error", err, "post_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	slog.Info("post deleted", "post_id", id, "owner_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, models.DeletePostResponse{
		Detail: "Post with id: " + strconv.Itoa(id) + " has been successfully deleted",
	})
}
