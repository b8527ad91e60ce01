// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lib/pq"

	"github.com/danielhkuo/inkwell/cliparse"
	"github.com/danielhkuo/inkwell/middleware"
	"github.com/danielhkuo/inkwell/models"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// Cast handles POST /votes
// dir=1 records a like for the caller, dir=0 removes it. Votes are a
// presence toggle per (user, post): liking twice conflicts, unliking
// without a prior like is not found.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Dir != models.DirLike && req.Dir != models.DirUnlike {
		middleware.ErrorResponse(w, http.StatusBadRequest, "dir must be 0 or 1")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var postExists bool
	err = tx.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)
	`, req.PostsID).Scan(&postExists)
	if err != nil {
		slog.Error("failed to check post existence", "error", err, "post_id", req.PostsID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !postExists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Post with id "+strconv.Itoa(req.PostsID)+" does not exist")
		return
	}

	var voted bool
	err = tx.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM votes WHERE post_id = $1 AND user_id = $2
		)
	`, req.PostsID, user.ID).Scan(&voted)
	if err != nil {
		slog.Error("failed to check vote existence", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if req.Dir == models.DirLike {
		if voted {
			middleware.ErrorResponse(w, http.StatusConflict,
				"User "+strconv.Itoa(user.ID)+" has already voted on post "+strconv.Itoa(req.PostsID))
			return
		}

		_, err = tx.Exec(`
			INSERT INTO votes (post_id, user_id) VALUES ($1, $2)
		`, req.PostsID, user.ID)
		if err != nil {
			// A racing identical request can slip between the existence
			// check and the insert; the composite primary key turns that
			// into a unique violation rather than a duplicate row.
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				middleware.ErrorResponse(w, http.StatusConflict,
					"User "+strconv.Itoa(user.ID)+" has already voted on post "+strconv.Itoa(req.PostsID))
				return
			}
			slog.Error("failed to insert vote", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add vote")
			return
		}

		if err := tx.Commit(); err != nil {
			slog.Error("failed to commit transaction", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add vote")
			return
		}

		slog.Info("vote added", "post_id", req.PostsID, "user_id", user.ID)

		middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
			Message: "successfully added vote",
		})
		return
	}

	// dir == 0: remove an existing vote
	if !voted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Vote does not exist")
		return
	}

	_, err = tx.Exec(`
		DELETE FROM votes WHERE post_id = $1 AND user_id = $2
	`, req.PostsID, user.ID)
	if err != nil {
		slog.Error("failed to delete vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete vote")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete vote")
		return
	}

	slog.Info("vote removed", "post_id", req.PostsID, "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		Message: "successfully deleted vote",
	})
}
