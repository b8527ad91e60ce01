// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/inkwell/auth"
	"github.com/danielhkuo/inkwell/cliparse"
	"github.com/danielhkuo/inkwell/middleware"
	"github.com/danielhkuo/inkwell/models"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Login handles POST /login. Credentials arrive form-encoded with the
// email in the "username" field. Unknown email and wrong password produce
// the same response so callers cannot tell which check failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	var userID int
	var passwordHash string
	err := h.db.QueryRow(`
		SELECT id, password_hash FROM users WHERE email = $1
	`, email).Scan(&userID, &passwordHash)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid Credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query user for login", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.VerifyPassword(password, passwordHash); err != nil {
		middleware.ErrorResponse(w, http.StatusForbidden, "Invalid Credentials")
		return
	}

	token, err := auth.IssueToken(userID, h.cfg.SecretKey, h.cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	slog.Info("user logged in", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.TokenResponse{
		UserToken: token,
		TokenType: "bearer",
	})
}
