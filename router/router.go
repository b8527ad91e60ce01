// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/inkwell/cliparse"
	"github.com/danielhkuo/inkwell/handlers"
	"github.com/danielhkuo/inkwell/middleware"
)

// route is one row of the route table. Protected routes are wrapped in
// bearer-token authentication at registration time.
type route struct {
	method    string
	pattern   string
	handler   http.HandlerFunc
	protected bool
}

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db, cfg)
	authHandler := handlers.NewAuthHandler(db, cfg)
	postHandler := handlers.NewPostHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)

	routes := []route{
		// Accounts and login (public)
		{"POST", "/users", userHandler.Create, false},
		{"GET", "/users/{id}", userHandler.Get, false},
		{"POST", "/login", authHandler.Login, false},

		// Posts (authenticated)
		{"GET", "/posts", postHandler.List, true},
		{"GET", "/posts/latest", postHandler.Latest, true},
		{"GET", "/posts/{id}", postHandler.Get, true},
		{"POST", "/posts", postHandler.Create, true},
		{"PUT", "/posts/{id}", postHandler.Update, true},
		{"DELETE", "/posts/{id}", postHandler.Delete, true},

		// Votes (authenticated)
		{"POST", "/votes", voteHandler.Cast, true},
	}

	for _, rt := range routes {
		h := rt.handler
		if rt.protected {
			h = middleware.RequireAuth(db, cfg, h)
		}
		mux.HandleFunc(rt.method+" "+rt.pattern, middleware.WithLogging(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("inkwell API v1"))
	})

	return middleware.CORS(mux)
}
