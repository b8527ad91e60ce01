// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Inkwell API server.

Inkwell is a small blogging service: users register and log in, publish
posts, and toggle votes (likes) on each other's posts. Authentication is
token-based; only a post's owner may update or delete it.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... SECRET_KEY=... go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..." --secret-key "..."

A .env file in the working directory is loaded at startup if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - SECRET_KEY (--secret-key): Bearer token signing secret

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - TOKEN_TTL_MINUTES (--token-ttl): Token lifetime (default: 60)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (users, login, posts, votes)
  - router: explicit route table using Go 1.22+ routing
  - middleware: auth guard, CORS, logging, JSON helpers
  - models: request/response types
  - auth: password hashing and bearer tokens
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
