// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Inkwell API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - UserHandler: registration and user lookup
  - AuthHandler: login and token issuance
  - PostHandler: post CRUD with vote counts
  - VoteHandler: the vote toggle

Handlers are created via constructor functions that accept *sql.DB and Config:

	userHandler := handlers.NewUserHandler(db, cfg)

# Accounts and Login

	POST /users      → Create (201, never returns the password hash)
	GET  /users/{id} → Get
	POST /login      → Login (form-encoded username/password, returns a
	                   bearer token)

Login failures are uniform: unknown email and wrong password both yield
403 "Invalid Credentials".

# Posts

All post routes sit behind middleware.RequireAuth; the authenticated user
comes off the request context.

	GET    /posts        → List (limit/skip/search, vote counts, id order)
	GET    /posts/latest → Latest
	GET    /posts/{id}   → Get
	POST   /posts        → Create (owner is always the caller)
	PUT    /posts/{id}   → Update (owner only, typed patch)
	DELETE /posts/{id}   → Delete (owner only)

Update and delete check ownership inside a transaction: 404 when the post
does not exist, 403 when the caller is not the owner.

# Votes

	POST /votes → Cast

The body is {posts_id, dir}. dir=1 inserts a vote and conflicts (409) on
a duplicate; dir=0 deletes the vote and is 404 when none exists. The
existence check and the write share one transaction, and the composite
primary key on votes turns a lost race into a 409 instead of a duplicate
row.
*/
package handlers
