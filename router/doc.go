// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires handlers to HTTP routes.

# Route Table

Routes are declared in one table of {method, pattern, handler, protected}
rows and registered in a loop. Protected rows get wrapped in
middleware.RequireAuth, everything gets request logging, and CORS wraps
the whole mux:

	mux := router.NewRouter(db, cfg)

Patterns use Go 1.22+ method routing, so "GET /posts/latest" takes
precedence over "GET /posts/{id}".

# Public Routes

	POST /users
	GET  /users/{id}
	POST /login
	GET  /health
	GET  /

# Protected Routes

Everything under /posts and /votes requires an Authorization: Bearer
header; missing or invalid tokens get a 401 with a WWW-Authenticate
challenge.
*/
package router
