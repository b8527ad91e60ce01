// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateUserRequest: email, password
  - CreatePostRequest: title, content, published (optional, defaults true)
  - PostPatch: title, content, published (optional, defaults true — the
    full set of updatable fields)
  - VoteRequest: posts_id, dir (0 or 1)

# Response Types

Types for JSON responses:

  - TokenResponse: user_token, token_type
  - LatestPostResponse: latestposts (null when no posts exist)
  - DeletePostResponse: detail
  - VoteResponse: message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: account id, email, created_at (never the password hash)
  - Post: post row including owner_id
  - PostWithVotes: a post paired with its vote count

# Constants

Vote directions:

	DirUnlike = 0
	DirLike   = 1

A dir of 1 records a like for the caller; a dir of 0 removes it. Votes are
a presence toggle per (user, post), not an accumulating score.
*/
package models
