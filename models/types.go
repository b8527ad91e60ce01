// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Vote direction constants
const (
	DirUnlike = 0
	DirLike   = 1
)

// Domain types

// User is the public view of an account row. The password hash never
// leaves the handlers package.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	OwnerID   int       `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostWithVotes pairs a post with its aggregated vote count.
type PostWithVotes struct {
	Post  Post `json:"post"`
	Votes int  `json:"votes"`
}

// Request types

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// published defaults to true when omitted
type CreatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

// PostPatch enumerates the updatable post fields. Owner and timestamps
// can never be set through a request body. An omitted published field
// defaults to true, same as creation.
type PostPatch struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Published *bool  `json:"published"`
}

type VoteRequest struct {
	PostsID int `json:"posts_id"`
	Dir     int `json:"dir"`
}

// Response types

type TokenResponse struct {
	UserToken string `json:"user_token"`
	TokenType string `json:"token_type"`
}

type LatestPostResponse struct {
	LatestPost *Post `json:"latestposts"`
}

type DeletePostResponse struct {
	Detail string `json:"detail"`
}

type VoteResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
