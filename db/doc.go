// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema

CreateSchema creates all tables using CREATE TABLE IF NOT EXISTS, so it is
safe to run on every startup:

	if err := db.CreateSchema(dbConn); err != nil {
		// handle error
	}

# Tables

  - users: accounts (unique email, bcrypt password hash, creation time)
  - posts: user-owned posts; owner_id cascades on user deletion
  - votes: (post_id, user_id) pairs; composite primary key, both sides
    cascade on deletion

# Constraints

  - users.email (unique)
  - votes (post_id, user_id) composite primary key — at most one vote per
    user per post; handlers check existence before inserting and treat a
    unique violation from a racing request as a conflict

# Indexes

  - posts.owner_id, posts.created_at
  - votes.user_id
*/
package db
