// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and bearer token utilities.

# Password Hashing

Passwords are stored only as one-way bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err := auth.VerifyPassword(password, hash)

VerifyPassword returns a non-nil error on mismatch; callers treat that
error as opaque so login failures stay indistinguishable from unknown
emails.

# Bearer Tokens

Tokens are HS256-signed JWTs carrying a user_id claim and an absolute
expiry:

	token, err := auth.IssueToken(userID, secret, ttl)
	userID, err := auth.VerifyToken(token, secret)

The secret and TTL come from process configuration (see cliparse). There
is no revocation list and no refresh tokens; once the exp claim passes,
VerifyToken fails with ErrInvalidToken.

VerifyToken is deliberately database-free: a token for a deleted user
still verifies. The auth middleware re-resolves the user id against the
users table and rejects tokens whose user no longer exists.
*/
package auth
