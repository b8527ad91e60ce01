// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("Hash must not equal the plaintext password")
	}

	if err := VerifyPassword("hunter2", hash); err != nil {
		t.Errorf("Expected correct password to verify, got %v", err)
	}
	if err := VerifyPassword("wrong-password", hash); err == nil {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("Two hashes of the same password should differ (per-hash salt)")
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	const secret = "test-secret"

	token, err := IssueToken(42, secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("Expected non-empty token")
	}

	userID, err := VerifyToken(token, secret)
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}
	if userID != 42 {
		t.Errorf("Expected user id 42, got %d", userID)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	const secret = "test-secret"

	// Already expired at issue time
	token, err := IssueToken(7, secret, -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := VerifyToken(token, secret); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := IssueToken(7, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := VerifyToken(token, "secret-b"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := VerifyToken(tt.token, "test-secret"); err != ErrInvalidToken {
				t.Errorf("Expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestVerifyToken_RejectsUnsignedAlg(t *testing.T) {
	// Token signed with alg "none" must never verify, whatever the secret
	claims := jwt.MapClaims{
		"user_id": 1,
		"exp":     jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("Failed to build unsigned token: %v", err)
	}

	if _, err := VerifyToken(token, "test-secret"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for alg=none token, got %v", err)
	}
}

func TestVerifyToken_MissingUserIDClaim(t *testing.T) {
	const secret = "test-secret"

	claims := jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}

	if _, err := VerifyToken(token, secret); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for token without user_id, got %v", err)
	}
}
