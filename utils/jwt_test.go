package utils

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("s3cret")
	token, err := GenerateToken(secret, "admin", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	sub, err := ExtractIDFromToken(secret, token)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if sub != "admin" {
		t.Fatalf("expected subject admin, got %q", sub)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("one"), "admin", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ExtractIDFromToken([]byte("two"), token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	secret := []byte("s3cret")
	token, err := GenerateToken(secret, "admin", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ExtractIDFromToken(secret, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
