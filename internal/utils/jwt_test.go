package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateToken(testSecret, userID, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed != userID {
		t.Fatalf("subject = %s, want %s", parsed, userID)
	}
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = ParseToken(testSecret, token)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("got %v, want jwt.ErrTokenExpired", err)
	}
}

func TestWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, uuid.New(), time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("token verified with the wrong secret")
	}
}

func TestGarbageToken(t *testing.T) {
	if _, err := ParseToken(testSecret, "not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
