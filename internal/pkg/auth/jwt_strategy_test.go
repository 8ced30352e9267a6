package auth

import (
	"testing"
	"time"
)

func TestJWTStrategyRoundTrip(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 42 {
		t.Fatalf("unexpected user id: %d", userID)
	}
}

func TestJWTStrategyDefaultTTL(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", strategy.ttl)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{TTL: time.Hour})
	if _, err := strategy.ParseToken("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTStrategyRejectsExpired(t *testing.T) {
	strategy := &JWTStrategy{secret: []byte("secret"), ttl: -time.Minute}
	token, err := strategy.IssueToken(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTStrategyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{TTL: time.Hour})
	verifier := NewJWTStrategy("secret-b", Options{TTL: time.Hour})

	token, err := issuer.IssueToken(7)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTStrategyName(t *testing.T) {
	if NewJWTStrategy("s", Options{}).Name() != "jwt" {
		t.Fatal("unexpected strategy name")
	}
}
