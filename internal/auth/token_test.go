package auth

import (
	"errors"
	"testing"
	"time"

	"taxibook/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:   "user-1",
		Name: "Alice",
		Role: domain.UserRoleRider,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("test-secret", time.Hour)

	token, err := tokens.Issue(testUser())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("expected token to verify, got: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("expected user_id user-1, got %s", claims.UserID)
	}
	if claims.Role != "RIDER" {
		t.Errorf("expected role RIDER, got %s", claims.Role)
	}
	if claims.Subject != "user-1" {
		t.Errorf("expected subject user-1, got %s", claims.Subject)
	}
}

func TestVerify_WrongSecret_Fails(t *testing.T) {
	t.Parallel()

	token, err := NewTokenManager("secret-a", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	_, err = NewTokenManager("secret-b", time.Hour).Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got: %v", err)
	}
}

func TestVerify_ExpiredToken_Fails(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("test-secret", -time.Minute)

	token, err := tokens.Issue(testUser())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, err := tokens.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got: %v", err)
	}
}

func TestVerify_Garbage_Fails(t *testing.T) {
	t.Parallel()

	tokens := NewTokenManager("test-secret", time.Hour)

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := tokens.Verify(bad); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken for %q, got: %v", bad, err)
		}
	}
}
