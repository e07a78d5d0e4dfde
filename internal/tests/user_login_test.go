package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"taxibook/internal/auth"
	"taxibook/internal/domain"
	"taxibook/internal/service"
)

// ──────────────────────────────────────────────
// 2. LOGIN AND TOKEN ISSUANCE
// ──────────────────────────────────────────────

func registeredUser(t *testing.T, repo *MockUserRepository, email, password string) *domain.User {
	t.Helper()

	hash, err := auth.HashPassword(password, testBcryptCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           "user-" + email,
		Name:         "Test User",
		Email:        email,
		Role:         domain.UserRoleRider,
		PasswordHash: hash,
		CreatedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	repo.AddUser(user)
	return user
}

func TestLogin_ValidCredentials_IssuesToken(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	user := registeredUser(t, userRepo, "alice@example.com", "correct-horse")

	tokens := newTestTokenManager()
	userService := service.NewUserService(userRepo, nil, tokens, testBcryptCost)

	resp, err := userService.Login(context.Background(), service.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if resp.Token == "" {
		t.Fatal("expected a token to be issued")
	}

	if resp.User == nil || resp.User.ID != user.ID {
		t.Error("expected the logged-in user to be returned")
	}

	// The issued token must verify and carry the user's identity.
	claims, err := tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("expected issued token to verify, got: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected claims user_id %s, got %s", user.ID, claims.UserID)
	}
	if claims.Role != string(domain.UserRoleRider) {
		t.Errorf("expected claims role RIDER, got %s", claims.Role)
	}
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	registeredUser(t, userRepo, "alice@example.com", "correct-horse")

	userService := service.NewUserService(userRepo, nil, newTestTokenManager(), testBcryptCost)

	_, err := userService.Login(context.Background(), service.LoginRequest{
		Email:    "Alice@Example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestLogin_BadCredentials_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "alice@example.com", password: "wrong-password"},
		{name: "unknown email", email: "nobody@example.com", password: "correct-horse"},
		{name: "empty password", email: "alice@example.com", password: ""},
		{name: "empty email", email: "", password: "correct-horse"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo := NewMockUserRepository()
			registeredUser(t, userRepo, "alice@example.com", "correct-horse")

			userService := service.NewUserService(userRepo, nil, newTestTokenManager(), testBcryptCost)

			_, err := userService.Login(context.Background(), service.LoginRequest{
				Email:    tc.email,
				Password: tc.password,
			})

			// Every failure mode maps to the same error so callers cannot
			// probe which emails are registered.
			if !errors.Is(err, service.ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got: %v", err)
			}
		})
	}
}

func TestGetByID_PopulatesAndUsesCache(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	user := registeredUser(t, userRepo, "alice@example.com", "correct-horse")

	userCache := NewMockUserCache()
	userService := service.NewUserService(userRepo, userCache, newTestTokenManager(), testBcryptCost)

	// First lookup misses the cache and fills it.
	got, err := userService.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, got.ID)
	}
	if userCache.SetUserCallCount != 1 {
		t.Errorf("expected 1 cache set, got %d", userCache.SetUserCallCount)
	}

	// Second lookup is served from cache without touching the repository.
	repoCalls := userRepo.GetByIDCallCount
	cached, err := userService.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cached.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, cached.ID)
	}
	if userRepo.GetByIDCallCount != repoCalls {
		t.Error("expected second lookup to be served from cache")
	}
	if cached.PasswordHash != "" {
		t.Error("expected cached profile to carry no password hash")
	}

	// The profile must not flip values between the repo-served and the
	// cache-served lookup.
	if !cached.CreatedAt.Equal(user.CreatedAt) {
		t.Errorf("expected cached created_at %v, got %v", user.CreatedAt, cached.CreatedAt)
	}
}
