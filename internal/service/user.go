package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"taxibook/internal/auth"
	"taxibook/internal/domain"
	"taxibook/internal/redis"
	"taxibook/internal/repository"
)

const minPasswordLength = 8

// UserService handles user registration, login and profile lookups.
type UserService struct {
	userRepo   repository.UserRepository
	userCache  redis.UserCacheInterface
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repository.UserRepository,
	userCache redis.UserCacheInterface,
	tokens *auth.TokenManager,
	bcryptCost int,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		userCache:  userCache,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// RegisterRequest contains the parameters for registering a user.
type RegisterRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Role     domain.UserRole // Optional: defaults to RIDER
}

// Register creates a new user with a hashed password.
// On ErrEmailAlreadyRegistered the existing user is returned alongside the error.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.UserRoleRider
	}

	// Check if the email is already registered
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return existing, ErrEmailAlreadyRegistered
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Phone:        strings.TrimSpace(req.Phone),
		Role:         role,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}

	return user, nil
}

// LoginRequest contains login credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse contains the result of a successful login.
type LoginResponse struct {
	Token string
	User  *domain.User
}

// Login verifies credentials and issues a bearer token.
func (s *UserService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user}, nil
}

// GetByID retrieves a user profile, consulting the cache first.
// The returned user never carries a password hash when served from cache.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if s.userCache != nil {
		cached, err := s.userCache.GetUser(ctx, id)
		if err == nil && cached != nil {
			return &domain.User{
				ID:        cached.ID,
				Name:      cached.Name,
				Email:     cached.Email,
				Phone:     cached.Phone,
				Role:      domain.UserRole(cached.Role),
				CreatedAt: cached.CreatedAt,
			}, nil
		}
		// Cache errors fall through to the repository.
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.userCache != nil {
		_ = s.userCache.SetUser(ctx, &redis.CachedUser{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Phone:     user.Phone,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
		})
	}

	return user, nil
}

func validateRegisterRequest(req RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return ErrInvalidName
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return ErrInvalidEmail
	}
	if len(req.Password) < minPasswordLength {
		return ErrInvalidPassword
	}
	if req.Role != "" && !req.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}
