package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"taxibook/internal/domain"
	"taxibook/internal/redis"
	"taxibook/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	CreateCallCount  int32
	GetByIDCallCount int32

	// Error injection
	CreateError     error
	GetByEmailError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	atomic.AddInt32(&m.GetByIDCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailError != nil {
		return nil, m.GetByEmailError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		copy := *u
		result = append(result, &copy)
	}
	return result, nil
}

// GetUser returns a user for test assertions.
func (m *MockUserRepository) GetUser(id string) *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[id]
}

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository.
// Parties can be preloaded so listings come back with expanded references,
// the way the SQL joins behave.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	parties  map[string]*domain.Party

	// Counters for verification
	CreateCallCount int32
	GetAllCallCount int32

	// Error injection
	CreateError error
	GetAllError error
}

// NewMockBookingRepository creates a new mock booking repository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
		parties:  make(map[string]*domain.Party),
	}
}

// AddParty registers a user summary used when expanding references.
func (m *MockBookingRepository) AddParty(party *domain.Party) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.ID] = party
}

// AddBooking adds a booking to the mock repository.
func (m *MockBookingRepository) AddBooking(booking *domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	return nil
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.BookingDetail, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m.expand(booking), nil
}

func (m *MockBookingRepository) GetAll(ctx context.Context) ([]*domain.BookingDetail, error) {
	atomic.AddInt32(&m.GetAllCallCount, 1)
	if m.GetAllError != nil {
		return nil, m.GetAllError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.BookingDetail, 0, len(m.bookings))
	for _, b := range m.bookings {
		result = append(result, m.expand(b))
	}
	return result, nil
}

// CountBookings returns the number of bookings.
func (m *MockBookingRepository) CountBookings() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

func (m *MockBookingRepository) expand(booking *domain.Booking) *domain.BookingDetail {
	copy := *booking
	detail := &domain.BookingDetail{Booking: copy}
	if p, ok := m.parties[booking.RiderID]; ok {
		detail.Rider = p
	}
	if booking.DriverID != "" {
		if p, ok := m.parties[booking.DriverID]; ok {
			detail.Driver = p
		}
	}
	return detail
}

// ──────────────────────────────────────────────
// MOCK CACHE STORES
// ──────────────────────────────────────────────

// MockUserCache is an in-memory implementation of redis.UserCacheInterface.
type MockUserCache struct {
	mu    sync.RWMutex
	users map[string]*redis.CachedUser

	// Counters for verification
	SetUserCallCount int32
	GetUserCallCount int32
}

// NewMockUserCache creates a new mock user cache.
func NewMockUserCache() *MockUserCache {
	return &MockUserCache{
		users: make(map[string]*redis.CachedUser),
	}
}

func (m *MockUserCache) GetUser(ctx context.Context, userID string) (*redis.CachedUser, error) {
	atomic.AddInt32(&m.GetUserCallCount, 1)
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[userID]
	if !ok {
		return nil, nil // Cache miss
	}
	copy := *user
	return &copy, nil
}

func (m *MockUserCache) SetUser(ctx context.Context, user *redis.CachedUser) error {
	atomic.AddInt32(&m.SetUserCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *user
	m.users[user.ID] = &copy
	return nil
}

func (m *MockUserCache) InvalidateUser(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, userID)
	return nil
}

// MockBookingCache is an in-memory implementation of redis.BookingCacheInterface.
type MockBookingCache struct {
	mu   sync.RWMutex
	list []*redis.CachedBooking

	// Counters for verification
	SetListCallCount    int32
	InvalidateCallCount int32
}

// NewMockBookingCache creates a new mock booking cache.
func NewMockBookingCache() *MockBookingCache {
	return &MockBookingCache{}
}

func (m *MockBookingCache) GetBookingList(ctx context.Context) ([]*redis.CachedBooking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.list, nil
}

func (m *MockBookingCache) SetBookingList(ctx context.Context, bookings []*redis.CachedBooking) error {
	atomic.AddInt32(&m.SetListCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = bookings
	return nil
}

func (m *MockBookingCache) InvalidateBookingList(ctx context.Context) error {
	atomic.AddInt32(&m.InvalidateCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = nil
	return nil
}

// Ensure mocks satisfy the interfaces they stand in for.
var (
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.BookingRepository = (*MockBookingRepository)(nil)
	_ redis.UserCacheInterface     = (*MockUserCache)(nil)
	_ redis.BookingCacheInterface  = (*MockBookingCache)(nil)
)
