package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	UserCacheTTL        = 60 * time.Second // Profiles change rarely; read on every authed request
	BookingListCacheTTL = 10 * time.Second // List is invalidated on create anyway
)

// Key prefixes
const (
	userCachePrefix = "cache:user:"
	bookingListKey  = "cache:bookings:all"
)

// CachedUser represents a cached user profile. The password hash is never cached.
type CachedUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// CachedParty represents a cached user summary embedded in a booking.
type CachedParty struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CachedBooking represents a cached booking with expanded references.
type CachedBooking struct {
	ID              string       `json:"id"`
	RiderID         string       `json:"rider_id"`
	DriverID        string       `json:"driver_id,omitempty"`
	PickupLocation  string       `json:"pickup_location"`
	DropoffLocation string       `json:"dropoff_location"`
	ScheduledAt     time.Time    `json:"scheduled_at"`
	Status          string       `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	Rider           *CachedParty `json:"rider,omitempty"`
	Driver          *CachedParty `json:"driver,omitempty"`
}

// GetUser retrieves a user from cache. A nil result with nil error is a cache miss.
func (s *CacheStore) GetUser(ctx context.Context, userID string) (*CachedUser, error) {
	data, err := s.client.Get(ctx, userCachePrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var user CachedUser
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUser stores a user in cache.
func (s *CacheStore) SetUser(ctx context.Context, user *CachedUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userCachePrefix+user.ID, data, UserCacheTTL).Err()
}

// InvalidateUser removes a user from cache.
func (s *CacheStore) InvalidateUser(ctx context.Context, userID string) error {
	return s.client.Del(ctx, userCachePrefix+userID).Err()
}

// GetBookingList retrieves the cached booking listing. A nil result with nil
// error is a cache miss.
func (s *CacheStore) GetBookingList(ctx context.Context) ([]*CachedBooking, error) {
	data, err := s.client.Get(ctx, bookingListKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var bookings []*CachedBooking
	if err := json.Unmarshal(data, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// SetBookingList stores the booking listing in cache.
func (s *CacheStore) SetBookingList(ctx context.Context, bookings []*CachedBooking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, bookingListKey, data, BookingListCacheTTL).Err()
}

// InvalidateBookingList removes the booking listing from cache.
func (s *CacheStore) InvalidateBookingList(ctx context.Context) error {
	return s.client.Del(ctx, bookingListKey).Err()
}
