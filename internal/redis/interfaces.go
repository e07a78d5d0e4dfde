package redis

import "context"

// UserCacheInterface defines the interface for user profile caching.
type UserCacheInterface interface {
	GetUser(ctx context.Context, userID string) (*CachedUser, error)
	SetUser(ctx context.Context, user *CachedUser) error
	InvalidateUser(ctx context.Context, userID string) error
}

// BookingCacheInterface defines the interface for booking list caching.
type BookingCacheInterface interface {
	GetBookingList(ctx context.Context) ([]*CachedBooking, error)
	SetBookingList(ctx context.Context, bookings []*CachedBooking) error
	InvalidateBookingList(ctx context.Context) error
}

// Ensure concrete types implement interfaces.
var (
	_ UserCacheInterface    = (*CacheStore)(nil)
	_ BookingCacheInterface = (*CacheStore)(nil)
)
