package repository

import (
	"context"

	"taxibook/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID with its rider and driver expanded.
	GetByID(ctx context.Context, id string) (*domain.BookingDetail, error)

	// GetAll retrieves all bookings, newest first, with references expanded.
	GetAll(ctx context.Context) ([]*domain.BookingDetail, error)
}
