package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"taxibook/internal/domain"
	"taxibook/internal/redis"
	"taxibook/internal/repository"
)

// BookingService handles booking creation and lookups.
type BookingService struct {
	bookingRepo  repository.BookingRepository
	userRepo     repository.UserRepository
	bookingCache redis.BookingCacheInterface
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	bookingCache redis.BookingCacheInterface,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		bookingCache: bookingCache,
	}
}

// CreateBookingRequest contains the parameters for creating a booking.
type CreateBookingRequest struct {
	RiderID         string
	DriverID        string // Optional: a booking may be created without a driver
	PickupLocation  string
	DropoffLocation string
	ScheduledAt     time.Time
}

// Create validates the referenced parties and persists a new booking
// in PENDING status.
func (s *BookingService) Create(ctx context.Context, req CreateBookingRequest) (*domain.BookingDetail, error) {
	if err := validateCreateBookingRequest(req); err != nil {
		return nil, err
	}

	rider, err := s.userRepo.GetByID(ctx, req.RiderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRiderNotFound
		}
		return nil, err
	}
	if rider.Role != domain.UserRoleRider {
		return nil, ErrNotARider
	}

	var driver *domain.User
	if req.DriverID != "" {
		driver, err = s.userRepo.GetByID(ctx, req.DriverID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrDriverNotFound
			}
			return nil, err
		}
		if driver.Role != domain.UserRoleDriver {
			return nil, ErrNotADriver
		}
	}

	booking := &domain.Booking{
		ID:              uuid.New().String(),
		RiderID:         rider.ID,
		PickupLocation:  strings.TrimSpace(req.PickupLocation),
		DropoffLocation: strings.TrimSpace(req.DropoffLocation),
		ScheduledAt:     req.ScheduledAt,
		Status:          domain.BookingStatusPending,
		CreatedAt:       time.Now(),
	}
	if driver != nil {
		booking.DriverID = driver.ID
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// The listing is stale now; drop it rather than rebuilding it inline.
	if s.bookingCache != nil {
		_ = s.bookingCache.InvalidateBookingList(ctx)
	}

	detail := &domain.BookingDetail{
		Booking: *booking,
		Rider:   &domain.Party{ID: rider.ID, Name: rider.Name, Phone: rider.Phone},
	}
	if driver != nil {
		detail.Driver = &domain.Party{ID: driver.ID, Name: driver.Name, Phone: driver.Phone}
	}

	return detail, nil
}

// List retrieves all bookings with references expanded, consulting the cache first.
func (s *BookingService) List(ctx context.Context) ([]*domain.BookingDetail, error) {
	if s.bookingCache != nil {
		cached, err := s.bookingCache.GetBookingList(ctx)
		if err == nil && cached != nil {
			return fromCachedBookings(cached), nil
		}
		// Cache errors fall through to the repository.
	}

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.bookingCache != nil {
		_ = s.bookingCache.SetBookingList(ctx, toCachedBookings(bookings))
	}

	return bookings, nil
}

// Get retrieves a single booking with references expanded.
func (s *BookingService) Get(ctx context.Context, id string) (*domain.BookingDetail, error) {
	if id == "" {
		return nil, ErrInvalidBookingID
	}
	return s.bookingRepo.GetByID(ctx, id)
}

func validateCreateBookingRequest(req CreateBookingRequest) error {
	if req.RiderID == "" {
		return ErrInvalidRiderID
	}
	if strings.TrimSpace(req.PickupLocation) == "" {
		return ErrInvalidPickupLocation
	}
	if strings.TrimSpace(req.DropoffLocation) == "" {
		return ErrInvalidDropoffLocation
	}
	if req.ScheduledAt.IsZero() {
		return ErrInvalidScheduleTime
	}
	return nil
}

func toCachedBookings(bookings []*domain.BookingDetail) []*redis.CachedBooking {
	cached := make([]*redis.CachedBooking, 0, len(bookings))
	for _, b := range bookings {
		cb := &redis.CachedBooking{
			ID:              b.ID,
			RiderID:         b.RiderID,
			DriverID:        b.DriverID,
			PickupLocation:  b.PickupLocation,
			DropoffLocation: b.DropoffLocation,
			ScheduledAt:     b.ScheduledAt,
			Status:          string(b.Status),
			CreatedAt:       b.CreatedAt,
		}
		if b.Rider != nil {
			cb.Rider = &redis.CachedParty{ID: b.Rider.ID, Name: b.Rider.Name, Phone: b.Rider.Phone}
		}
		if b.Driver != nil {
			cb.Driver = &redis.CachedParty{ID: b.Driver.ID, Name: b.Driver.Name, Phone: b.Driver.Phone}
		}
		cached = append(cached, cb)
	}
	return cached
}

func fromCachedBookings(cached []*redis.CachedBooking) []*domain.BookingDetail {
	bookings := make([]*domain.BookingDetail, 0, len(cached))
	for _, cb := range cached {
		b := &domain.BookingDetail{
			Booking: domain.Booking{
				ID:              cb.ID,
				RiderID:         cb.RiderID,
				DriverID:        cb.DriverID,
				PickupLocation:  cb.PickupLocation,
				DropoffLocation: cb.DropoffLocation,
				ScheduledAt:     cb.ScheduledAt,
				Status:          domain.BookingStatus(cb.Status),
				CreatedAt:       cb.CreatedAt,
			},
		}
		if cb.Rider != nil {
			b.Rider = &domain.Party{ID: cb.Rider.ID, Name: cb.Rider.Name, Phone: cb.Rider.Phone}
		}
		if cb.Driver != nil {
			b.Driver = &domain.Party{ID: cb.Driver.ID, Name: cb.Driver.Name, Phone: cb.Driver.Phone}
		}
		bookings = append(bookings, b)
	}
	return bookings
}
