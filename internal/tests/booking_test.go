package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"taxibook/internal/domain"
	"taxibook/internal/repository"
	"taxibook/internal/service"
)

// ──────────────────────────────────────────────
// 3. BOOKING CREATION AND LISTING
// ──────────────────────────────────────────────

func bookingFixtures() (*MockUserRepository, *MockBookingRepository) {
	userRepo := NewMockUserRepository()
	userRepo.AddUser(&domain.User{
		ID:    "rider-1",
		Name:  "Alice",
		Phone: "555-0101",
		Email: "alice@example.com",
		Role:  domain.UserRoleRider,
	})
	userRepo.AddUser(&domain.User{
		ID:    "driver-1",
		Name:  "Dave",
		Phone: "555-0202",
		Email: "dave@example.com",
		Role:  domain.UserRoleDriver,
	})

	bookingRepo := NewMockBookingRepository()
	bookingRepo.AddParty(&domain.Party{ID: "rider-1", Name: "Alice", Phone: "555-0101"})
	bookingRepo.AddParty(&domain.Party{ID: "driver-1", Name: "Dave", Phone: "555-0202"})

	return userRepo, bookingRepo
}

func validBookingRequest() service.CreateBookingRequest {
	return service.CreateBookingRequest{
		RiderID:         "rider-1",
		PickupLocation:  "12 Main St",
		DropoffLocation: "Airport Terminal 2",
		ScheduledAt:     time.Now().Add(2 * time.Hour),
	}
}

func TestCreateBooking_ValidInput_Succeeds(t *testing.T) {
	t.Parallel()

	userRepo, bookingRepo := bookingFixtures()
	bookingCache := NewMockBookingCache()
	bookingService := service.NewBookingService(bookingRepo, userRepo, bookingCache)

	booking, err := bookingService.Create(context.Background(), validBookingRequest())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if booking.ID == "" {
		t.Error("expected booking ID to be set")
	}

	if booking.Status != domain.BookingStatusPending {
		t.Errorf("expected status PENDING, got %s", booking.Status)
	}

	if booking.Rider == nil || booking.Rider.Name != "Alice" {
		t.Error("expected rider reference to be expanded")
	}

	if booking.Driver != nil {
		t.Error("expected no driver on a booking created without one")
	}

	if bookingRepo.CreateCallCount != 1 {
		t.Errorf("expected 1 create call, got %d", bookingRepo.CreateCallCount)
	}

	// Creating a booking must drop the stale listing.
	if bookingCache.InvalidateCallCount != 1 {
		t.Errorf("expected 1 cache invalidation, got %d", bookingCache.InvalidateCallCount)
	}
}

func TestCreateBooking_WithDriver_ExpandsDriver(t *testing.T) {
	t.Parallel()

	userRepo, bookingRepo := bookingFixtures()
	bookingService := service.NewBookingService(bookingRepo, userRepo, nil)

	req := validBookingRequest()
	req.DriverID = "driver-1"

	booking, err := bookingService.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if booking.Driver == nil || booking.Driver.Name != "Dave" {
		t.Error("expected driver reference to be expanded")
	}
}

func TestCreateBooking_BadReferences_Fail(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		mutate  func(*service.CreateBookingRequest)
		wantErr error
	}{
		{
			name:    "missing rider id",
			mutate:  func(r *service.CreateBookingRequest) { r.RiderID = "" },
			wantErr: service.ErrInvalidRiderID,
		},
		{
			name:    "unknown rider",
			mutate:  func(r *service.CreateBookingRequest) { r.RiderID = "rider-404" },
			wantErr: service.ErrRiderNotFound,
		},
		{
			name:    "driver booked as rider",
			mutate:  func(r *service.CreateBookingRequest) { r.RiderID = "driver-1" },
			wantErr: service.ErrNotARider,
		},
		{
			name:    "unknown driver",
			mutate:  func(r *service.CreateBookingRequest) { r.DriverID = "driver-404" },
			wantErr: service.ErrDriverNotFound,
		},
		{
			name:    "rider assigned as driver",
			mutate:  func(r *service.CreateBookingRequest) { r.DriverID = "rider-1" },
			wantErr: service.ErrNotADriver,
		},
		{
			name:    "missing pickup",
			mutate:  func(r *service.CreateBookingRequest) { r.PickupLocation = "  " },
			wantErr: service.ErrInvalidPickupLocation,
		},
		{
			name:    "missing dropoff",
			mutate:  func(r *service.CreateBookingRequest) { r.DropoffLocation = "" },
			wantErr: service.ErrInvalidDropoffLocation,
		},
		{
			name:    "missing schedule time",
			mutate:  func(r *service.CreateBookingRequest) { r.ScheduledAt = time.Time{} },
			wantErr: service.ErrInvalidScheduleTime,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			userRepo, bookingRepo := bookingFixtures()
			bookingService := service.NewBookingService(bookingRepo, userRepo, nil)

			req := validBookingRequest()
			tc.mutate(&req)

			_, err := bookingService.Create(context.Background(), req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got: %v", tc.wantErr, err)
			}

			if bookingRepo.CountBookings() != 0 {
				t.Error("expected no booking to be persisted")
			}
		})
	}
}

func TestListBookings_PopulatesAndUsesCache(t *testing.T) {
	t.Parallel()

	userRepo, bookingRepo := bookingFixtures()
	bookingRepo.AddBooking(&domain.Booking{
		ID:              "booking-1",
		RiderID:         "rider-1",
		DriverID:        "driver-1",
		PickupLocation:  "12 Main St",
		DropoffLocation: "Airport Terminal 2",
		ScheduledAt:     time.Now().Add(time.Hour),
		Status:          domain.BookingStatusPending,
		CreatedAt:       time.Now(),
	})

	bookingCache := NewMockBookingCache()
	bookingService := service.NewBookingService(bookingRepo, userRepo, bookingCache)

	// First listing hits the repository and fills the cache.
	bookings, err := bookingService.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	if bookings[0].Rider == nil || bookings[0].Rider.Name != "Alice" {
		t.Error("expected rider reference to be expanded")
	}
	if bookings[0].Driver == nil || bookings[0].Driver.Name != "Dave" {
		t.Error("expected driver reference to be expanded")
	}
	if bookingCache.SetListCallCount != 1 {
		t.Errorf("expected 1 cache set, got %d", bookingCache.SetListCallCount)
	}

	// Second listing is served from cache.
	repoCalls := bookingRepo.GetAllCallCount
	cached, err := bookingService.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(cached) != 1 {
		t.Fatalf("expected 1 cached booking, got %d", len(cached))
	}
	if cached[0].Status != domain.BookingStatusPending {
		t.Errorf("expected cached status PENDING, got %s", cached[0].Status)
	}
	if bookingRepo.GetAllCallCount != repoCalls {
		t.Error("expected second listing to be served from cache")
	}
}

func TestGetBooking_EdgeCases(t *testing.T) {
	t.Parallel()

	userRepo, bookingRepo := bookingFixtures()
	bookingService := service.NewBookingService(bookingRepo, userRepo, nil)

	if _, err := bookingService.Get(context.Background(), ""); !errors.Is(err, service.ErrInvalidBookingID) {
		t.Errorf("expected ErrInvalidBookingID, got: %v", err)
	}

	if _, err := bookingService.Get(context.Background(), "booking-404"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}
