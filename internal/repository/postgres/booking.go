package postgres

import (
	"context"
	"database/sql"
	"errors"

	"taxibook/internal/domain"
	"taxibook/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	q Querier
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{q: db}
}

// NewBookingRepositoryWithTx creates a booking repository using a transaction.
func NewBookingRepositoryWithTx(tx *sql.Tx) *BookingRepository {
	return &BookingRepository{q: tx}
}

// Create persists a new booking.
func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, rider_id, driver_id, pickup_location, dropoff_location, scheduled_at, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	var driverID sql.NullString
	if booking.DriverID != "" {
		driverID = sql.NullString{String: booking.DriverID, Valid: true}
	}

	// Default status to PENDING if not set
	status := booking.Status
	if status == "" {
		status = domain.BookingStatusPending
	}

	_, err := r.q.ExecContext(ctx, query,
		booking.ID,
		booking.RiderID,
		driverID,
		booking.PickupLocation,
		booking.DropoffLocation,
		booking.ScheduledAt,
		status,
		booking.CreatedAt,
	)

	return err
}

const bookingDetailColumns = `
	b.id, b.rider_id, b.driver_id, b.pickup_location, b.dropoff_location, b.scheduled_at, b.status, b.created_at,
	r.name, r.phone,
	d.name, d.phone
`

// GetByID retrieves a booking by ID with its rider and driver expanded.
func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.BookingDetail, error) {
	query := `
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN users r ON r.id = b.rider_id
		LEFT JOIN users d ON d.id = b.driver_id
		WHERE b.id = $1
	`

	detail, err := scanBookingDetail(r.q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return detail, nil
}

// GetAll retrieves all bookings, newest first, with references expanded.
func (r *BookingRepository) GetAll(ctx context.Context) ([]*domain.BookingDetail, error) {
	query := `
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN users r ON r.id = b.rider_id
		LEFT JOIN users d ON d.id = b.driver_id
		ORDER BY b.created_at DESC LIMIT 100
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.BookingDetail
	for rows.Next() {
		detail, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, detail)
	}
	return bookings, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingDetail(row rowScanner) (*domain.BookingDetail, error) {
	var detail domain.BookingDetail
	var driverID sql.NullString
	var riderName, riderPhone string
	var driverName, driverPhone sql.NullString

	err := row.Scan(
		&detail.ID,
		&detail.RiderID,
		&driverID,
		&detail.PickupLocation,
		&detail.DropoffLocation,
		&detail.ScheduledAt,
		&detail.Status,
		&detail.CreatedAt,
		&riderName,
		&riderPhone,
		&driverName,
		&driverPhone,
	)
	if err != nil {
		return nil, err
	}

	detail.Rider = &domain.Party{
		ID:    detail.RiderID,
		Name:  riderName,
		Phone: riderPhone,
	}

	if driverID.Valid {
		detail.DriverID = driverID.String
		detail.Driver = &domain.Party{
			ID:    driverID.String,
			Name:  driverName.String,
			Phone: driverPhone.String,
		}
	}

	return &detail, nil
}
