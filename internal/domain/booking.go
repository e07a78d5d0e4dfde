package domain

import "time"

// BookingStatus represents the current status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a taxi booking linking a rider to a driver.
type Booking struct {
	ID              string
	RiderID         string
	DriverID        string // empty until a driver is attached
	PickupLocation  string
	DropoffLocation string
	ScheduledAt     time.Time
	Status          BookingStatus
	CreatedAt       time.Time
}

// Party is a user summary embedded in expanded booking listings.
type Party struct {
	ID    string
	Name  string
	Phone string
}

// BookingDetail is a booking with its rider and driver references expanded.
type BookingDetail struct {
	Booking
	Rider  *Party
	Driver *Party
}
