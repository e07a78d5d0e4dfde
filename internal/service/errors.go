package service

import "errors"

var (
	// ErrInvalidName is returned when the name is empty.
	ErrInvalidName = errors.New("name is required")

	// ErrInvalidEmail is returned when the email is empty or malformed.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPassword is returned when the password is too short.
	ErrInvalidPassword = errors.New("password must be at least 8 characters")

	// ErrInvalidRole is returned when the role is not a known role.
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmailAlreadyRegistered is returned when the email is already taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials do not match.
	// It deliberately does not distinguish an unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidRiderID is returned when rider ID is empty.
	ErrInvalidRiderID = errors.New("invalid rider id")

	// ErrInvalidBookingID is returned when booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrInvalidPickupLocation is returned when pickup location is empty.
	ErrInvalidPickupLocation = errors.New("pickup location is required")

	// ErrInvalidDropoffLocation is returned when dropoff location is empty.
	ErrInvalidDropoffLocation = errors.New("dropoff location is required")

	// ErrInvalidScheduleTime is returned when the booking date is missing.
	ErrInvalidScheduleTime = errors.New("scheduled time is required")

	// ErrRiderNotFound is returned when the referenced rider does not exist.
	ErrRiderNotFound = errors.New("rider not found")

	// ErrDriverNotFound is returned when the referenced driver does not exist.
	ErrDriverNotFound = errors.New("driver not found")

	// ErrNotARider is returned when the rider reference points at a non-rider user.
	ErrNotARider = errors.New("referenced user is not a rider")

	// ErrNotADriver is returned when the driver reference points at a non-driver user.
	ErrNotADriver = errors.New("referenced user is not a driver")
)
