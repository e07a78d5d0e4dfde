package domain

import "time"

// UserRole distinguishes riders from drivers.
type UserRole string

const (
	UserRoleRider  UserRole = "RIDER"
	UserRoleDriver UserRole = "DRIVER"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	return r == UserRoleRider || r == UserRoleDriver
}

// User represents a registered account in the system.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
}
