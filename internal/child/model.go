package child

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("child not found")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidBirthDate = errors.New("invalid date of birth")
	ErrPermissionDenied = errors.New("permission denied")
)

// Child belongs to a parent account and is referenced by bookings.
type Child struct {
	ID          string
	UserID      string
	FirstName   string
	LastName    string
	DateOfBirth time.Time // date only, UTC midnight
	CreatedAt   time.Time
}

// AgeOn returns the child's age in whole years on the given date.
func (c *Child) AgeOn(date time.Time) int {
	age := date.Year() - c.DateOfBirth.Year()
	if date.Month() < c.DateOfBirth.Month() ||
		(date.Month() == c.DateOfBirth.Month() && date.Day() < c.DateOfBirth.Day()) {
		age--
	}
	return age
}
