package clubday

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("club day not found")
	ErrClubNotFound     = errors.New("club not found")
	ErrDateOutOfRange   = errors.New("date is outside the club's operating range")
	ErrNegativeCapacity = errors.New("capacity must not be negative")
)

// ClubDay is one calendar date's capacity and availability record for a club.
// Capacities are the configured maximums; the booked counters are maintained
// by the booking repository at submission time.
type ClubDay struct {
	ID                string
	ClubID            string
	Date              time.Time // date only, UTC midnight
	MorningCapacity   int
	AfternoonCapacity int
	MorningBooked     int
	AfternoonBooked   int
	IsAvailable       bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RemainingMorning returns the number of unclaimed morning seats.
func (d *ClubDay) RemainingMorning() int {
	return d.MorningCapacity - d.MorningBooked
}

// RemainingAfternoon returns the number of unclaimed afternoon seats.
func (d *ClubDay) RemainingAfternoon() int {
	return d.AfternoonCapacity - d.AfternoonBooked
}
