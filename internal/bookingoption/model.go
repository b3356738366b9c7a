package bookingoption

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("booking option not found")
	ErrClubNotFound    = errors.New("club not found")
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidType     = errors.New("invalid option type")
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrInvalidPrice    = errors.New("price must not be negative")
)

// OptionType is the purchasable mode of a booking option.
type OptionType string

const (
	TypeFullWeek  OptionType = "full_week"
	TypeSingleDay OptionType = "single_day"
	TypeMultiDay  OptionType = "multi_day"
)

// Valid reports whether t is a known option type.
func (t OptionType) Valid() bool {
	switch t {
	case TypeFullWeek, TypeSingleDay, TypeMultiDay:
		return true
	}
	return false
}

// TimeSlot is the part of the day an option covers.
type TimeSlot string

const (
	SlotFullDay   TimeSlot = "full_day"
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
)

// Valid reports whether s is a known time slot.
func (s TimeSlot) Valid() bool {
	switch s {
	case SlotFullDay, SlotMorning, SlotAfternoon:
		return true
	}
	return false
}

// BookingOption is a purchasable mode for a club. PricePerChild is in minor
// currency units: a flat per-child price for full_week and single_day, and a
// per-child-per-day rate for multi_day.
type BookingOption struct {
	ID            string
	ClubID        string
	Name          string
	OptionType    OptionType
	TimeSlot      TimeSlot
	PricePerChild int64
	SortOrder     int
	CreatedAt     time.Time
}

// Filter defines parameters for listing booking options.
type Filter struct {
	ClubID string
}
