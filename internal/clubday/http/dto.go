package http

import (
	"time"

	"github.com/brightdays/holiday-club-backend/internal/clubday"
)

const dateLayout = "2006-01-02"

type ClubDayResponse struct {
	Date              string `json:"date"`
	MorningCapacity   int    `json:"morning_capacity"`
	AfternoonCapacity int    `json:"afternoon_capacity"`
	MorningBooked     int    `json:"morning_booked"`
	AfternoonBooked   int    `json:"afternoon_booked"`
	IsAvailable       bool   `json:"is_available"`
}

func NewClubDayResponse(d *clubday.ClubDay) ClubDayResponse {
	return ClubDayResponse{
		Date:              d.Date.Format(dateLayout),
		MorningCapacity:   d.MorningCapacity,
		AfternoonCapacity: d.AfternoonCapacity,
		MorningBooked:     d.MorningBooked,
		AfternoonBooked:   d.AfternoonBooked,
		IsAvailable:       d.IsAvailable,
	}
}

type DayInputBody struct {
	Date              string `json:"date" binding:"required"`
	MorningCapacity   int    `json:"morning_capacity" binding:"min=0"`
	AfternoonCapacity int    `json:"afternoon_capacity" binding:"min=0"`
	IsAvailable       bool   `json:"is_available"`
}

type UpsertDaysRequest struct {
	Days []DayInputBody `json:"days" binding:"required,min=1,dive"`
}

// Validate performs custom validation for UpsertDaysRequest.
func (r *UpsertDaysRequest) Validate() error {
	for _, d := range r.Days {
		if _, err := time.Parse(dateLayout, d.Date); err != nil {
			return clubday.ErrDateOutOfRange
		}
	}
	return nil
}

type GenerateDaysRequest struct {
	MorningCapacity   int `json:"morning_capacity" binding:"min=0"`
	AfternoonCapacity int `json:"afternoon_capacity" binding:"min=0"`
}

// Validate performs custom validation for GenerateDaysRequest.
func (r *GenerateDaysRequest) Validate() error {
	return nil
}
