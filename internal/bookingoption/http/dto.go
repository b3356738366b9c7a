package http

import (
	"time"

	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
)

type OptionResponse struct {
	ID            string    `json:"id"`
	ClubID        string    `json:"club_id"`
	Name          string    `json:"name"`
	OptionType    string    `json:"option_type"`
	TimeSlot      string    `json:"time_slot"`
	PricePerChild int64     `json:"price_per_child"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewOptionResponse(o *bookingoption.BookingOption) OptionResponse {
	return OptionResponse{
		ID:            o.ID,
		ClubID:        o.ClubID,
		Name:          o.Name,
		OptionType:    string(o.OptionType),
		TimeSlot:      string(o.TimeSlot),
		PricePerChild: o.PricePerChild,
		SortOrder:     o.SortOrder,
		CreatedAt:     o.CreatedAt,
	}
}

type CreateOptionRequest struct {
	ClubID        string `json:"club_id" binding:"required,uuid"`
	Name          string `json:"name" binding:"required,min=1,max=100"`
	OptionType    string `json:"option_type" binding:"required,oneof=full_week single_day multi_day"`
	TimeSlot      string `json:"time_slot" binding:"required,oneof=full_day morning afternoon"`
	PricePerChild int64  `json:"price_per_child" binding:"min=0"`
	SortOrder     int    `json:"sort_order"`
}

// Validate performs custom validation for CreateOptionRequest.
func (r *CreateOptionRequest) Validate() error {
	return nil
}

type UpdateOptionRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=100"`
	PricePerChild *int64  `json:"price_per_child" binding:"omitempty,min=0"`
	SortOrder     *int    `json:"sort_order"`
}

// Validate performs custom validation for UpdateOptionRequest.
func (r *UpdateOptionRequest) Validate() error {
	return nil
}
