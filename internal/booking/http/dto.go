package http

import (
	"time"

	"github.com/brightdays/holiday-club-backend/internal/booking"
)

const dateLayout = "2006-01-02"

type AvailabilityQuery struct {
	Year     int      `form:"year" binding:"required,min=2000,max=2100"`
	Month    int      `form:"month" binding:"required,min=1,max=12"`
	OptionID string   `form:"option_id" binding:"omitempty,uuid"`
	Selected []string `form:"selected"`
}

// Validate performs custom validation for AvailabilityQuery.
func (q *AvailabilityQuery) Validate() error {
	return validateDates(q.Selected)
}

type CalendarMonthResponse struct {
	Year    int                `json:"year"`
	Month   int                `json:"month"`
	Slots   []booking.GridSlot `json:"slots"`
	CanPrev bool               `json:"can_prev"`
	CanNext bool               `json:"can_next"`
}

func NewCalendarMonthResponse(m *booking.CalendarMonth) CalendarMonthResponse {
	return CalendarMonthResponse{
		Year:    m.Year,
		Month:   int(m.Month),
		Slots:   m.Slots,
		CanPrev: m.CanPrev,
		CanNext: m.CanNext,
	}
}

type QuoteRequest struct {
	ClubID          string   `json:"club_id" binding:"required,uuid"`
	BookingOptionID string   `json:"booking_option_id" binding:"required,uuid"`
	Dates           []string `json:"dates"`
	ChildCount      int      `json:"child_count" binding:"required,min=1"`
	PromoCode       string   `json:"promo_code"`
}

// Validate performs custom validation for QuoteRequest.
func (r *QuoteRequest) Validate() error {
	return validateDates(r.Dates)
}

type QuoteResponse struct {
	Subtotal        int64 `json:"subtotal"`
	DiscountPercent int   `json:"discount_percent"`
	DiscountAmount  int64 `json:"discount_amount"`
	Total           int64 `json:"total"`
}

func NewQuoteResponse(q *booking.QuoteResult) QuoteResponse {
	return QuoteResponse{
		Subtotal:        q.Subtotal,
		DiscountPercent: q.DiscountPercent,
		DiscountAmount:  q.DiscountAmount,
		Total:           q.Total,
	}
}

type CreateBookingRequest struct {
	ClubID          string   `json:"club_id" binding:"required,uuid"`
	BookingOptionID string   `json:"booking_option_id" binding:"required,uuid"`
	Dates           []string `json:"dates"`
	ChildIDs        []string `json:"child_ids" binding:"required,min=1,dive,uuid"`
	PromoCode       string   `json:"promo_code"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	return validateDates(r.Dates)
}

type ExtendBookingRequest struct {
	Dates     []string `json:"dates"`
	PromoCode string   `json:"promo_code"`
}

// Validate performs custom validation for ExtendBookingRequest.
func (r *ExtendBookingRequest) Validate() error {
	return validateDates(r.Dates)
}

type BookingResponse struct {
	ID              string    `json:"id"`
	ClubID          string    `json:"club_id"`
	BookingOptionID string    `json:"booking_option_id"`
	ParentBookingID *string   `json:"parent_booking_id,omitempty"`
	Status          string    `json:"status"`
	TimeSlot        string    `json:"time_slot"`
	Dates           []string  `json:"dates"`
	ChildIDs        []string  `json:"child_ids"`
	Subtotal        int64     `json:"subtotal"`
	DiscountAmount  int64     `json:"discount_amount"`
	Total           int64     `json:"total"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ClubID:          b.ClubID,
		BookingOptionID: b.BookingOptionID,
		ParentBookingID: b.ParentBookingID,
		Status:          string(b.Status),
		TimeSlot:        string(b.TimeSlot),
		Dates:           b.DateStrings(),
		ChildIDs:        b.ChildIDs,
		Subtotal:        b.Subtotal,
		DiscountAmount:  b.DiscountAmount,
		Total:           b.Total,
		CreatedAt:       b.CreatedAt,
	}
}

type CreateBookingResponse struct {
	Booking     BookingResponse `json:"booking"`
	CheckoutURL string          `json:"checkout_url"`
}

type ExtensionPoolResponse struct {
	Dates     []string `json:"dates"`
	Exhausted bool     `json:"exhausted"`
}

func validateDates(dates []string) error {
	for _, d := range dates {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return booking.ErrDateOutOfRange
		}
	}
	return nil
}
