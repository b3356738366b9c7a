package booking

import (
	"errors"
	"time"

	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
)

var (
	ErrNotFound              = errors.New("booking not found")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrEmptySelection        = errors.New("no dates selected")
	ErrIncompleteSelection   = errors.New("select at least 2 dates")
	ErrSingleDateRequired    = errors.New("exactly one date must be selected")
	ErrDateOutOfRange        = errors.New("date is outside the club's date range")
	ErrDateUnavailable       = errors.New("date is no longer available")
	ErrExhaustedAvailability = errors.New("no dates left to book for this club")
	ErrOptionMismatch        = errors.New("booking option does not belong to this club")
	ErrNoChildren            = errors.New("at least one child is required")
	ErrChildAgeOutOfRange    = errors.New("child does not meet the club's age range")
	ErrNotPending            = errors.New("booking is not awaiting payment")
	ErrNotExtendable         = errors.New("booking cannot be extended")
	ErrPaymentIncomplete     = errors.New("payment has not completed")
)

const dateLayout = "2006-01-02"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID              string
	UserID          string
	ClubID          string
	BookingOptionID string

	// ParentBookingID is set when this booking extends an earlier one.
	ParentBookingID *string

	Status   Status
	TimeSlot bookingoption.TimeSlot

	Dates    []time.Time
	ChildIDs []string

	Subtotal       int64
	DiscountAmount int64
	Total          int64
	PromoCodeID    *string

	CheckoutSessionID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DateStrings returns the booked dates formatted as ISO dates.
func (b *Booking) DateStrings() []string {
	out := make([]string, len(b.Dates))
	for i, d := range b.Dates {
		out[i] = d.Format(dateLayout)
	}
	return out
}

// DaySnapshot is the availability view of one club day, as consumed by
// the calendar and extension logic. It carries no capacity counters:
// whether a day still has seats is folded into IsAvailable by the caller.
type DaySnapshot struct {
	Date        string
	IsAvailable bool
}
