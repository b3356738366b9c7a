package promocode

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("promo code not found")
	ErrCodeRequired    = errors.New("code is required")
	ErrCodeTaken       = errors.New("code is already in use")
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")
	ErrInactive        = errors.New("promo code is not active")
	ErrExpired         = errors.New("promo code has expired")
	ErrWrongClub       = errors.New("promo code does not apply to this club")
)

type PromoCode struct {
	ID              string
	Code            string
	DiscountPercent int

	// ClubID scopes the code to a single club. Nil means site-wide.
	ClubID *string

	IsActive  bool
	ExpiresAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
