package http

import (
	"time"

	"github.com/brightdays/holiday-club-backend/internal/promocode"
)

type PromoCodeResponse struct {
	ID              string     `json:"id"`
	Code            string     `json:"code"`
	DiscountPercent int        `json:"discount_percent"`
	ClubID          *string    `json:"club_id,omitempty"`
	IsActive        bool       `json:"is_active"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewPromoCodeResponse(pc *promocode.PromoCode) PromoCodeResponse {
	return PromoCodeResponse{
		ID:              pc.ID,
		Code:            pc.Code,
		DiscountPercent: pc.DiscountPercent,
		ClubID:          pc.ClubID,
		IsActive:        pc.IsActive,
		ExpiresAt:       pc.ExpiresAt,
		CreatedAt:       pc.CreatedAt,
	}
}

type CreatePromoCodeRequest struct {
	Code            string     `json:"code" binding:"required,min=1,max=50"`
	DiscountPercent int        `json:"discount_percent" binding:"min=0,max=100"`
	ClubID          *string    `json:"club_id" binding:"omitempty,uuid"`
	IsActive        bool       `json:"is_active"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

type UpdatePromoCodeRequest struct {
	DiscountPercent *int       `json:"discount_percent" binding:"omitempty,min=0,max=100"`
	IsActive        *bool      `json:"is_active"`
	ExpiresAt       *time.Time `json:"expires_at"`
	ClearExpiry     bool       `json:"clear_expiry"`
}

type ResolvePromoCodeRequest struct {
	Code   string `json:"code" binding:"required"`
	ClubID string `json:"club_id" binding:"required,uuid"`
}

type ResolvePromoCodeResponse struct {
	Code            string `json:"code"`
	DiscountPercent int    `json:"discount_percent"`
}
