package promocode

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	Code            string
	DiscountPercent int
	ClubID          *string
	IsActive        bool
	ExpiresAt       *time.Time
}

type UpdateRequest struct {
	DiscountPercent *int
	IsActive        *bool
	ExpiresAt       *time.Time
	ClearExpiry     bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*PromoCode, error)
	GetByID(ctx context.Context, id string) (*PromoCode, error)
	List(ctx context.Context) ([]*PromoCode, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*PromoCode, error)
	Delete(ctx context.Context, id string) error

	// Resolve looks up an active, unexpired code applicable to clubID.
	Resolve(ctx context.Context, code, clubID string) (*PromoCode, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*PromoCode, error) {
	code := normalizeCode(req.Code)
	if code == "" {
		return nil, ErrCodeRequired
	}
	if req.DiscountPercent < 0 || req.DiscountPercent > 100 {
		return nil, ErrInvalidDiscount
	}

	pc := &PromoCode{
		Code:            code,
		DiscountPercent: req.DiscountPercent,
		ClubID:          req.ClubID,
		IsActive:        req.IsActive,
		ExpiresAt:       req.ExpiresAt,
	}

	if err := s.repo.Create(ctx, pc); err != nil {
		return nil, err
	}
	return pc, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*PromoCode, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*PromoCode, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*PromoCode, error) {
	pc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DiscountPercent != nil {
		if *req.DiscountPercent < 0 || *req.DiscountPercent > 100 {
			return nil, ErrInvalidDiscount
		}
		pc.DiscountPercent = *req.DiscountPercent
	}
	if req.IsActive != nil {
		pc.IsActive = *req.IsActive
	}
	if req.ClearExpiry {
		pc.ExpiresAt = nil
	} else if req.ExpiresAt != nil {
		pc.ExpiresAt = req.ExpiresAt
	}

	if err := s.repo.Update(ctx, pc); err != nil {
		return nil, err
	}
	return pc, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Resolve(ctx context.Context, code, clubID string) (*PromoCode, error) {
	pc, err := s.repo.GetByCode(ctx, normalizeCode(code))
	if err != nil {
		return nil, err
	}

	if !pc.IsActive {
		return nil, ErrInactive
	}
	if pc.ExpiresAt != nil && pc.ExpiresAt.Before(time.Now().UTC()) {
		return nil, ErrExpired
	}
	if pc.ClubID != nil && *pc.ClubID != clubID {
		return nil, ErrWrongClub
	}
	return pc, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
