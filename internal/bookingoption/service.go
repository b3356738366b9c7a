package bookingoption

import (
	"context"
	"errors"
	"strings"

	"github.com/brightdays/holiday-club-backend/internal/club"
)

type CreateRequest struct {
	ClubID        string
	Name          string
	OptionType    OptionType
	TimeSlot      TimeSlot
	PricePerChild int64
	SortOrder     int
}

type UpdateRequest struct {
	Name          *string
	PricePerChild *int64
	SortOrder     *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*BookingOption, error)
	GetByID(ctx context.Context, id string) (*BookingOption, error)
	ListByClub(ctx context.Context, clubID string) ([]*BookingOption, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*BookingOption, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo        Repository
	clubService club.Service
}

func NewService(repo Repository, clubService club.Service) Service {
	return &service{repo: repo, clubService: clubService}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*BookingOption, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if !req.OptionType.Valid() {
		return nil, ErrInvalidType
	}
	if !req.TimeSlot.Valid() {
		return nil, ErrInvalidTimeSlot
	}
	if req.PricePerChild < 0 {
		return nil, ErrInvalidPrice
	}

	if _, err := s.clubService.GetByID(ctx, req.ClubID); err != nil {
		if errors.Is(err, club.ErrNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}

	o := &BookingOption{
		ClubID:        req.ClubID,
		Name:          req.Name,
		OptionType:    req.OptionType,
		TimeSlot:      req.TimeSlot,
		PricePerChild: req.PricePerChild,
		SortOrder:     req.SortOrder,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*BookingOption, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByClub(ctx context.Context, clubID string) ([]*BookingOption, error) {
	return s.repo.List(ctx, Filter{ClubID: clubID})
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*BookingOption, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		o.Name = *req.Name
	}
	if req.PricePerChild != nil {
		if *req.PricePerChild < 0 {
			return nil, ErrInvalidPrice
		}
		o.PricePerChild = *req.PricePerChild
	}
	if req.SortOrder != nil {
		o.SortOrder = *req.SortOrder
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
