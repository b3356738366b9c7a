package club

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	Name        string
	Description string
	Venue       string
	StartDate   time.Time
	EndDate     time.Time
	Morning     *SessionWindow
	Afternoon   *SessionWindow
	MinAge      int
	MaxAge      int
	IsPublished bool
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Venue       *string
	Morning     *SessionWindow
	Afternoon   *SessionWindow
	MinAge      *int
	MaxAge      *int
	IsPublished *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Club, error)
	GetByID(ctx context.Context, id string) (*Club, error)
	List(ctx context.Context, filter Filter) ([]*Club, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Club, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Club, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if req.Morning == nil && req.Afternoon == nil {
		return nil, ErrNoSessionWindow
	}
	if err := validateWindow(req.Morning); err != nil {
		return nil, err
	}
	if err := validateWindow(req.Afternoon); err != nil {
		return nil, err
	}
	if req.MinAge > req.MaxAge {
		return nil, ErrInvalidAgeRange
	}

	c := &Club{
		Name:        req.Name,
		Description: req.Description,
		Venue:       req.Venue,
		StartDate:   truncateToDate(req.StartDate),
		EndDate:     truncateToDate(req.EndDate),
		Morning:     req.Morning,
		Afternoon:   req.Afternoon,
		MinAge:      req.MinAge,
		MaxAge:      req.MaxAge,
		IsPublished: req.IsPublished,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Club, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Club, int, error) {
	return s.repo.List(ctx, filter)
}

// Update modifies club metadata. The operating date range is deliberately not
// updatable: day records and bookings are anchored to it.
func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Club, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Venue != nil {
		c.Venue = *req.Venue
	}
	if req.Morning != nil {
		if err := validateWindow(req.Morning); err != nil {
			return nil, err
		}
		c.Morning = req.Morning
	}
	if req.Afternoon != nil {
		if err := validateWindow(req.Afternoon); err != nil {
			return nil, err
		}
		c.Afternoon = req.Afternoon
	}
	if c.Morning == nil && c.Afternoon == nil {
		return nil, ErrNoSessionWindow
	}
	if req.MinAge != nil {
		c.MinAge = *req.MinAge
	}
	if req.MaxAge != nil {
		c.MaxAge = *req.MaxAge
	}
	if c.MinAge > c.MaxAge {
		return nil, ErrInvalidAgeRange
	}
	if req.IsPublished != nil {
		c.IsPublished = *req.IsPublished
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func validateWindow(w *SessionWindow) error {
	if w == nil {
		return nil
	}
	if w.Start == "" || w.End == "" || w.Start >= w.End {
		return ErrInvalidWindow
	}
	return nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
