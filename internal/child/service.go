package child

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	UserID      string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

type UpdateRequest struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Child, error)

	// GetOwned returns the child only if it belongs to userID.
	GetOwned(ctx context.Context, id, userID string) (*Child, error)

	ListByUser(ctx context.Context, userID string) ([]*Child, error)
	Update(ctx context.Context, id, userID string, req UpdateRequest) (*Child, error)
	Delete(ctx context.Context, id, userID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Child, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, ErrNameRequired
	}
	if req.DateOfBirth.IsZero() || req.DateOfBirth.After(time.Now().UTC()) {
		return nil, ErrInvalidBirthDate
	}

	ch := &Child{
		UserID:      req.UserID,
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		DateOfBirth: truncateToDate(req.DateOfBirth),
	}

	if err := s.repo.Create(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *service) GetOwned(ctx context.Context, id, userID string) (*Child, error) {
	ch, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ch.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return ch, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Child, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Update(ctx context.Context, id, userID string, req UpdateRequest) (*Child, error) {
	ch, err := s.GetOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return nil, ErrNameRequired
		}
		ch.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		ch.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.DateOfBirth != nil {
		if req.DateOfBirth.IsZero() || req.DateOfBirth.After(time.Now().UTC()) {
			return nil, ErrInvalidBirthDate
		}
		ch.DateOfBirth = truncateToDate(*req.DateOfBirth)
	}

	if err := s.repo.Update(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *service) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.GetOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
