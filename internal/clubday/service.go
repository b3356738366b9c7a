package clubday

import (
	"context"
	"errors"
	"time"

	"github.com/brightdays/holiday-club-backend/internal/club"
)

// DayInput is one date's desired capacity/availability state for bulk upserts.
type DayInput struct {
	Date              time.Time
	MorningCapacity   int
	AfternoonCapacity int
	IsAvailable       bool
}

type Service interface {
	ListByClub(ctx context.Context, clubID string) ([]*ClubDay, error)

	// Upsert creates or updates day records for a club. Every date must lie
	// within the club's operating range. Booked counters are never touched.
	Upsert(ctx context.Context, clubID string, days []DayInput) ([]*ClubDay, error)

	// GenerateWeekdays creates an available record for every Monday-Friday in
	// the club's range that does not already have one.
	GenerateWeekdays(ctx context.Context, clubID string, morningCapacity, afternoonCapacity int) ([]*ClubDay, error)
}

type service struct {
	repo        Repository
	clubService club.Service
}

func NewService(repo Repository, clubService club.Service) Service {
	return &service{repo: repo, clubService: clubService}
}

func (s *service) ListByClub(ctx context.Context, clubID string) ([]*ClubDay, error) {
	if _, err := s.getClub(ctx, clubID); err != nil {
		return nil, err
	}
	return s.repo.ListByClub(ctx, clubID)
}

func (s *service) Upsert(ctx context.Context, clubID string, days []DayInput) ([]*ClubDay, error) {
	cl, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	for i := range days {
		days[i].Date = truncateToDate(days[i].Date)
		if days[i].Date.Before(cl.StartDate) || days[i].Date.After(cl.EndDate) {
			return nil, ErrDateOutOfRange
		}
		if days[i].MorningCapacity < 0 || days[i].AfternoonCapacity < 0 {
			return nil, ErrNegativeCapacity
		}
	}

	if err := s.repo.Upsert(ctx, clubID, days); err != nil {
		return nil, err
	}
	return s.repo.ListByClub(ctx, clubID)
}

func (s *service) GenerateWeekdays(ctx context.Context, clubID string, morningCapacity, afternoonCapacity int) ([]*ClubDay, error) {
	cl, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if morningCapacity < 0 || afternoonCapacity < 0 {
		return nil, ErrNegativeCapacity
	}

	existing, err := s.repo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	have := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		have[d.Date.Format("2006-01-02")] = struct{}{}
	}

	var days []DayInput
	for d := cl.StartDate; !d.After(cl.EndDate); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		if _, ok := have[d.Format("2006-01-02")]; ok {
			continue
		}
		days = append(days, DayInput{
			Date:              d,
			MorningCapacity:   morningCapacity,
			AfternoonCapacity: afternoonCapacity,
			IsAvailable:       true,
		})
	}

	if len(days) > 0 {
		if err := s.repo.Upsert(ctx, clubID, days); err != nil {
			return nil, err
		}
	}
	return s.repo.ListByClub(ctx, clubID)
}

func (s *service) getClub(ctx context.Context, clubID string) (*club.Club, error) {
	cl, err := s.clubService.GetByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, club.ErrNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return cl, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
