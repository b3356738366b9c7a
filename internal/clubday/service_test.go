package clubday

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightdays/holiday-club-backend/internal/club"
)

type fakeClubService struct {
	club *club.Club
}

func (s *fakeClubService) Create(context.Context, club.CreateRequest) (*club.Club, error) {
	panic("not used")
}
func (s *fakeClubService) List(context.Context, club.Filter) ([]*club.Club, int, error) {
	panic("not used")
}
func (s *fakeClubService) Update(context.Context, string, club.UpdateRequest) (*club.Club, error) {
	panic("not used")
}
func (s *fakeClubService) Delete(context.Context, string) error { panic("not used") }

func (s *fakeClubService) GetByID(_ context.Context, id string) (*club.Club, error) {
	if s.club == nil || s.club.ID != id {
		return nil, club.ErrNotFound
	}
	return s.club, nil
}

type fakeRepository struct {
	days map[string]*ClubDay // keyed by date string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{days: map[string]*ClubDay{}}
}

func (r *fakeRepository) ListByClub(_ context.Context, clubID string) ([]*ClubDay, error) {
	var out []*ClubDay
	for _, d := range r.days {
		if d.ClubID == clubID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *fakeRepository) Upsert(_ context.Context, clubID string, days []DayInput) error {
	for _, in := range days {
		key := in.Date.Format("2006-01-02")
		if existing, ok := r.days[key]; ok {
			existing.MorningCapacity = in.MorningCapacity
			existing.AfternoonCapacity = in.AfternoonCapacity
			existing.IsAvailable = in.IsAvailable
			continue
		}
		r.days[key] = &ClubDay{
			ClubID:            clubID,
			Date:              in.Date,
			MorningCapacity:   in.MorningCapacity,
			AfternoonCapacity: in.AfternoonCapacity,
			IsAvailable:       in.IsAvailable,
		}
	}
	return nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Monday 2025-04-07 through Sunday 2025-04-20: two full weeks.
func newFixture() (Service, *fakeRepository) {
	repo := newFakeRepository()
	clubs := &fakeClubService{club: &club.Club{
		ID:        "club-1",
		StartDate: date("2025-04-07"),
		EndDate:   date("2025-04-20"),
	}}
	return NewService(repo, clubs), repo
}

func TestGenerateWeekdays(t *testing.T) {
	ctx := context.Background()

	t.Run("creates weekday records only", func(t *testing.T) {
		svc, _ := newFixture()

		days, err := svc.GenerateWeekdays(ctx, "club-1", 20, 16)
		require.NoError(t, err)
		require.Len(t, days, 10)

		for _, d := range days {
			assert.NotEqual(t, time.Saturday, d.Date.Weekday())
			assert.NotEqual(t, time.Sunday, d.Date.Weekday())
			assert.Equal(t, 20, d.MorningCapacity)
			assert.Equal(t, 16, d.AfternoonCapacity)
			assert.True(t, d.IsAvailable)
		}
	})

	t.Run("keeps existing records untouched", func(t *testing.T) {
		svc, repo := newFixture()

		require.NoError(t, repo.Upsert(ctx, "club-1", []DayInput{
			{Date: date("2025-04-07"), MorningCapacity: 5, AfternoonCapacity: 5, IsAvailable: false},
		}))

		days, err := svc.GenerateWeekdays(ctx, "club-1", 20, 16)
		require.NoError(t, err)
		require.Len(t, days, 10)

		assert.Equal(t, 5, days[0].MorningCapacity, "pre-existing day must not be regenerated")
		assert.False(t, days[0].IsAvailable)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.GenerateWeekdays(ctx, "club-1", -1, 16)
		assert.ErrorIs(t, err, ErrNegativeCapacity)
	})

	t.Run("unknown club", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.GenerateWeekdays(ctx, "club-404", 20, 16)
		assert.ErrorIs(t, err, ErrClubNotFound)
	})
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects dates outside the club range", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.Upsert(ctx, "club-1", []DayInput{
			{Date: date("2025-05-01"), MorningCapacity: 10, AfternoonCapacity: 10, IsAvailable: true},
		})
		assert.ErrorIs(t, err, ErrDateOutOfRange)
	})

	t.Run("updates capacity and availability", func(t *testing.T) {
		svc, _ := newFixture()

		days, err := svc.Upsert(ctx, "club-1", []DayInput{
			{Date: date("2025-04-08"), MorningCapacity: 12, AfternoonCapacity: 8, IsAvailable: true},
		})
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.Equal(t, 12, days[0].MorningCapacity)

		days, err = svc.Upsert(ctx, "club-1", []DayInput{
			{Date: date("2025-04-08"), MorningCapacity: 12, AfternoonCapacity: 8, IsAvailable: false},
		})
		require.NoError(t, err)
		require.Len(t, days, 1)
		assert.False(t, days[0].IsAvailable)
	})

	t.Run("rejects negative capacity", func(t *testing.T) {
		svc, _ := newFixture()
		_, err := svc.Upsert(ctx, "club-1", []DayInput{
			{Date: date("2025-04-08"), MorningCapacity: -3, AfternoonCapacity: 8, IsAvailable: true},
		})
		assert.ErrorIs(t, err, ErrNegativeCapacity)
	})
}
