package club

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	clubs map[string]*Club
	next  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{clubs: map[string]*Club{}}
}

func (r *fakeRepository) Create(_ context.Context, c *Club) error {
	r.next++
	c.ID = fmt.Sprintf("club-%d", r.next)
	r.clubs[c.ID] = c
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Club, error) {
	c, ok := r.clubs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (r *fakeRepository) List(_ context.Context, _ Filter) ([]*Club, int, error) {
	var out []*Club
	for _, c := range r.clubs {
		out = append(out, c)
	}
	return out, len(out), nil
}

func (r *fakeRepository) Update(_ context.Context, c *Club) error {
	if _, ok := r.clubs[c.ID]; !ok {
		return ErrNotFound
	}
	r.clubs[c.ID] = c
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.clubs[id]; !ok {
		return ErrNotFound
	}
	delete(r.clubs, id)
	return nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Name:      "Easter Adventure Club",
		Venue:     "Riverside Hall",
		StartDate: date("2025-04-07"),
		EndDate:   date("2025-04-17"),
		Morning:   &SessionWindow{Start: "09:00", End: "12:30"},
		Afternoon: &SessionWindow{Start: "13:00", End: "16:30"},
		MinAge:    5,
		MaxAge:    12,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with date-only range", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		req := validCreateRequest()
		req.StartDate = req.StartDate.Add(14 * time.Hour) // time portion must be dropped

		c, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, date("2025-04-07"), c.StartDate)
		assert.Equal(t, date("2025-04-17"), c.EndDate)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		req := validCreateRequest()
		req.Name = "   "
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		req := validCreateRequest()
		req.StartDate, req.EndDate = req.EndDate, req.StartDate
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("single-day range is allowed", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		req := validCreateRequest()
		req.EndDate = req.StartDate
		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("requires at least one session window", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		req := validCreateRequest()
		req.Morning = nil
		req.Afternoon = nil
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrNoSessionWindow)
	})

	t.Run("morning only is allowed", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		req := validCreateRequest()
		req.Afternoon = nil
		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		req := validCreateRequest()
		req.Morning = &SessionWindow{Start: "12:30", End: "09:00"}
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("rejects inverted age range", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		req := validCreateRequest()
		req.MinAge = 13
		req.MaxAge = 5
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidAgeRange)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	newClub := func(t *testing.T) (Service, *Club) {
		t.Helper()
		svc := NewService(newFakeRepository())
		c, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		return svc, c
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		svc, c := newClub(t)

		name := "Summer Adventure Club"
		published := true
		updated, err := svc.Update(ctx, c.ID, UpdateRequest{Name: &name, IsPublished: &published})
		require.NoError(t, err)

		assert.Equal(t, "Summer Adventure Club", updated.Name)
		assert.True(t, updated.IsPublished)
		assert.Equal(t, c.Venue, updated.Venue)
		assert.Equal(t, c.StartDate, updated.StartDate)
	})

	t.Run("rejects empty window payload", func(t *testing.T) {
		svc, c := newClub(t)
		_, err := svc.Update(ctx, c.ID, UpdateRequest{Morning: &SessionWindow{}})
		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("age update is checked against the merged range", func(t *testing.T) {
		svc, c := newClub(t)

		minAge := 13 // existing MaxAge is 12
		_, err := svc.Update(ctx, c.ID, UpdateRequest{MinAge: &minAge})
		assert.ErrorIs(t, err, ErrInvalidAgeRange)
	})

	t.Run("unknown club", func(t *testing.T) {
		svc, _ := newClub(t)
		name := "x"
		_, err := svc.Update(ctx, "club-404", UpdateRequest{Name: &name})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	c, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID))
	_, err = svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), ErrNotFound)
}
