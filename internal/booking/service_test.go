package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
	"github.com/brightdays/holiday-club-backend/internal/checkout"
	"github.com/brightdays/holiday-club-backend/internal/child"
	"github.com/brightdays/holiday-club-backend/internal/club"
	"github.com/brightdays/holiday-club-backend/internal/clubday"
	"github.com/brightdays/holiday-club-backend/internal/promocode"
	"github.com/brightdays/holiday-club-backend/internal/user"
)

//
// Fakes
//

type fakeRepo struct {
	bookings map[string]*Booking
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: map[string]*Booking{}}
}

func (r *fakeRepo) Create(_ context.Context, b *Booking) error {
	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string) ([]*Booking, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeRepo) SetCheckoutSession(_ context.Context, id, sessionID string) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.CheckoutSessionID = &sessionID
	return nil
}

func (r *fakeRepo) CancelPending(_ context.Context, b *Booking) error {
	stored, ok := r.bookings[b.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Status != StatusPending {
		return ErrNotPending
	}
	stored.Status = StatusCancelled
	return nil
}

type fakeClubService struct {
	clubs map[string]*club.Club
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
	c, ok := s.clubs[id]
	if !ok {
		return nil, club.ErrNotFound
	}
	return c, nil
}

type fakeDayService struct {
	days map[string][]*clubday.ClubDay
}

func (s *fakeDayService) Upsert(context.Context, string, []clubday.DayInput) ([]*clubday.ClubDay, error) {
	panic("not used")
}
func (s *fakeDayService) GenerateWeekdays(context.Context, string, int, int) ([]*clubday.ClubDay, error) {
	panic("not used")
}

func (s *fakeDayService) ListByClub(_ context.Context, clubID string) ([]*clubday.ClubDay, error) {
	return s.days[clubID], nil
}

type fakeOptionService struct {
	options map[string]*bookingoption.BookingOption
}

func (s *fakeOptionService) Create(context.Context, bookingoption.CreateRequest) (*bookingoption.BookingOption, error) {
	panic("not used")
}
func (s *fakeOptionService) ListByClub(context.Context, string) ([]*bookingoption.BookingOption, error) {
	panic("not used")
}
func (s *fakeOptionService) Update(context.Context, string, bookingoption.UpdateRequest) (*bookingoption.BookingOption, error) {
	panic("not used")
}
func (s *fakeOptionService) Delete(context.Context, string) error { panic("not used") }

func (s *fakeOptionService) GetByID(_ context.Context, id string) (*bookingoption.BookingOption, error) {
	o, ok := s.options[id]
	if !ok {
		return nil, bookingoption.ErrNotFound
	}
	return o, nil
}

type fakeChildService struct {
	children map[string]*child.Child
}

func (s *fakeChildService) Create(context.Context, child.CreateRequest) (*child.Child, error) {
	panic("not used")
}
func (s *fakeChildService) ListByUser(context.Context, string) ([]*child.Child, error) {
	panic("not used")
}
func (s *fakeChildService) Update(context.Context, string, string, child.UpdateRequest) (*child.Child, error) {
	panic("not used")
}
func (s *fakeChildService) Delete(context.Context, string, string) error { panic("not used") }

func (s *fakeChildService) GetOwned(_ context.Context, id, userID string) (*child.Child, error) {
	ch, ok := s.children[id]
	if !ok {
		return nil, child.ErrNotFound
	}
	if ch.UserID != userID {
		return nil, child.ErrPermissionDenied
	}
	return ch, nil
}

type fakePromoService struct {
	codes map[string]*promocode.PromoCode
}

func (s *fakePromoService) Create(context.Context, promocode.CreateRequest) (*promocode.PromoCode, error) {
	panic("not used")
}
func (s *fakePromoService) GetByID(context.Context, string) (*promocode.PromoCode, error) {
	panic("not used")
}
func (s *fakePromoService) List(context.Context) ([]*promocode.PromoCode, error) { panic("not used") }
func (s *fakePromoService) Update(context.Context, string, promocode.UpdateRequest) (*promocode.PromoCode, error) {
	panic("not used")
}
func (s *fakePromoService) Delete(context.Context, string) error { panic("not used") }

func (s *fakePromoService) Resolve(_ context.Context, code, _ string) (*promocode.PromoCode, error) {
	pc, ok := s.codes[code]
	if !ok {
		return nil, promocode.ErrNotFound
	}
	return pc, nil
}

type fakeUserService struct {
	users map[string]*user.User
}

func (s *fakeUserService) Register(context.Context, string, string, string) (*user.User, error) {
	panic("not used")
}
func (s *fakeUserService) Login(context.Context, string, string) (*user.User, error) {
	panic("not used")
}

func (s *fakeUserService) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

type fakePayments struct {
	sessions map[string]bool // session ID -> paid
	created  []checkout.Request
}

func newFakePayments() *fakePayments {
	return &fakePayments{sessions: map[string]bool{}}
}

func (p *fakePayments) CreateSession(_ context.Context, req checkout.Request) (*checkout.Session, error) {
	p.created = append(p.created, req)
	id := "sess-" + req.BookingID
	p.sessions[id] = false
	return &checkout.Session{ID: id, URL: "https://pay.test/" + id}, nil
}

func (p *fakePayments) SessionPaid(_ context.Context, sessionID string) (bool, error) {
	paid, ok := p.sessions[sessionID]
	if !ok {
		return false, checkout.ErrSessionNotFound
	}
	return paid, nil
}

//
// Fixture
//

type fixture struct {
	service  Service
	repo     *fakeRepo
	payments *fakePayments
	days     *fakeDayService
}

const (
	testClubID   = "club-1"
	testUserID   = "user-1"
	testOptionID = "opt-multi"
)

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clubs := &fakeClubService{clubs: map[string]*club.Club{
		testClubID: {
			ID:          testClubID,
			Name:        "Spring Adventure Week",
			StartDate:   date("2025-04-07"),
			EndDate:     date("2025-04-17"),
			MinAge:      5,
			MaxAge:      12,
			IsPublished: true,
		},
	}}

	days := &fakeDayService{days: map[string][]*clubday.ClubDay{
		testClubID: {
			day("2025-04-07", 20, 0, true),
			day("2025-04-08", 20, 0, true),
			day("2025-04-09", 20, 0, true),
			day("2025-04-10", 20, 19, true), // one seat left
			day("2025-04-11", 20, 0, false), // switched off
		},
	}}

	options := &fakeOptionService{options: map[string]*bookingoption.BookingOption{
		testOptionID: {
			ID:            testOptionID,
			ClubID:        testClubID,
			Name:          "Choose Your Days",
			OptionType:    bookingoption.TypeMultiDay,
			TimeSlot:      bookingoption.SlotFullDay,
			PricePerChild: 3500,
		},
		"opt-single": {
			ID:            "opt-single",
			ClubID:        testClubID,
			Name:          "Single Day",
			OptionType:    bookingoption.TypeSingleDay,
			TimeSlot:      bookingoption.SlotFullDay,
			PricePerChild: 4000,
		},
		"opt-week": {
			ID:            "opt-week",
			ClubID:        testClubID,
			Name:          "Full Week",
			OptionType:    bookingoption.TypeFullWeek,
			TimeSlot:      bookingoption.SlotFullDay,
			PricePerChild: 15000,
		},
	}}

	children := &fakeChildService{children: map[string]*child.Child{
		"child-1": {ID: "child-1", UserID: testUserID, FirstName: "Ada", DateOfBirth: date("2017-06-01")},
		"child-2": {ID: "child-2", UserID: testUserID, FirstName: "Ben", DateOfBirth: date("2019-02-15")},
		"child-toddler": {ID: "child-toddler", UserID: testUserID, FirstName: "Cleo", DateOfBirth: date("2023-01-01")},
	}}

	promos := &fakePromoService{codes: map[string]*promocode.PromoCode{
		"SPRING10": {ID: "promo-1", Code: "SPRING10", DiscountPercent: 10, IsActive: true},
	}}

	users := &fakeUserService{users: map[string]*user.User{
		testUserID: {ID: testUserID, Email: "parent@example.com"},
	}}

	repo := newFakeRepo()
	payments := newFakePayments()

	svc := NewService(repo, clubs, days, options, children, promos, users, payments, zap.NewNop())
	return &fixture{service: svc, repo: repo, payments: payments, days: days}
}

func day(d string, capacity, booked int, available bool) *clubday.ClubDay {
	return &clubday.ClubDay{
		ClubID:            testClubID,
		Date:              date(d),
		MorningCapacity:   capacity,
		AfternoonCapacity: capacity,
		MorningBooked:     booked,
		AfternoonBooked:   booked,
		IsAvailable:       available,
	}
}

//
// Tests
//

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("multi day with promo code", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08", "2025-04-09"},
			ChildIDs:        []string{"child-1", "child-2"},
			PromoCode:       "SPRING10",
		})
		require.NoError(t, err)

		b := result.Booking
		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, int64(14000), b.Subtotal)
		assert.Equal(t, int64(1400), b.DiscountAmount)
		assert.Equal(t, int64(12600), b.Total)
		assert.Equal(t, []string{"2025-04-08", "2025-04-09"}, b.DateStrings())
		assert.NotEmpty(t, result.CheckoutURL)

		require.Len(t, f.payments.created, 1)
		assert.Equal(t, int64(12600), f.payments.created[0].Amount)
		assert.Equal(t, "parent@example.com", f.payments.created[0].CustomerEmail)
	})

	t.Run("multi day with one date is incomplete", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08"},
			ChildIDs:        []string{"child-1"},
		})
		assert.ErrorIs(t, err, ErrIncompleteSelection)
	})

	t.Run("switched off day is unavailable", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08", "2025-04-11"},
			ChildIDs:        []string{"child-1"},
		})
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("day without room for the party is unavailable", func(t *testing.T) {
		f := newFixture(t)

		// 2025-04-10 has one seat left; two children need two.
		_, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08", "2025-04-10"},
			ChildIDs:        []string{"child-1", "child-2"},
		})
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("date outside club range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08", "2025-05-01"},
			ChildIDs:        []string{"child-1"},
		})
		assert.ErrorIs(t, err, ErrDateOutOfRange)
	})

	t.Run("child below the age range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08", "2025-04-09"},
			ChildIDs:        []string{"child-toddler"},
		})
		assert.ErrorIs(t, err, ErrChildAgeOutOfRange)
	})

	t.Run("no children", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08", "2025-04-09"},
		})
		assert.ErrorIs(t, err, ErrNoChildren)
	})

	t.Run("full week takes every open day", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: "opt-week",
			Dates:           nil, // ignored for full week
			ChildIDs:        []string{"child-1"},
		})
		require.NoError(t, err)

		// 04-10 has a free seat for one child; 04-11 is switched off.
		assert.Equal(t, []string{"2025-04-07", "2025-04-08", "2025-04-09", "2025-04-10"},
			result.Booking.DateStrings())
		// Flat per-child price regardless of day count.
		assert.Equal(t, int64(15000), result.Booking.Total)
	})
}

func TestServiceQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("matches worked example", func(t *testing.T) {
		f := newFixture(t)

		quote, err := f.service.Quote(ctx, QuoteRequest{
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08", "2025-04-09"},
			ChildCount:      2,
			PromoCode:       "SPRING10",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(14000), quote.Subtotal)
		assert.Equal(t, int64(1400), quote.DiscountAmount)
		assert.Equal(t, int64(12600), quote.Total)
	})

	t.Run("unknown promo code", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Quote(ctx, QuoteRequest{
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08", "2025-04-09"},
			ChildCount:      2,
			PromoCode:       "NOPE",
		})
		assert.ErrorIs(t, err, promocode.ErrNotFound)
	})
}

func TestServiceExtend(t *testing.T) {
	ctx := context.Background()

	confirmedBooking := func(t *testing.T, f *fixture, dates ...string) *Booking {
		t.Helper()
		result, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           dates,
			ChildIDs:        []string{"child-1"},
		})
		require.NoError(t, err)
		require.NoError(t, f.repo.UpdateStatus(ctx, result.Booking.ID, StatusConfirmed))
		return result.Booking
	}

	t.Run("extension pool excludes booked dates", func(t *testing.T) {
		f := newFixture(t)
		b := confirmedBooking(t, f, "2025-04-07", "2025-04-08")

		pool, err := f.service.GetExtensionPool(ctx, b.ID, testUserID)
		require.NoError(t, err)
		assert.False(t, pool.Exhausted)
		assert.Equal(t, []string{"2025-04-09", "2025-04-10"}, pool.Dates)
	})

	t.Run("extension is priced on new dates only", func(t *testing.T) {
		f := newFixture(t)
		b := confirmedBooking(t, f, "2025-04-07", "2025-04-08")

		result, err := f.service.Extend(ctx, ExtendRequest{
			BookingID: b.ID,
			UserID:    testUserID,
			Dates:     []string{"2025-04-09", "2025-04-10"},
		})
		require.NoError(t, err)

		ext := result.Booking
		require.NotNil(t, ext.ParentBookingID)
		assert.Equal(t, b.ID, *ext.ParentBookingID)
		// 3500 * 2 new days * 1 child; the two original days are not re-billed.
		assert.Equal(t, int64(7000), ext.Total)
		assert.Equal(t, []string{"2025-04-09", "2025-04-10"}, ext.DateStrings())
	})

	t.Run("cannot extend onto an already booked date", func(t *testing.T) {
		f := newFixture(t)
		b := confirmedBooking(t, f, "2025-04-07", "2025-04-08")

		_, err := f.service.Extend(ctx, ExtendRequest{
			BookingID: b.ID,
			UserID:    testUserID,
			Dates:     []string{"2025-04-07", "2025-04-09"},
		})
		assert.ErrorIs(t, err, ErrDateUnavailable)
	})

	t.Run("fully booked club is exhausted", func(t *testing.T) {
		f := newFixture(t)
		b := confirmedBooking(t, f, "2025-04-07", "2025-04-08", "2025-04-09", "2025-04-10")

		pool, err := f.service.GetExtensionPool(ctx, b.ID, testUserID)
		require.NoError(t, err)
		assert.True(t, pool.Exhausted)
		assert.Empty(t, pool.Dates)

		_, err = f.service.Extend(ctx, ExtendRequest{
			BookingID: b.ID,
			UserID:    testUserID,
			Dates:     []string{"2025-04-09", "2025-04-10"},
		})
		assert.ErrorIs(t, err, ErrExhaustedAvailability)
	})

	t.Run("pending booking cannot be extended", func(t *testing.T) {
		f := newFixture(t)
		result, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-07", "2025-04-08"},
			ChildIDs:        []string{"child-1"},
		})
		require.NoError(t, err)

		_, err = f.service.Extend(ctx, ExtendRequest{
			BookingID: result.Booking.ID,
			UserID:    testUserID,
			Dates:     []string{"2025-04-09", "2025-04-10"},
		})
		assert.ErrorIs(t, err, ErrNotExtendable)
	})
}

func TestServiceConfirm(t *testing.T) {
	ctx := context.Background()

	createPending := func(t *testing.T, f *fixture) *Booking {
		t.Helper()
		result, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-08", "2025-04-09"},
			ChildIDs:        []string{"child-1"},
		})
		require.NoError(t, err)
		return result.Booking
	}

	t.Run("confirms once payment completed", func(t *testing.T) {
		f := newFixture(t)
		b := createPending(t, f)
		f.payments.sessions[*b.CheckoutSessionID] = true

		got, err := f.service.Confirm(ctx, b.ID, testUserID)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, got.Status)

		// Idempotent for an already-confirmed booking.
		again, err := f.service.Confirm(ctx, b.ID, testUserID)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, again.Status)
	})

	t.Run("rejects unpaid session", func(t *testing.T) {
		f := newFixture(t)
		b := createPending(t, f)

		_, err := f.service.Confirm(ctx, b.ID, testUserID)
		assert.ErrorIs(t, err, ErrPaymentIncomplete)
	})

	t.Run("other users cannot confirm", func(t *testing.T) {
		f := newFixture(t)
		b := createPending(t, f)

		_, err := f.service.Confirm(ctx, b.ID, "someone-else")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestServiceMonthAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("classifies a full month", func(t *testing.T) {
		f := newFixture(t)

		month, err := f.service.MonthAvailability(ctx, MonthAvailabilityRequest{
			ClubID:        testClubID,
			Year:          2025,
			Month:         time.April,
			SelectedDates: []string{"2025-04-08"},
		})
		require.NoError(t, err)

		states := map[string]DayState{}
		for _, slot := range month.Slots {
			if slot.Date != "" {
				states[slot.Date] = slot.State
			}
		}

		assert.Equal(t, DayOutOfRange, states["2025-04-01"])
		assert.Equal(t, DayAvailable, states["2025-04-07"])
		assert.Equal(t, DaySelected, states["2025-04-08"])
		assert.Equal(t, DayUnavailable, states["2025-04-11"])
		assert.Equal(t, DayOutOfRange, states["2025-04-20"])

		// Club range 04-07..04-17 sits entirely within April.
		assert.False(t, month.CanPrev)
		assert.False(t, month.CanNext)
	})

	t.Run("extension view marks booked dates", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.service.Create(ctx, CreateRequest{
			UserID:          testUserID,
			ClubID:          testClubID,
			BookingOptionID: testOptionID,
			Dates:           []string{"2025-04-07", "2025-04-08"},
			ChildIDs:        []string{"child-1"},
		})
		require.NoError(t, err)

		month, err := f.service.MonthAvailability(ctx, MonthAvailabilityRequest{
			ClubID:    testClubID,
			Year:      2025,
			Month:     time.April,
			BookingID: result.Booking.ID,
			UserID:    testUserID,
		})
		require.NoError(t, err)

		states := map[string]DayState{}
		for _, slot := range month.Slots {
			if slot.Date != "" {
				states[slot.Date] = slot.State
			}
		}

		assert.Equal(t, DayBooked, states["2025-04-07"])
		assert.Equal(t, DayBooked, states["2025-04-08"])
		assert.Equal(t, DayAvailable, states["2025-04-09"])
	})
}

func TestServiceOwnership(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	result, err := f.service.Create(ctx, CreateRequest{
		UserID:          testUserID,
		ClubID:          testClubID,
		BookingOptionID: testOptionID,
		Dates:           []string{"2025-04-08", "2025-04-09"},
		ChildIDs:        []string{"child-1"},
	})
	require.NoError(t, err)

	_, err = f.service.GetByID(ctx, result.Booking.ID, "someone-else")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = f.service.Cancel(ctx, result.Booking.ID, "someone-else")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, f.service.Cancel(ctx, result.Booking.ID, testUserID))
	b, err := f.service.GetByID(ctx, result.Booking.ID, testUserID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, b.Status)
}
