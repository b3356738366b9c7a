package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
	"github.com/brightdays/holiday-club-backend/internal/checkout"
	"github.com/brightdays/holiday-club-backend/internal/child"
	"github.com/brightdays/holiday-club-backend/internal/club"
	"github.com/brightdays/holiday-club-backend/internal/clubday"
	"github.com/brightdays/holiday-club-backend/internal/promocode"
	"github.com/brightdays/holiday-club-backend/internal/user"
)

type MonthAvailabilityRequest struct {
	ClubID string
	Year   int
	Month  time.Month

	// BookingOptionID narrows availability to seats in the option's time
	// slot. When empty, a day counts as available if any slot has seats.
	BookingOptionID string

	// SelectedDates marks the session's current picks on the grid.
	SelectedDates []string

	// BookingID switches to the extension view: that booking's dates are
	// shown as booked and excluded from the selectable pool. Requires
	// UserID for the ownership check.
	BookingID string
	UserID    string
}

type CalendarMonth struct {
	Year    int
	Month   time.Month
	Slots   []GridSlot
	CanPrev bool
	CanNext bool
}

type QuoteRequest struct {
	ClubID          string
	BookingOptionID string
	Dates           []string
	ChildCount      int
	PromoCode       string
}

type QuoteResult struct {
	Subtotal        int64
	DiscountPercent int
	DiscountAmount  int64
	Total           int64
	PromoCodeID     *string
}

type CreateRequest struct {
	UserID          string
	ClubID          string
	BookingOptionID string
	Dates           []string
	ChildIDs        []string
	PromoCode       string
}

type ExtendRequest struct {
	BookingID string
	UserID    string
	Dates     []string
	PromoCode string
}

// CreateResult pairs a pending booking with the payment session the
// client must be redirected to.
type CreateResult struct {
	Booking     *Booking
	CheckoutURL string
}

// ExtensionPool is the residual set of dates an existing booking can
// still be extended with. Exhausted marks the terminal "fully booked"
// state, which callers render as a dead end rather than an empty grid.
type ExtensionPool struct {
	Dates     []string
	Exhausted bool
}

type Service interface {
	MonthAvailability(ctx context.Context, req MonthAvailabilityRequest) (*CalendarMonth, error)
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)

	GetExtensionPool(ctx context.Context, bookingID, userID string) (*ExtensionPool, error)
	Extend(ctx context.Context, req ExtendRequest) (*CreateResult, error)

	// Confirm finalizes a pending booking once its payment session has
	// completed. Confirming an already-confirmed booking is a no-op.
	Confirm(ctx context.Context, id, userID string) (*Booking, error)

	// Cancel releases a pending booking's seats. Paid bookings cannot be
	// cancelled through this path.
	Cancel(ctx context.Context, id, userID string) error

	GetByID(ctx context.Context, id, userID string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
}

type service struct {
	repo     Repository
	clubs    club.Service
	days     clubday.Service
	options  bookingoption.Service
	children child.Service
	promos   promocode.Service
	users    user.Service
	payments checkout.Provider
	logger   *zap.Logger
}

func NewService(
	repo Repository,
	clubs club.Service,
	days clubday.Service,
	options bookingoption.Service,
	children child.Service,
	promos promocode.Service,
	users user.Service,
	payments checkout.Provider,
	logger *zap.Logger,
) Service {
	return &service{
		repo:     repo,
		clubs:    clubs,
		days:     days,
		options:  options,
		children: children,
		promos:   promos,
		users:    users,
		payments: payments,
		logger:   logger,
	}
}

func (s *service) MonthAvailability(ctx context.Context, req MonthAvailabilityRequest) (*CalendarMonth, error) {
	c, err := s.clubs.GetByID(ctx, req.ClubID)
	if err != nil {
		return nil, err
	}

	slot := bookingoption.SlotFullDay
	seatsNeeded := 1
	if req.BookingOptionID != "" {
		opt, err := s.options.GetByID(ctx, req.BookingOptionID)
		if err != nil {
			return nil, err
		}
		if opt.ClubID != c.ID {
			return nil, ErrOptionMismatch
		}
		slot = opt.TimeSlot
	}

	days, err := s.days.ListByClub(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	availability := availabilityMap(daySnapshots(days, slot, seatsNeeded))

	booked := NewSelection()
	if req.BookingID != "" {
		b, err := s.GetByID(ctx, req.BookingID, req.UserID)
		if err != nil {
			return nil, err
		}
		if b.ClubID != c.ID {
			return nil, ErrNotFound
		}
		booked = NewSelection(b.DateStrings()...)
	}
	selected := NewSelection(req.SelectedDates...)

	slots := BuildMonthGrid(req.Year, req.Month)
	for i := range slots {
		if slots[i].Date == "" {
			continue
		}
		slots[i].State = Classify(slots[i].Date, c.StartDate, c.EndDate, availability, booked, selected)
	}

	return &CalendarMonth{
		Year:    req.Year,
		Month:   req.Month,
		Slots:   slots,
		CanPrev: CanNavigate(NavPrev, req.Year, req.Month, c.StartDate, c.EndDate),
		CanNext: CanNavigate(NavNext, req.Year, req.Month, c.StartDate, c.EndDate),
	}, nil
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	opt, err := s.optionForClub(ctx, req.ClubID, req.BookingOptionID)
	if err != nil {
		return nil, err
	}
	if req.ChildCount < 1 {
		return nil, ErrNoChildren
	}

	sel := NewSelection(req.Dates...)
	if err := Validate(sel, opt.OptionType); err != nil {
		return nil, err
	}

	return s.price(ctx, opt, sel.Count(), req.ChildCount, req.PromoCode, req.ClubID)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	c, err := s.clubs.GetByID(ctx, req.ClubID)
	if err != nil {
		return nil, err
	}
	if !c.IsPublished {
		return nil, club.ErrNotFound
	}

	opt, err := s.optionForClub(ctx, req.ClubID, req.BookingOptionID)
	if err != nil {
		return nil, err
	}

	if err := s.checkChildren(ctx, c, req.UserID, req.ChildIDs); err != nil {
		return nil, err
	}
	seatsNeeded := len(req.ChildIDs)

	days, err := s.days.ListByClub(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	snapshots := daySnapshots(days, opt.TimeSlot, seatsNeeded)

	sel, err := s.resolveSelection(opt.OptionType, req.Dates, snapshots, NewSelection(), c)
	if err != nil {
		return nil, err
	}

	quote, err := s.price(ctx, opt, sel.Count(), seatsNeeded, req.PromoCode, c.ID)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		UserID:          req.UserID,
		ClubID:          c.ID,
		BookingOptionID: opt.ID,
		Status:          StatusPending,
		TimeSlot:        opt.TimeSlot,
		Dates:           parseDates(sel.Dates()),
		ChildIDs:        req.ChildIDs,
		Subtotal:        quote.Subtotal,
		DiscountAmount:  quote.DiscountAmount,
		Total:           quote.Total,
		PromoCodeID:     quote.PromoCodeID,
	}

	return s.finalize(ctx, b, c)
}

func (s *service) GetExtensionPool(ctx context.Context, bookingID, userID string) (*ExtensionPool, error) {
	b, _, _, snapshots, err := s.extensionContext(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}

	pool := ComputeExtensionPool(snapshots, NewSelection(b.DateStrings()...))
	return &ExtensionPool{Dates: pool, Exhausted: len(pool) == 0}, nil
}

func (s *service) Extend(ctx context.Context, req ExtendRequest) (*CreateResult, error) {
	parent, c, opt, snapshots, err := s.extensionContext(ctx, req.BookingID, req.UserID)
	if err != nil {
		return nil, err
	}

	booked := NewSelection(parent.DateStrings()...)
	pool := ComputeExtensionPool(snapshots, booked)
	if len(pool) == 0 {
		return nil, ErrExhaustedAvailability
	}

	// The pool already excludes the parent's dates, so the new selection
	// is disjoint from them and priced on its own count only.
	sel, err := s.resolveSelection(opt.OptionType, req.Dates, poolSnapshots(pool), booked, c)
	if err != nil {
		return nil, err
	}

	quote, err := s.price(ctx, opt, sel.Count(), len(parent.ChildIDs), req.PromoCode, c.ID)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		UserID:          parent.UserID,
		ClubID:          c.ID,
		BookingOptionID: opt.ID,
		ParentBookingID: &parent.ID,
		Status:          StatusPending,
		TimeSlot:        opt.TimeSlot,
		Dates:           parseDates(sel.Dates()),
		ChildIDs:        parent.ChildIDs,
		Subtotal:        quote.Subtotal,
		DiscountAmount:  quote.DiscountAmount,
		Total:           quote.Total,
		PromoCodeID:     quote.PromoCodeID,
	}

	return s.finalize(ctx, b, c)
}

func (s *service) Confirm(ctx context.Context, id, userID string) (*Booking, error) {
	b, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if b.Status == StatusConfirmed {
		return b, nil
	}
	if b.Status != StatusPending || b.CheckoutSessionID == nil {
		return nil, ErrNotPending
	}

	paid, err := s.payments.SessionPaid(ctx, *b.CheckoutSessionID)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, ErrPaymentIncomplete
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, StatusConfirmed); err != nil {
		return nil, err
	}
	b.Status = StatusConfirmed

	s.logger.Info("booking confirmed",
		zap.String("booking_id", b.ID),
		zap.String("user_id", b.UserID),
		zap.Int64("total", b.Total))

	return b, nil
}

func (s *service) Cancel(ctx context.Context, id, userID string) error {
	b, err := s.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if b.Status != StatusPending {
		return ErrNotPending
	}

	if err := s.repo.CancelPending(ctx, b); err != nil {
		return err
	}

	s.logger.Info("booking cancelled",
		zap.String("booking_id", b.ID),
		zap.String("user_id", b.UserID))

	return nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return b, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

// === helpers ===

func (s *service) optionForClub(ctx context.Context, clubID, optionID string) (*bookingoption.BookingOption, error) {
	opt, err := s.options.GetByID(ctx, optionID)
	if err != nil {
		return nil, err
	}
	if opt.ClubID != clubID {
		return nil, ErrOptionMismatch
	}
	return opt, nil
}

func (s *service) checkChildren(ctx context.Context, c *club.Club, userID string, childIDs []string) error {
	if len(childIDs) == 0 {
		return ErrNoChildren
	}
	for _, id := range childIDs {
		ch, err := s.children.GetOwned(ctx, id, userID)
		if err != nil {
			return err
		}
		age := ch.AgeOn(c.StartDate)
		if age < c.MinAge || age > c.MaxAge {
			return fmt.Errorf("%w: %s", ErrChildAgeOutOfRange, ch.FirstName)
		}
	}
	return nil
}

// resolveSelection turns the requested dates into a validated Selection.
// Each date must classify as available against the given snapshot;
// full_week ignores the request and takes the whole pool.
func (s *service) resolveSelection(optType bookingoption.OptionType, dates []string, snapshots []DaySnapshot, booked Selection, c *club.Club) (Selection, error) {
	availability := availabilityMap(snapshots)

	if optType == bookingoption.TypeFullWeek {
		sel := NewSelection()
		for _, snap := range snapshots {
			if snap.IsAvailable && !booked.Has(snap.Date) {
				sel[snap.Date] = struct{}{}
			}
		}
		if sel.Count() == 0 {
			return nil, ErrDateUnavailable
		}
		return sel, nil
	}

	sel := NewSelection()
	for _, d := range dates {
		switch Classify(d, c.StartDate, c.EndDate, availability, booked, sel) {
		case DayAvailable:
			sel[d] = struct{}{}
		case DayOutOfRange:
			return nil, fmt.Errorf("%w: %s", ErrDateOutOfRange, d)
		case DaySelected:
			// duplicate in the request, ignore
		default:
			return nil, fmt.Errorf("%w: %s", ErrDateUnavailable, d)
		}
	}

	if err := Validate(sel, optType); err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *service) price(ctx context.Context, opt *bookingoption.BookingOption, dateCount, childCount int, promoCode, clubID string) (*QuoteResult, error) {
	subtotal, err := ComputeSubtotal(opt.OptionType, opt.PricePerChild, dateCount, childCount)
	if err != nil {
		return nil, err
	}

	res := &QuoteResult{Subtotal: subtotal, Total: subtotal}
	if promoCode != "" {
		pc, err := s.promos.Resolve(ctx, promoCode, clubID)
		if err != nil {
			return nil, err
		}
		res.DiscountPercent = pc.DiscountPercent
		res.PromoCodeID = &pc.ID
		res.DiscountAmount, res.Total = ApplyDiscount(subtotal, pc.DiscountPercent)
	}
	return res, nil
}

// finalize persists the pending booking with its seat reservation and
// opens the payment session.
func (s *service) finalize(ctx context.Context, b *Booking, c *club.Club) (*CreateResult, error) {
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, b.UserID)
	if err != nil {
		return nil, err
	}

	session, err := s.payments.CreateSession(ctx, checkout.Request{
		BookingID:     b.ID,
		Label:         c.Name,
		Description:   fmt.Sprintf("%d day(s), %d child(ren)", len(b.Dates), len(b.ChildIDs)),
		Amount:        b.Total,
		CustomerEmail: u.Email,
	})
	if err != nil {
		// Seats stay reserved; the user can retry payment or the pending
		// booking gets cancelled to release them.
		s.logger.Error("payment session creation failed",
			zap.String("booking_id", b.ID),
			zap.Error(err))
		return nil, err
	}

	if err := s.repo.SetCheckoutSession(ctx, b.ID, session.ID); err != nil {
		return nil, err
	}
	b.CheckoutSessionID = &session.ID

	s.logger.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("club_id", b.ClubID),
		zap.Int("dates", len(b.Dates)),
		zap.Int64("total", b.Total))

	return &CreateResult{Booking: b, CheckoutURL: session.URL}, nil
}

// extensionContext loads everything needed for the extension flow and
// checks that the booking is eligible (owned and paid for).
func (s *service) extensionContext(ctx context.Context, bookingID, userID string) (*Booking, *club.Club, *bookingoption.BookingOption, []DaySnapshot, error) {
	b, err := s.GetByID(ctx, bookingID, userID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if b.Status != StatusConfirmed {
		return nil, nil, nil, nil, ErrNotExtendable
	}

	c, err := s.clubs.GetByID(ctx, b.ClubID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	opt, err := s.options.GetByID(ctx, b.BookingOptionID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	days, err := s.days.ListByClub(ctx, c.ID)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return b, c, opt, daySnapshots(days, opt.TimeSlot, len(b.ChildIDs)), nil
}

// daySnapshots folds per-slot seat counts into a plain available flag:
// a day is available when its administrative switch is on and the
// required slot(s) still have room for seatsNeeded children.
func daySnapshots(days []*clubday.ClubDay, slot bookingoption.TimeSlot, seatsNeeded int) []DaySnapshot {
	out := make([]DaySnapshot, len(days))
	for i, d := range days {
		available := d.IsAvailable
		if available {
			switch slot {
			case bookingoption.SlotMorning:
				available = d.RemainingMorning() >= seatsNeeded
			case bookingoption.SlotAfternoon:
				available = d.RemainingAfternoon() >= seatsNeeded
			default:
				available = d.RemainingMorning() >= seatsNeeded && d.RemainingAfternoon() >= seatsNeeded
			}
		}
		out[i] = DaySnapshot{Date: d.Date.Format(dateLayout), IsAvailable: available}
	}
	return out
}

func availabilityMap(snapshots []DaySnapshot) map[string]bool {
	m := make(map[string]bool, len(snapshots))
	for _, s := range snapshots {
		m[s.Date] = s.IsAvailable
	}
	return m
}

func poolSnapshots(pool []string) []DaySnapshot {
	out := make([]DaySnapshot, len(pool))
	for i, d := range pool {
		out[i] = DaySnapshot{Date: d, IsAvailable: true}
	}
	return out
}

func parseDates(dates []string) []time.Time {
	out := make([]time.Time, len(dates))
	for i, d := range dates {
		t, _ := time.Parse(dateLayout, d)
		out[i] = t
	}
	return out
}
