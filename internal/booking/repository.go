package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
)

type Repository interface {
	// Create inserts the booking and reserves its seats in one
	// transaction. If any date can no longer hold the party, nothing is
	// written and ErrDateUnavailable is returned.
	Create(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	SetCheckoutSession(ctx context.Context, id, sessionID string) error

	// CancelPending marks a pending booking cancelled and releases its
	// seats. Returns ErrNotPending if the booking is no longer pending.
	CancelPending(ctx context.Context, b *Booking) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var bookingColumns = []string{
	"b.id", "b.user_id", "b.club_id", "b.booking_option_id", "b.parent_booking_id",
	"b.status", "b.time_slot", "b.subtotal", "b.discount_amount", "b.total",
	"b.promo_code_id", "b.checkout_session_id", "b.created_at", "b.updated_at",
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.UserID, &b.ClubID, &b.BookingOptionID, &b.ParentBookingID,
		&b.Status, &b.TimeSlot, &b.Subtotal, &b.DiscountAmount, &b.Total,
		&b.PromoCodeID, &b.CheckoutSessionID, &b.CreatedAt, &b.UpdatedAt,
		&b.Dates, &b.ChildIDs,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction failed: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args, err := psql.Insert("public.bookings").
		Columns("user_id", "club_id", "booking_option_id", "parent_booking_id",
			"status", "time_slot", "subtotal", "discount_amount", "total", "promo_code_id").
		Values(b.UserID, b.ClubID, b.BookingOptionID, b.ParentBookingID,
			b.Status, b.TimeSlot, b.Subtotal, b.DiscountAmount, b.Total, b.PromoCodeID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}
	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	seats := len(b.ChildIDs)
	for _, date := range b.Dates {
		if err := reserveSeats(ctx, tx, b.ClubID, b.TimeSlot, date, seats); err != nil {
			return err
		}
	}

	dateInsert := psql.Insert("public.booking_dates").Columns("booking_id", "date")
	for _, date := range b.Dates {
		dateInsert = dateInsert.Values(b.ID, date)
	}
	query, args, err = dateInsert.ToSql()
	if err != nil {
		return fmt.Errorf("build booking dates query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert booking dates failed: %w", err)
	}

	childInsert := psql.Insert("public.booking_children").Columns("booking_id", "child_id")
	for _, childID := range b.ChildIDs {
		childInsert = childInsert.Values(b.ID, childID)
	}
	query, args, err = childInsert.ToSql()
	if err != nil {
		return fmt.Errorf("build booking children query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert booking children failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking transaction failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := bookingSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	query, args, err := bookingSelect().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SetCheckoutSession(ctx context.Context, id, sessionID string) error {
	query, args, err := psql.Update("public.bookings").
		Set("checkout_session_id", sessionID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build set checkout session query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set checkout session failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) CancelPending(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cancel transaction failed: %w", err)
	}
	defer tx.Rollback(ctx)

	query, args, err := psql.Update("public.bookings").
		Set("status", StatusCancelled).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID, "status": StatusPending}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build cancel booking query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("cancel booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotPending
	}

	seats := len(b.ChildIDs)
	for _, date := range b.Dates {
		if err := releaseSeats(ctx, tx, b.ClubID, b.TimeSlot, date, seats); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cancel transaction failed: %w", err)
	}
	return nil
}

func bookingSelect() squirrel.SelectBuilder {
	cols := append([]string{}, bookingColumns...)
	cols = append(cols,
		"COALESCE(array_agg(DISTINCT bd.date) FILTER (WHERE bd.date IS NOT NULL), '{}') AS dates",
		"COALESCE(array_agg(DISTINCT bc.child_id::text) FILTER (WHERE bc.child_id IS NOT NULL), '{}') AS child_ids",
	)
	return psql.Select(cols...).
		From("public.bookings b").
		LeftJoin("public.booking_dates bd ON bd.booking_id = b.id").
		LeftJoin("public.booking_children bc ON bc.booking_id = b.id").
		GroupBy("b.id")
}

// reserveSeats bumps the booked counters for one day, guarded so the
// count can never exceed capacity. Zero rows affected means the day is
// gone: either switched off or another purchase got there first.
func reserveSeats(ctx context.Context, tx pgx.Tx, clubID string, slot bookingoption.TimeSlot, date time.Time, seats int) error {
	upd := psql.Update("public.club_days").
		Where(squirrel.Eq{"club_id": clubID, "date": date}).
		Where("is_available")

	if slot == bookingoption.SlotMorning || slot == bookingoption.SlotFullDay {
		upd = upd.Set("morning_booked", squirrel.Expr("morning_booked + ?", seats)).
			Where(squirrel.Expr("morning_booked + ? <= morning_capacity", seats))
	}
	if slot == bookingoption.SlotAfternoon || slot == bookingoption.SlotFullDay {
		upd = upd.Set("afternoon_booked", squirrel.Expr("afternoon_booked + ?", seats)).
			Where(squirrel.Expr("afternoon_booked + ? <= afternoon_capacity", seats))
	}

	query, args, err := upd.ToSql()
	if err != nil {
		return fmt.Errorf("build reserve seats query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("reserve seats failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrDateUnavailable
	}
	return nil
}

func releaseSeats(ctx context.Context, tx pgx.Tx, clubID string, slot bookingoption.TimeSlot, date time.Time, seats int) error {
	upd := psql.Update("public.club_days").
		Where(squirrel.Eq{"club_id": clubID, "date": date})

	if slot == bookingoption.SlotMorning || slot == bookingoption.SlotFullDay {
		upd = upd.Set("morning_booked", squirrel.Expr("GREATEST(morning_booked - ?, 0)", seats))
	}
	if slot == bookingoption.SlotAfternoon || slot == bookingoption.SlotFullDay {
		upd = upd.Set("afternoon_booked", squirrel.Expr("GREATEST(afternoon_booked - ?, 0)", seats))
	}

	query, args, err := upd.ToSql()
	if err != nil {
		return fmt.Errorf("build release seats query failed: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("release seats failed: %w", err)
	}
	return nil
}
