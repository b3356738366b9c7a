package clubday

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	ListByClub(ctx context.Context, clubID string) ([]*ClubDay, error)
	Upsert(ctx context.Context, clubID string, days []DayInput) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListByClub(ctx context.Context, clubID string) ([]*ClubDay, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "club_id", "date",
		"morning_capacity", "afternoon_capacity",
		"morning_booked", "afternoon_booked",
		"is_available", "created_at", "updated_at",
	).
		From("public.club_days").
		Where(squirrel.Eq{"club_id": clubID}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list club days query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list club days failed: %w", err)
	}
	defer rows.Close()

	var days []*ClubDay
	for rows.Next() {
		var d ClubDay
		if err := rows.Scan(
			&d.ID, &d.ClubID, &d.Date,
			&d.MorningCapacity, &d.AfternoonCapacity,
			&d.MorningBooked, &d.AfternoonBooked,
			&d.IsAvailable, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan club day failed: %w", err)
		}
		days = append(days, &d)
	}

	return days, nil
}

func (r *pgxRepository) Upsert(ctx context.Context, clubID string, days []DayInput) error {
	if len(days) == 0 {
		return nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	insert := psql.Insert("public.club_days").
		Columns("club_id", "date", "morning_capacity", "afternoon_capacity", "is_available")
	for _, d := range days {
		insert = insert.Values(clubID, d.Date, d.MorningCapacity, d.AfternoonCapacity, d.IsAvailable)
	}
	// Booked counters are owned by the booking repository, so the conflict
	// branch only updates capacity and availability.
	insert = insert.Suffix(`ON CONFLICT (club_id, date) DO UPDATE SET
		morning_capacity = EXCLUDED.morning_capacity,
		afternoon_capacity = EXCLUDED.afternoon_capacity,
		is_available = EXCLUDED.is_available,
		updated_at = now()`)

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert club days query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert club days failed: %w", err)
	}
	return nil
}
