package bookingoption

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *BookingOption) error
	GetByID(ctx context.Context, id string) (*BookingOption, error)
	List(ctx context.Context, filter Filter) ([]*BookingOption, error)
	Update(ctx context.Context, o *BookingOption) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, o *BookingOption) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.booking_options").
		Columns("club_id", "name", "option_type", "time_slot", "price_per_child", "sort_order").
		Values(o.ClubID, o.Name, o.OptionType, o.TimeSlot, o.PricePerChild, o.SortOrder).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking option query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("create booking option failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*BookingOption, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "club_id", "name", "option_type", "time_slot", "price_per_child", "sort_order", "created_at",
	).
		From("public.booking_options").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking option query failed: %w", err)
	}

	var o BookingOption
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&o.ID, &o.ClubID, &o.Name, &o.OptionType, &o.TimeSlot, &o.PricePerChild, &o.SortOrder, &o.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking option failed: %w", err)
	}
	return &o, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*BookingOption, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "club_id", "name", "option_type", "time_slot", "price_per_child", "sort_order", "created_at",
	).
		From("public.booking_options").
		OrderBy("sort_order ASC", "created_at ASC")

	if filter.ClubID != "" {
		query = query.Where(squirrel.Eq{"club_id": filter.ClubID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list booking options query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list booking options failed: %w", err)
	}
	defer rows.Close()

	var options []*BookingOption
	for rows.Next() {
		var o BookingOption
		if err := rows.Scan(
			&o.ID, &o.ClubID, &o.Name, &o.OptionType, &o.TimeSlot, &o.PricePerChild, &o.SortOrder, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking option failed: %w", err)
		}
		options = append(options, &o)
	}

	return options, nil
}

func (r *pgxRepository) Update(ctx context.Context, o *BookingOption) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.booking_options").
		Set("name", o.Name).
		Set("price_per_child", o.PricePerChild).
		Set("sort_order", o.SortOrder).
		Where(squirrel.Eq{"id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking option query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking option failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.booking_options").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking option query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking option failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
