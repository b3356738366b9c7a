package club

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Club) error
	GetByID(ctx context.Context, id string) (*Club, error)
	List(ctx context.Context, filter Filter) ([]*Club, int, error)
	Update(ctx context.Context, c *Club) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Club) error {
	var mStart, mEnd, aStart, aEnd *string
	if c.Morning != nil {
		mStart, mEnd = &c.Morning.Start, &c.Morning.End
	}
	if c.Afternoon != nil {
		aStart, aEnd = &c.Afternoon.Start, &c.Afternoon.End
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.clubs").
		Columns(
			"name", "description", "venue", "start_date", "end_date",
			"morning_start", "morning_end", "afternoon_start", "afternoon_end",
			"min_age", "max_age", "is_published",
		).
		Values(
			c.Name, c.Description, c.Venue, c.StartDate, c.EndDate,
			mStart, mEnd, aStart, aEnd,
			c.MinAge, c.MaxAge, c.IsPublished,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create club query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func scanClub(row pgx.Row, extraDest ...any) (*Club, error) {
	var c Club
	var mStart, mEnd, aStart, aEnd *string

	dest := []any{
		&c.ID, &c.Name, &c.Description, &c.Venue, &c.StartDate, &c.EndDate,
		&mStart, &mEnd, &aStart, &aEnd,
		&c.MinAge, &c.MaxAge, &c.IsPublished, &c.CreatedAt, &c.UpdatedAt,
	}
	dest = append(dest, extraDest...)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan club failed: %w", err)
	}

	if mStart != nil && mEnd != nil {
		c.Morning = &SessionWindow{Start: *mStart, End: *mEnd}
	}
	if aStart != nil && aEnd != nil {
		c.Afternoon = &SessionWindow{Start: *aStart, End: *aEnd}
	}
	return &c, nil
}

var clubColumns = []string{
	"id", "name", "description", "venue", "start_date", "end_date",
	"morning_start", "morning_end", "afternoon_start", "afternoon_end",
	"min_age", "max_age", "is_published", "created_at", "updated_at",
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Club, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(clubColumns...).
		From("public.clubs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get club query failed: %w", err)
	}

	return scanClub(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Club, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append(append([]string{}, clubColumns...), "count(*) OVER() as total_count")
	query := psql.Select(cols...).From("public.clubs")

	if filter.PublishedOnly {
		query = query.Where(squirrel.Eq{"is_published": true})
	}
	if filter.FromDate != nil {
		query = query.Where(squirrel.GtOrEq{"end_date": filter.FromDate})
	}

	// Sorting
	orderBy := "start_date"
	if filter.SortBy != "" {
		orderBy = filter.SortBy
	}
	orderDir := "ASC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list clubs query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list clubs failed: %w", err)
	}
	defer rows.Close()

	var clubs []*Club
	var total int

	for rows.Next() {
		c, err := scanClub(rows, &total)
		if err != nil {
			return nil, 0, err
		}
		clubs = append(clubs, c)
	}

	return clubs, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Club) error {
	var mStart, mEnd, aStart, aEnd *string
	if c.Morning != nil {
		mStart, mEnd = &c.Morning.Start, &c.Morning.End
	}
	if c.Afternoon != nil {
		aStart, aEnd = &c.Afternoon.Start, &c.Afternoon.End
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.clubs").
		Set("name", c.Name).
		Set("description", c.Description).
		Set("venue", c.Venue).
		Set("morning_start", mStart).
		Set("morning_end", mEnd).
		Set("afternoon_start", aStart).
		Set("afternoon_end", aEnd).
		Set("min_age", c.MinAge).
		Set("max_age", c.MaxAge).
		Set("is_published", c.IsPublished).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update club query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update club failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.clubs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete club query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete club failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
