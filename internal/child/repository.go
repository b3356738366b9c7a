package child

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, ch *Child) error
	GetByID(ctx context.Context, id string) (*Child, error)
	ListByUser(ctx context.Context, userID string) ([]*Child, error)
	Update(ctx context.Context, ch *Child) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, ch *Child) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.children").
		Columns("user_id", "first_name", "last_name", "date_of_birth").
		Values(ch.UserID, ch.FirstName, ch.LastName, ch.DateOfBirth).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create child query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&ch.ID, &ch.CreatedAt); err != nil {
		return fmt.Errorf("create child failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Child, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "user_id", "first_name", "last_name", "date_of_birth", "created_at").
		From("public.children").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get child query failed: %w", err)
	}

	var ch Child
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&ch.ID, &ch.UserID, &ch.FirstName, &ch.LastName, &ch.DateOfBirth, &ch.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get child failed: %w", err)
	}
	return &ch, nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Child, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "user_id", "first_name", "last_name", "date_of_birth", "created_at").
		From("public.children").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list children query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list children failed: %w", err)
	}
	defer rows.Close()

	var children []*Child
	for rows.Next() {
		var ch Child
		if err := rows.Scan(
			&ch.ID, &ch.UserID, &ch.FirstName, &ch.LastName, &ch.DateOfBirth, &ch.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan child failed: %w", err)
		}
		children = append(children, &ch)
	}

	return children, nil
}

func (r *pgxRepository) Update(ctx context.Context, ch *Child) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.children").
		Set("first_name", ch.FirstName).
		Set("last_name", ch.LastName).
		Set("date_of_birth", ch.DateOfBirth).
		Where(squirrel.Eq{"id": ch.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update child query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update child failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.children").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete child query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete child failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
