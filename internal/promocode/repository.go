package promocode

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, pc *PromoCode) error
	GetByID(ctx context.Context, id string) (*PromoCode, error)
	GetByCode(ctx context.Context, code string) (*PromoCode, error)
	List(ctx context.Context) ([]*PromoCode, error)
	Update(ctx context.Context, pc *PromoCode) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var promoCodeColumns = []string{
	"id", "code", "discount_percent", "club_id",
	"is_active", "expires_at", "created_at", "updated_at",
}

func scanPromoCode(row pgx.Row) (*PromoCode, error) {
	var pc PromoCode
	err := row.Scan(
		&pc.ID, &pc.Code, &pc.DiscountPercent, &pc.ClubID,
		&pc.IsActive, &pc.ExpiresAt, &pc.CreatedAt, &pc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

func (r *pgxRepository) Create(ctx context.Context, pc *PromoCode) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.promo_codes").
		Columns("code", "discount_percent", "club_id", "is_active", "expires_at").
		Values(pc.Code, pc.DiscountPercent, pc.ClubID, pc.IsActive, pc.ExpiresAt).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create promo code query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&pc.ID, &pc.CreatedAt, &pc.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrCodeTaken
		}
		return fmt.Errorf("create promo code failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*PromoCode, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(promoCodeColumns...).
		From("public.promo_codes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get promo code query failed: %w", err)
	}

	pc, err := scanPromoCode(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get promo code failed: %w", err)
	}
	return pc, nil
}

func (r *pgxRepository) GetByCode(ctx context.Context, code string) (*PromoCode, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(promoCodeColumns...).
		From("public.promo_codes").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get promo code by code query failed: %w", err)
	}

	pc, err := scanPromoCode(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get promo code by code failed: %w", err)
	}
	return pc, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*PromoCode, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(promoCodeColumns...).
		From("public.promo_codes").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list promo codes query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list promo codes failed: %w", err)
	}
	defer rows.Close()

	var codes []*PromoCode
	for rows.Next() {
		pc, err := scanPromoCode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promo code failed: %w", err)
		}
		codes = append(codes, pc)
	}

	return codes, nil
}

func (r *pgxRepository) Update(ctx context.Context, pc *PromoCode) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.promo_codes").
		Set("discount_percent", pc.DiscountPercent).
		Set("is_active", pc.IsActive).
		Set("expires_at", pc.ExpiresAt).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": pc.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update promo code query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update promo code failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.promo_codes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete promo code query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete promo code failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
