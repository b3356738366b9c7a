package clubimage

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, img *ClubImage) error
	GetByID(ctx context.Context, id string) (*ClubImage, error)
	ListByClub(ctx context.Context, clubID string) ([]*ClubImage, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var imageColumns = []string{
	"id", "club_id", "filename", "storage_path", "thumbnail_path",
	"content_type", "size", "sort_order", "created_at",
}

func scanImage(row pgx.Row) (*ClubImage, error) {
	var img ClubImage
	err := row.Scan(
		&img.ID, &img.ClubID, &img.Filename, &img.StoragePath, &img.ThumbnailPath,
		&img.ContentType, &img.Size, &img.SortOrder, &img.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *pgxRepository) Create(ctx context.Context, img *ClubImage) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.club_images").
		Columns("id", "club_id", "filename", "storage_path", "thumbnail_path",
			"content_type", "size", "sort_order").
		Values(img.ID, img.ClubID, img.Filename, img.StoragePath, img.ThumbnailPath,
			img.ContentType, img.Size, img.SortOrder).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create club image query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&img.CreatedAt); err != nil {
		return fmt.Errorf("create club image failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*ClubImage, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(imageColumns...).
		From("public.club_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get club image query failed: %w", err)
	}

	img, err := scanImage(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get club image failed: %w", err)
	}
	return img, nil
}

func (r *pgxRepository) ListByClub(ctx context.Context, clubID string) ([]*ClubImage, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(imageColumns...).
		From("public.club_images").
		Where(squirrel.Eq{"club_id": clubID}).
		OrderBy("sort_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list club images query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list club images failed: %w", err)
	}
	defer rows.Close()

	var images []*ClubImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan club image failed: %w", err)
		}
		images = append(images, img)
	}

	return images, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.club_images").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete club image query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete club image failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
