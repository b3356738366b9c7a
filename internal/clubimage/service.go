package clubimage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/brightdays/holiday-club-backend/internal/club"
	"github.com/brightdays/holiday-club-backend/internal/pkg/storage"
)

type Service interface {
	Upload(ctx context.Context, clubID string, header *multipart.FileHeader) (*ClubImage, error)
	ListByClub(ctx context.Context, clubID string) ([]*ClubImage, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *ClubImage, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *ClubImage, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	clubs   club.Service
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, clubs club.Service, store storage.Storage) Service {
	return &service{
		repo:    repo,
		clubs:   clubs,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, clubID string, header *multipart.FileHeader) (*ClubImage, error) {
	if _, err := s.clubs.GetByID(ctx, clubID); err != nil {
		return nil, ErrClubNotFound
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the whole image so it can be read twice: once for the
	// original, once for the thumbnail.
	fileBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read file content: %w", err)
	}

	imageID := uuid.New().String()
	ext := strings.ToLower(filepath.Ext(header.Filename))

	// Sharding path: clubs/ab/UUID.ext
	shard := imageID[:2]
	storagePath := fmt.Sprintf("clubs/%s/%s%s", shard, imageID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("failed to save image to storage: %w", err)
	}

	var thumbnailPath *string
	thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), 400, 300)
	if err == nil {
		tPath := fmt.Sprintf("clubs/%s/%s_thumb.jpg", shard, imageID)
		if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
			thumbnailPath = &tPath
		}
	}

	img := &ClubImage{
		ID:            imageID,
		ClubID:        clubID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          header.Size,
	}

	if err := s.repo.Create(ctx, img); err != nil {
		// Cleanup storage if db fails
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return img, nil
}

func (s *service) ListByClub(ctx context.Context, clubID string) ([]*ClubImage, error) {
	return s.repo.ListByClub(ctx, clubID)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *ClubImage, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.storage.Get(ctx, img.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get image from storage: %w", err)
	}
	return rc, img, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *ClubImage, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if img.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	rc, err := s.storage.Get(ctx, *img.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get thumbnail from storage: %w", err)
	}
	return rc, img, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best-effort storage cleanup; the record goes regardless.
	_ = s.storage.Delete(ctx, img.StoragePath)
	if img.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *img.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
