package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements the Storage interface backed by Cloudinary.
// Paths are mapped to Cloudinary public IDs with the extension stripped,
// since Cloudinary manages the delivery format itself.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates a CloudinaryStorage from a CLOUDINARY_URL style URL
// (cloudinary://<api_key>:<api_secret>@<cloud_name>).
func NewCloudinaryStorage(cloudinaryURL string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// Save uploads content under the path-derived public ID.
func (s *CloudinaryStorage) Save(ctx context.Context, filePath string, content io.Reader) error {
	_, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		PublicID: publicID(filePath),
	})
	if err != nil {
		return fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return nil
}

// Get downloads the asset content via its delivery URL.
func (s *CloudinaryStorage) Get(ctx context.Context, filePath string) (io.ReadCloser, error) {
	img, err := s.cld.Image(publicID(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to build cloudinary asset: %w", err)
	}

	url, err := img.String()
	if err != nil {
		return nil, fmt.Errorf("failed to build cloudinary url: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build cloudinary request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cloudinary asset: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("cloudinary returned status %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// Delete destroys the asset behind the path.
func (s *CloudinaryStorage) Delete(ctx context.Context, filePath string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID(filePath),
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	return nil
}

func publicID(filePath string) string {
	return strings.TrimSuffix(filePath, path.Ext(filePath))
}
