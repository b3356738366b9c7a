package clubimage

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("club image not found")
	ErrClubNotFound = errors.New("club not found")
	ErrNotAnImage   = errors.New("uploaded file is not an image")
	ErrNoThumbnail  = errors.New("image has no thumbnail")
)

// ClubImage is a photo attached to a club's listing page.
type ClubImage struct {
	ID            string    `json:"id"`
	ClubID        string    `json:"club_id"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // Internal path
	ThumbnailPath *string   `json:"-"` // Internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
}

// ImageURL returns the public URL for accessing an image by its ID.
func ImageURL(id string) string {
	return "/club-images/" + id
}

// ThumbnailURL returns the public URL for accessing an image's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/club-images/" + id + "/thumbnail"
}
