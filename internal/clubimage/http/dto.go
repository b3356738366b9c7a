package http

import (
	"time"

	"github.com/brightdays/holiday-club-backend/internal/clubimage"
)

type ClubImageResponse struct {
	ID           string    `json:"id"`
	ClubID       string    `json:"club_id"`
	Filename     string    `json:"filename"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewClubImageResponse(img *clubimage.ClubImage) ClubImageResponse {
	resp := ClubImageResponse{
		ID:        img.ID,
		ClubID:    img.ClubID,
		Filename:  img.Filename,
		URL:       clubimage.ImageURL(img.ID),
		SortOrder: img.SortOrder,
		CreatedAt: img.CreatedAt,
	}
	if img.ThumbnailPath != nil {
		u := clubimage.ThumbnailURL(img.ID)
		resp.ThumbnailURL = &u
	}
	return resp
}
