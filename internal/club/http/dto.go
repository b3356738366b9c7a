package http

import (
	"time"

	"github.com/brightdays/holiday-club-backend/internal/club"
	"github.com/brightdays/holiday-club-backend/internal/pkg/request"
)

const dateLayout = "2006-01-02"

// ListClubsRequest defines query parameters for listing clubs.
type ListClubsRequest struct {
	request.ListParams
	Upcoming bool   `form:"upcoming"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=name start_date created_at"`
}

// Validate performs custom validation for ListClubsRequest.
func (r *ListClubsRequest) Validate() error {
	return nil
}

type ClubResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Venue       string              `json:"venue"`
	StartDate   string              `json:"start_date"`
	EndDate     string              `json:"end_date"`
	Morning     *club.SessionWindow `json:"morning"`
	Afternoon   *club.SessionWindow `json:"afternoon"`
	MinAge      int                 `json:"min_age"`
	MaxAge      int                 `json:"max_age"`
	IsPublished bool                `json:"is_published"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ClubTag is a brief representation of a club.
type ClubTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewClubResponse(c *club.Club) ClubResponse {
	return ClubResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Venue:       c.Venue,
		StartDate:   c.StartDate.Format(dateLayout),
		EndDate:     c.EndDate.Format(dateLayout),
		Morning:     c.Morning,
		Afternoon:   c.Afternoon,
		MinAge:      c.MinAge,
		MaxAge:      c.MaxAge,
		IsPublished: c.IsPublished,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type CreateClubRequest struct {
	Name        string              `json:"name" binding:"required,min=1,max=200"`
	Description string              `json:"description"`
	Venue       string              `json:"venue"`
	StartDate   string              `json:"start_date" binding:"required"`
	EndDate     string              `json:"end_date" binding:"required"`
	Morning     *club.SessionWindow `json:"morning"`
	Afternoon   *club.SessionWindow `json:"afternoon"`
	MinAge      int                 `json:"min_age" binding:"min=0,max=18"`
	MaxAge      int                 `json:"max_age" binding:"min=0,max=18"`
	IsPublished bool                `json:"is_published"`
}

// Validate performs custom validation for CreateClubRequest.
func (r *CreateClubRequest) Validate() error {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return club.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return club.ErrInvalidDateRange
	}
	if end.Before(start) {
		return club.ErrInvalidDateRange
	}
	return nil
}

type UpdateClubRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string             `json:"description"`
	Venue       *string             `json:"venue"`
	Morning     *club.SessionWindow `json:"morning"`
	Afternoon   *club.SessionWindow `json:"afternoon"`
	MinAge      *int                `json:"min_age" binding:"omitempty,min=0,max=18"`
	MaxAge      *int                `json:"max_age" binding:"omitempty,min=0,max=18"`
	IsPublished *bool               `json:"is_published"`
}

// Validate performs custom validation for UpdateClubRequest.
func (r *UpdateClubRequest) Validate() error {
	return nil
}
