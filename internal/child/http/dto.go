package http

import (
	"time"

	"github.com/brightdays/holiday-club-backend/internal/child"
)

const dateLayout = "2006-01-02"

type ChildResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth string    `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewChildResponse(ch *child.Child) ChildResponse {
	return ChildResponse{
		ID:          ch.ID,
		FirstName:   ch.FirstName,
		LastName:    ch.LastName,
		DateOfBirth: ch.DateOfBirth.Format(dateLayout),
		CreatedAt:   ch.CreatedAt,
	}
}

type CreateChildRequest struct {
	FirstName   string `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string `json:"last_name" binding:"max=100"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
}

// Validate performs custom validation for CreateChildRequest.
func (r *CreateChildRequest) Validate() error {
	if _, err := time.Parse(dateLayout, r.DateOfBirth); err != nil {
		return child.ErrInvalidBirthDate
	}
	return nil
}

type UpdateChildRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName    *string `json:"last_name" binding:"omitempty,max=100"`
	DateOfBirth *string `json:"date_of_birth"`
}

// Validate performs custom validation for UpdateChildRequest.
func (r *UpdateChildRequest) Validate() error {
	if r.DateOfBirth != nil {
		if _, err := time.Parse(dateLayout, *r.DateOfBirth); err != nil {
			return child.ErrInvalidBirthDate
		}
	}
	return nil
}
