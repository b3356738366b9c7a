package club

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("club not found")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrNoSessionWindow  = errors.New("at least one of morning or afternoon window must be set")
	ErrInvalidWindow    = errors.New("session window start must be before end")
	ErrInvalidAgeRange  = errors.New("min age must not be greater than max age")
)

// SessionWindow is a time-of-day range, e.g. 09:00-12:30.
// Times are "HH:MM" strings; the core never does locale formatting.
type SessionWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Club is a time-boxed holiday club offering. StartDate and EndDate form an
// inclusive calendar range; at least one session window must be set.
type Club struct {
	ID          string
	Name        string
	Description string
	Venue       string
	StartDate   time.Time // date only, UTC midnight
	EndDate     time.Time // date only, UTC midnight, inclusive
	Morning     *SessionWindow
	Afternoon   *SessionWindow
	MinAge      int
	MaxAge      int
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing clubs.
type Filter struct {
	PublishedOnly bool
	FromDate      *time.Time // clubs ending on or after this date
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}
