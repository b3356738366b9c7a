package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightdays/holiday-club-backend/internal/clubday"
	"github.com/brightdays/holiday-club-backend/internal/pkg/request"
)

type Handler struct {
	service clubday.Service
}

func NewHandler(service clubday.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListByClub(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	days, err := h.service.ListByClub(c.Request.Context(), uri.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": newDayResponses(days)})
}

func (h *Handler) Upsert(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpsertDaysRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputs := make([]clubday.DayInput, len(body.Days))
	for i, d := range body.Days {
		date, _ := time.Parse(dateLayout, d.Date)
		inputs[i] = clubday.DayInput{
			Date:              date,
			MorningCapacity:   d.MorningCapacity,
			AfternoonCapacity: d.AfternoonCapacity,
			IsAvailable:       d.IsAvailable,
		}
	}

	days, err := h.service.Upsert(c.Request.Context(), uri.ID, inputs)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": newDayResponses(days)})
}

func (h *Handler) Generate(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body GenerateDaysRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	days, err := h.service.GenerateWeekdays(c.Request.Context(), uri.ID, body.MorningCapacity, body.AfternoonCapacity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": newDayResponses(days)})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, clubday.ErrClubNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, clubday.ErrDateOutOfRange), errors.Is(err, clubday.ErrNegativeCapacity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process club days"})
	}
}

func newDayResponses(days []*clubday.ClubDay) []ClubDayResponse {
	items := make([]ClubDayResponse, len(days))
	for i, d := range days {
		items[i] = NewClubDayResponse(d)
	}
	return items
}
