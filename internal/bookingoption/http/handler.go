package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
	"github.com/brightdays/holiday-club-backend/internal/pkg/request"
)

type Handler struct {
	service bookingoption.Service
}

func NewHandler(service bookingoption.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListByClub(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	options, err := h.service.ListByClub(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list booking options"})
		return
	}

	items := make([]OptionResponse, len(options))
	for i, o := range options {
		items[i] = NewOptionResponse(o)
	}

	c.JSON(http.StatusOK, gin.H{"options": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateOptionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	o, err := h.service.Create(c.Request.Context(), bookingoption.CreateRequest{
		ClubID:        body.ClubID,
		Name:          body.Name,
		OptionType:    bookingoption.OptionType(body.OptionType),
		TimeSlot:      bookingoption.TimeSlot(body.TimeSlot),
		PricePerChild: body.PricePerChild,
		SortOrder:     body.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingoption.ErrClubNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, bookingoption.ErrNameRequired),
			errors.Is(err, bookingoption.ErrInvalidType),
			errors.Is(err, bookingoption.ErrInvalidTimeSlot),
			errors.Is(err, bookingoption.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking option"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewOptionResponse(o))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateOptionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	o, err := h.service.Update(c.Request.Context(), uri.ID, bookingoption.UpdateRequest{
		Name:          body.Name,
		PricePerChild: body.PricePerChild,
		SortOrder:     body.SortOrder,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingoption.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking option not found"})
		case errors.Is(err, bookingoption.ErrNameRequired), errors.Is(err, bookingoption.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking option"})
		}
		return
	}

	c.JSON(http.StatusOK, NewOptionResponse(o))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		if errors.Is(err, bookingoption.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking option not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking option"})
		return
	}

	c.Status(http.StatusNoContent)
}
