package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightdays/holiday-club-backend/internal/club"
	"github.com/brightdays/holiday-club-backend/internal/pkg/request"
	"github.com/brightdays/holiday-club-backend/internal/pkg/response"
)

type Handler struct {
	service club.Service
}

func NewHandler(service club.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListClubsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := club.Filter{
		PublishedOnly: true,
		Page:          req.Page,
		PageSize:      req.PageSize,
		SortBy:        req.SortBy,
		SortOrder:     strings.ToUpper(req.SortOrder),
	}
	if req.Upcoming {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		filter.FromDate = &today
	}

	clubs, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ClubResponse, len(clubs))
	for i, cl := range clubs {
		items[i] = NewClubResponse(cl)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	cl, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		if errors.Is(err, club.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewClubResponse(cl))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateClubRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start, _ := time.Parse(dateLayout, body.StartDate)
	end, _ := time.Parse(dateLayout, body.EndDate)

	cl, err := h.service.Create(c.Request.Context(), club.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
		Venue:       body.Venue,
		StartDate:   start,
		EndDate:     end,
		Morning:     body.Morning,
		Afternoon:   body.Afternoon,
		MinAge:      body.MinAge,
		MaxAge:      body.MaxAge,
		IsPublished: body.IsPublished,
	})
	if err != nil {
		switch {
		case errors.Is(err, club.ErrNameRequired),
			errors.Is(err, club.ErrInvalidDateRange),
			errors.Is(err, club.ErrNoSessionWindow),
			errors.Is(err, club.ErrInvalidWindow),
			errors.Is(err, club.ErrInvalidAgeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create club"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewClubResponse(cl))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateClubRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cl, err := h.service.Update(c.Request.Context(), uri.ID, club.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		Venue:       body.Venue,
		Morning:     body.Morning,
		Afternoon:   body.Afternoon,
		MinAge:      body.MinAge,
		MaxAge:      body.MaxAge,
		IsPublished: body.IsPublished,
	})
	if err != nil {
		switch {
		case errors.Is(err, club.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
		case errors.Is(err, club.ErrNameRequired),
			errors.Is(err, club.ErrNoSessionWindow),
			errors.Is(err, club.ErrInvalidWindow),
			errors.Is(err, club.ErrInvalidAgeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update club"})
		}
		return
	}

	c.JSON(http.StatusOK, NewClubResponse(cl))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		if errors.Is(err, club.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "club not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete club"})
		return
	}

	c.Status(http.StatusNoContent)
}
