package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightdays/holiday-club-backend/internal/auth"
	"github.com/brightdays/holiday-club-backend/internal/child"
	"github.com/brightdays/holiday-club-backend/internal/pkg/request"
)

type Handler struct {
	service child.Service
}

func NewHandler(service child.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	userID := auth.GetUserID(c)

	children, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list children"})
		return
	}

	items := make([]ChildResponse, len(children))
	for i, ch := range children {
		items[i] = NewChildResponse(ch)
	}

	c.JSON(http.StatusOK, gin.H{"children": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateChildRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, _ := time.Parse(dateLayout, body.DateOfBirth)

	ch, err := h.service.Create(c.Request.Context(), child.CreateRequest{
		UserID:      auth.GetUserID(c),
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		DateOfBirth: dob,
	})
	if err != nil {
		switch {
		case errors.Is(err, child.ErrNameRequired), errors.Is(err, child.ErrInvalidBirthDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create child"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewChildResponse(ch))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateChildRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := child.UpdateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
	if body.DateOfBirth != nil {
		dob, _ := time.Parse(dateLayout, *body.DateOfBirth)
		req.DateOfBirth = &dob
	}

	ch, err := h.service.Update(c.Request.Context(), uri.ID, auth.GetUserID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewChildResponse(ch))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, child.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "child not found"})
	case errors.Is(err, child.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, child.ErrNameRequired), errors.Is(err, child.ErrInvalidBirthDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process child"})
	}
}
