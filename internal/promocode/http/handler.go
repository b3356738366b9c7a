package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brightdays/holiday-club-backend/internal/pkg/request"
	"github.com/brightdays/holiday-club-backend/internal/promocode"
)

type Handler struct {
	service promocode.Service
}

func NewHandler(service promocode.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	codes, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list promo codes"})
		return
	}

	items := make([]PromoCodeResponse, len(codes))
	for i, pc := range codes {
		items[i] = NewPromoCodeResponse(pc)
	}

	c.JSON(http.StatusOK, gin.H{"promo_codes": items})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePromoCodeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	pc, err := h.service.Create(c.Request.Context(), promocode.CreateRequest{
		Code:            body.Code,
		DiscountPercent: body.DiscountPercent,
		ClubID:          body.ClubID,
		IsActive:        body.IsActive,
		ExpiresAt:       body.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, promocode.ErrCodeTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "code is already in use"})
		case errors.Is(err, promocode.ErrCodeRequired), errors.Is(err, promocode.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create promo code"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewPromoCodeResponse(pc))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdatePromoCodeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	pc, err := h.service.Update(c.Request.Context(), uri.ID, promocode.UpdateRequest{
		DiscountPercent: body.DiscountPercent,
		IsActive:        body.IsActive,
		ExpiresAt:       body.ExpiresAt,
		ClearExpiry:     body.ClearExpiry,
	})
	if err != nil {
		switch {
		case errors.Is(err, promocode.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "promo code not found"})
		case errors.Is(err, promocode.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update promo code"})
		}
		return
	}

	c.JSON(http.StatusOK, NewPromoCodeResponse(pc))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		switch {
		case errors.Is(err, promocode.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "promo code not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete promo code"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Resolve(c *gin.Context) {
	var body ResolvePromoCodeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	pc, err := h.service.Resolve(c.Request.Context(), body.Code, body.ClubID)
	if err != nil {
		switch {
		case errors.Is(err, promocode.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "promo code not found"})
		case errors.Is(err, promocode.ErrInactive),
			errors.Is(err, promocode.ErrExpired),
			errors.Is(err, promocode.ErrWrongClub):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve promo code"})
		}
		return
	}

	c.JSON(http.StatusOK, ResolvePromoCodeResponse{
		Code:            pc.Code,
		DiscountPercent: pc.DiscountPercent,
	})
}
