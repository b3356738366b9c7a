package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/brightdays/holiday-club-backend/internal/auth"
	"github.com/brightdays/holiday-club-backend/internal/booking"
	"github.com/brightdays/holiday-club-backend/internal/bookingoption"
	"github.com/brightdays/holiday-club-backend/internal/child"
	"github.com/brightdays/holiday-club-backend/internal/club"
	"github.com/brightdays/holiday-club-backend/internal/pkg/request"
	"github.com/brightdays/holiday-club-backend/internal/promocode"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Availability renders one month of a club's booking calendar.
func (h *Handler) Availability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var query AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}
	if err := query.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	month, err := h.service.MonthAvailability(c.Request.Context(), booking.MonthAvailabilityRequest{
		ClubID:          uri.ID,
		Year:            query.Year,
		Month:           time.Month(query.Month),
		BookingOptionID: query.OptionID,
		SelectedDates:   query.Selected,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCalendarMonthResponse(month))
}

// ExtensionAvailability renders the calendar for adding days to an
// existing booking: booked dates show but cannot be selected.
func (h *Handler) ExtensionAvailability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var query AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}
	if err := query.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := auth.GetUserID(c)

	b, err := h.service.GetByID(c.Request.Context(), uri.ID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	month, err := h.service.MonthAvailability(c.Request.Context(), booking.MonthAvailabilityRequest{
		ClubID:          b.ClubID,
		Year:            query.Year,
		Month:           time.Month(query.Month),
		BookingOptionID: b.BookingOptionID,
		SelectedDates:   query.Selected,
		BookingID:       b.ID,
		UserID:          userID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewCalendarMonthResponse(month))
}

func (h *Handler) ExtensionPool(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	pool, err := h.service.GetExtensionPool(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExtensionPoolResponse{Dates: pool.Dates, Exhausted: pool.Exhausted})
}

func (h *Handler) Quote(c *gin.Context) {
	var body QuoteRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), booking.QuoteRequest{
		ClubID:          body.ClubID,
		BookingOptionID: body.BookingOptionID,
		Dates:           body.Dates,
		ChildCount:      body.ChildCount,
		PromoCode:       body.PromoCode,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewQuoteResponse(quote))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:          auth.GetUserID(c),
		ClubID:          body.ClubID,
		BookingOptionID: body.BookingOptionID,
		Dates:           body.Dates,
		ChildIDs:        body.ChildIDs,
		PromoCode:       body.PromoCode,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		Booking:     NewBookingResponse(result.Booking),
		CheckoutURL: result.CheckoutURL,
	})
}

func (h *Handler) Extend(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body ExtendBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	if err := body.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Extend(c.Request.Context(), booking.ExtendRequest{
		BookingID: uri.ID,
		UserID:    auth.GetUserID(c),
		Dates:     body.Dates,
		PromoCode: body.PromoCode,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		Booking:     NewBookingResponse(result.Booking),
		CheckoutURL: result.CheckoutURL,
	})
}

func (h *Handler) Confirm(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	b, err := h.service.Confirm(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.ListByUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound),
		errors.Is(err, club.ErrNotFound),
		errors.Is(err, bookingoption.ErrNotFound),
		errors.Is(err, child.ErrNotFound),
		errors.Is(err, promocode.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, booking.ErrPermissionDenied),
		errors.Is(err, child.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})

	case errors.Is(err, booking.ErrEmptySelection),
		errors.Is(err, booking.ErrIncompleteSelection),
		errors.Is(err, booking.ErrSingleDateRequired),
		errors.Is(err, booking.ErrDateOutOfRange),
		errors.Is(err, booking.ErrOptionMismatch),
		errors.Is(err, booking.ErrNoChildren),
		errors.Is(err, booking.ErrChildAgeOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, booking.ErrDateUnavailable),
		errors.Is(err, booking.ErrExhaustedAvailability),
		errors.Is(err, booking.ErrNotPending),
		errors.Is(err, booking.ErrNotExtendable),
		errors.Is(err, booking.ErrPaymentIncomplete),
		errors.Is(err, promocode.ErrInactive),
		errors.Is(err, promocode.ErrExpired),
		errors.Is(err, promocode.ErrWrongClub):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process booking"})
	}
}
