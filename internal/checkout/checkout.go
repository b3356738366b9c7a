package checkout

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("checkout session not found")

// Request describes a payment to collect for one booking.
type Request struct {
	BookingID     string
	Label         string // shown on the payment page, e.g. the club name
	Description   string
	Amount        int64 // minor currency units
	CustomerEmail string
}

// Session is a created payment session the client is redirected to.
type Session struct {
	ID  string
	URL string
}

// Provider creates and inspects payment sessions. The booking service
// treats payment as an external collaborator behind this interface.
type Provider interface {
	CreateSession(ctx context.Context, req Request) (*Session, error)

	// SessionPaid reports whether the session has completed payment.
	SessionPaid(ctx context.Context, sessionID string) (bool, error)
}
