package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// StripeProvider creates Stripe Checkout sessions. The secret key is
// set process-wide on the stripe package at startup.
type StripeProvider struct {
	currency   string
	successURL string
	cancelURL  string
	logger     *zap.Logger
}

func NewStripeProvider(currency, successURL, cancelURL string, logger *zap.Logger) *StripeProvider {
	return &StripeProvider{
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
		logger:     logger,
	}
}

func (p *StripeProvider) CreateSession(ctx context.Context, req Request) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(p.currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.Label),
						Description: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(p.successURL),
		CancelURL:     stripe.String(p.cancelURL),
		CustomerEmail: stripe.String(req.CustomerEmail),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", req.BookingID)

	s, err := session.New(params)
	if err != nil {
		p.logger.Error("stripe checkout session creation failed",
			zap.String("booking_id", req.BookingID),
			zap.Error(err))
		return nil, fmt.Errorf("create checkout session failed: %w", err)
	}

	p.logger.Info("stripe checkout session created",
		zap.String("booking_id", req.BookingID),
		zap.String("session_id", s.ID),
		zap.Int64("amount", req.Amount))

	return &Session{ID: s.ID, URL: s.URL}, nil
}

func (p *StripeProvider) SessionPaid(ctx context.Context, sessionID string) (bool, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := session.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == 404 {
			return false, ErrSessionNotFound
		}
		return false, fmt.Errorf("get checkout session failed: %w", err)
	}

	return s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid, nil
}
