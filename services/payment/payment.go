package payment

import (
	"context"
	"fmt"

	"roamvan/config"
	"roamvan/models"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentIntent is the subset of the Stripe intent the frontend needs.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// Service creates payment intents for bookings.
type Service interface {
	CreateIntent(ctx context.Context, booking models.Booking, customer models.Customer) (*PaymentIntent, error)
}

// StripePaymentService is the production implementation. The global stripe
// key is set once at startup from config.
type StripePaymentService struct {
	logger *zap.Logger
}

// NewStripePaymentService returns a Stripe-backed payment service.
func NewStripePaymentService(logger *zap.Logger) *StripePaymentService {
	return &StripePaymentService{logger: logger}
}

// CreateIntent creates a Stripe payment intent for the booking's total
// price, in euro cents, with the booking ID carried in the metadata.
func (s *StripePaymentService) CreateIntent(ctx context.Context, booking models.Booking, customer models.Customer) (*PaymentIntent, error) {
	total, err := decimal.NewFromString(booking.TotalPrice)
	if err != nil {
		return nil, fmt.Errorf("booking %s has invalid total price %q: %w", booking.ID, booking.TotalPrice, err)
	}
	amountCents := total.Mul(decimal.NewFromInt(100)).IntPart()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(string(stripe.CurrencyEUR)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		ReceiptEmail: stripe.String(customer.Email),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", booking.ID)
	params.AddMetadata("environment", config.GetEnv())

	intent, err := paymentintent.New(params)
	if err != nil {
		s.logger.Error("failed to create payment intent",
			zap.String("bookingID", booking.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.logger.Info("created payment intent",
		zap.String("intentID", intent.ID), zap.String("bookingID", booking.ID))

	return &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       amountCents,
		Currency:     string(stripe.CurrencyEUR),
	}, nil
}
