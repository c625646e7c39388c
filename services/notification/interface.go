package notification

import (
	"context"

	"roamvan/models"
)

// EmailService defines methods for sending customer email.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking, customer models.Customer) error
}
