package notification

import (
	"context"
	"fmt"
	"strings"

	"roamvan/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// SendGridEmailService is the production EmailService.
type SendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

// NewSendGridEmailService returns a SendGrid-backed email service.
func NewSendGridEmailService(apiKey, fromEmail, fromName string, logger *zap.Logger) *SendGridEmailService {
	return &SendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger,
	}
}

// SendBookingConfirmation sends the booking confirmation with the full fee
// breakdown to the customer.
func (s *SendGridEmailService) SendBookingConfirmation(ctx context.Context, booking models.Booking, customer models.Customer) error {
	subject := "Booking Confirmation - Roamvan Camper Rental"
	body := buildConfirmationBody(booking, customer)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(customer.FullName(), customer.Email)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	s.logger.Info("sent booking confirmation",
		zap.String("bookingID", booking.ID), zap.String("email", customer.Email))
	return nil
}

func buildConfirmationBody(booking models.Booking, customer models.Customer) string {
	fees := []string{
		fmt.Sprintf("- Nightly Rates: EUR %s", booking.NightlyRatesTotal),
		fmt.Sprintf("- Service Fee: EUR %s", booking.ServiceFee),
	}
	if booking.EarlyPickupFee != "" {
		fees = append(fees, fmt.Sprintf("- Early Pickup Fee: EUR %s", booking.EarlyPickupFee))
	}
	if booking.LateReturnFee != "" {
		fees = append(fees, fmt.Sprintf("- Late Return Fee: EUR %s", booking.LateReturnFee))
	}
	if booking.ParkingFee != "" {
		fees = append(fees, fmt.Sprintf("- Parking Fee: EUR %s", booking.ParkingFee))
	}
	if booking.DeliveryFee != "" {
		fees = append(fees, fmt.Sprintf("- Delivery Fee: EUR %s", booking.DeliveryFee))
	}

	return fmt.Sprintf(`Dear %s,

Thank you for booking with Roamvan Camper Rental. Here are your booking details:

Booking Reference: %s
Status: %s

Dates:
- Pickup: %s at %s
- Return: %s at %s

Fees:
%s

Total Price: EUR %s

Next Steps:
1. Please upload a copy of your driver's license through our website
2. Arrive at the pickup location at your scheduled time
3. Have your driver's license ready for verification

If you need to make any changes to your booking or have questions, please contact us.

Best regards,
Roamvan Camper Rental Team
`,
		customer.FullName(),
		booking.ID,
		booking.Status,
		booking.StartDate, booking.PickupTime,
		booking.EndDate, booking.ReturnTime,
		strings.Join(fees, "\n"),
		booking.TotalPrice,
	)
}
