package booking

import (
	"context"
	"fmt"

	"roamvan/models"
	"roamvan/services/pricing"
	"roamvan/utils"

	"go.uber.org/zap"
)

// earliestPickupHour is the earliest allowed pickup time of day.
const earliestPickupHour = 5

// CreateBooking runs the full booking flow: request validation, availability
// check, minimum-stay validation, pricing, then persistence of the customer
// and the pending booking with its price snapshot. The confirmation email is
// enqueued for asynchronous delivery; a queue failure never fails the booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingResponse, error) {
	logger := utils.GetLogger()

	pickup, err := pricing.ParseTimeOfDay(req.PickupTime)
	if err != nil {
		return nil, fmt.Errorf("invalid pickup time %q: %w", req.PickupTime, err)
	}
	if _, err := pricing.ParseTimeOfDay(req.ReturnTime); err != nil {
		return nil, fmt.Errorf("invalid return time %q: %w", req.ReturnTime, err)
	}
	if pickup.Hour() < earliestPickupHour {
		return nil, ErrPickupTooEarly
	}
	if !models.ValidDeliveryDistance(req.DeliveryDistance) {
		return nil, fmt.Errorf("delivery distance must be one of %v km", models.DeliveryDistances)
	}

	availability, err := s.CheckAvailability(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		return nil, &DateConflictError{Dates: availability.ConflictingDates}
	}

	breakdown, err := s.Engine.ComputeQuote(ctx, models.QuoteRequest{
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		PickupTime:       req.PickupTime,
		ReturnTime:       req.ReturnTime,
		Parking:          req.Parking,
		DeliveryDistance: req.DeliveryDistance,
	})
	if err != nil {
		return nil, err
	}

	customer := models.Customer{
		FirstName:  req.Customer.FirstName,
		LastName:   req.Customer.LastName,
		Email:      req.Customer.Email,
		Phone:      req.Customer.Phone,
		Street:     req.Customer.Street,
		City:       req.Customer.City,
		PostalCode: req.Customer.PostalCode,
		Country:    req.Customer.Country,
	}
	customerID, err := s.Customers.Create(ctx, customer)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	customer.ID = customerID

	b := models.Booking{
		StartDate:             req.StartDate,
		EndDate:               req.EndDate,
		PickupTime:            req.PickupTime,
		ReturnTime:            req.ReturnTime,
		Status:                models.StatusPending,
		CustomerID:            customerID,
		NightlyRatesBreakdown: breakdown.DailyBreakdown,
		NightlyRatesTotal:     breakdown.NightlyRatesTotal,
		ServiceFee:            breakdown.ServiceFee,
		EarlyPickupFee:        breakdown.EarlyPickupFee,
		LateReturnFee:         breakdown.LateReturnFee,
		ParkingFee:            breakdown.ParkingFee,
		DeliveryFee:           breakdown.DeliveryFee,
		TotalPrice:            breakdown.TotalPrice,
		Parking:               req.Parking,
		DeliveryDistance:      req.DeliveryDistance,
	}
	bookingID, err := s.Bookings.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	created, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil || created == nil {
		return nil, fmt.Errorf("failed to load created booking %s: %w", bookingID, err)
	}

	if s.Mail != nil {
		if err := s.Mail.EnqueueBookingConfirmation(ctx, bookingID); err != nil {
			logger.Error("failed to enqueue confirmation email",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}

	return &models.BookingResponse{Booking: *created, Customer: customer}, nil
}

// GetBooking returns a booking with its customer record.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.BookingResponse, error) {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	resp := &models.BookingResponse{Booking: *b}
	customer, err := s.Customers.GetByID(ctx, b.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer %s: %w", b.CustomerID, err)
	}
	if customer != nil {
		resp.Customer = *customer
	}
	return resp, nil
}

// ListBookings returns bookings filtered by the optional date window and status.
func (s *DefaultBookingService) ListBookings(ctx context.Context, startDate, endDate, status string) ([]models.Booking, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, fmt.Errorf("unknown booking status %q", status)
	}
	return s.Bookings.List(ctx, startDate, endDate, status)
}

// AttachDriversLicense records the uploaded license on the booking and
// mirrors the reference onto the customer record.
func (s *DefaultBookingService) AttachDriversLicense(ctx context.Context, id, publicID, filename string) error {
	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrBookingNotFound
	}

	if err := s.Bookings.SetDriversLicense(ctx, id, publicID, filename); err != nil {
		return fmt.Errorf("failed to record license on booking %s: %w", id, err)
	}
	if err := s.Customers.SetDriversLicense(ctx, b.CustomerID, publicID); err != nil {
		// The booking carries the authoritative reference.
		utils.GetLogger().Warn("failed to mirror license onto customer",
			zap.String("customerID", b.CustomerID), zap.Error(err))
	}
	return nil
}

// UpdateStatus applies a status transition after checking it is allowed.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("unknown booking status %q", status)
	}

	b, err := s.Bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	if !models.CanTransitionTo(b.Status, status) {
		return nil, &StatusTransitionError{From: b.Status, To: status}
	}

	if err := s.Bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.Bookings.GetByID(ctx, id)
}
