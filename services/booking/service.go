package booking

import (
	"context"

	blockedRepo "roamvan/database/repository/blocked"
	bookingRepo "roamvan/database/repository/booking"
	customerRepo "roamvan/database/repository/customer"
	"roamvan/models"
	"roamvan/services/pricing"
)

// MailQueue enqueues outbound customer email for asynchronous delivery.
type MailQueue interface {
	EnqueueBookingConfirmation(ctx context.Context, bookingID string) error
}

// Service is the booking lifecycle facade used by the HTTP layer.
type Service interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingResponse, error)
	GetBooking(ctx context.Context, id string) (*models.BookingResponse, error)
	ListBookings(ctx context.Context, startDate, endDate, status string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	// AttachDriversLicense records an uploaded license file on the booking
	// and its customer.
	AttachDriversLicense(ctx context.Context, id, publicID, filename string) error
	// CheckAvailability reports whether the inclusive [startDate, endDate]
	// range is free of booking and blocked-period conflicts. The result is
	// advisory: final conflict rejection must happen at write time.
	CheckAvailability(ctx context.Context, startDate, endDate string) (*models.Availability, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Customers customerRepo.CustomerRepository
	Blocked   blockedRepo.BlockedPeriodRepository
	Engine    pricing.Engine
	Mail      MailQueue // optional; nil disables confirmation email
}
