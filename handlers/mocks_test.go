package handlers

import (
	"context"

	"roamvan/models"
	"roamvan/services/pricing"

	"github.com/stretchr/testify/mock"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}
func (m *MockBookingService) GetBooking(ctx context.Context, id string) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}
func (m *MockBookingService) ListBookings(ctx context.Context, startDate, endDate, status string) ([]models.Booking, error) {
	args := m.Called(ctx, startDate, endDate, status)
	return args.Get(0).([]models.Booking), args.Error(1)
}
func (m *MockBookingService) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *MockBookingService) AttachDriversLicense(ctx context.Context, id, publicID, filename string) error {
	args := m.Called(ctx, id, publicID, filename)
	return args.Error(0)
}
func (m *MockBookingService) CheckAvailability(ctx context.Context, startDate, endDate string) (*models.Availability, error) {
	args := m.Called(ctx, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Availability), args.Error(1)
}

// MockEngine
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) GetDailyRates(ctx context.Context, startDate, endDate string, mode pricing.RateMode) (map[string]string, error) {
	args := m.Called(ctx, startDate, endDate, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}
func (m *MockEngine) ComputeQuote(ctx context.Context, req models.QuoteRequest) (*models.PriceBreakdown, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PriceBreakdown), args.Error(1)
}
func (m *MockEngine) MinimumStay(ctx context.Context, startDate, endDate string) (int, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Int(0), args.Error(1)
}
