package booking

import (
	"context"

	"roamvan/models"
	"roamvan/services/pricing"

	"github.com/stretchr/testify/mock"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *MockBookingRepo) FindOverlapping(ctx context.Context, startDate, endDate string) ([]models.Booking, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).([]models.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context, startDate, endDate, status string) ([]models.Booking, error) {
	args := m.Called(ctx, startDate, endDate, status)
	return args.Get(0).([]models.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) SetDriversLicense(ctx context.Context, id, publicID, filename string) error {
	args := m.Called(ctx, id, publicID, filename)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer models.Customer) (string, error) {
	args := m.Called(ctx, customer)
	return args.String(0), args.Error(1)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Customer), args.Error(1)
}
func (m *MockCustomerRepo) SetDriversLicense(ctx context.Context, id, publicID string) error {
	args := m.Called(ctx, id, publicID)
	return args.Error(0)
}

// MockBlockedRepo
type MockBlockedRepo struct {
	mock.Mock
}

func (m *MockBlockedRepo) Create(ctx context.Context, period models.BlockedPeriod) (string, error) {
	args := m.Called(ctx, period)
	return args.String(0), args.Error(1)
}
func (m *MockBlockedRepo) FindOverlapping(ctx context.Context, startDate, endDate string) ([]models.BlockedPeriod, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).([]models.BlockedPeriod), args.Error(1)
}
func (m *MockBlockedRepo) List(ctx context.Context, startDate, endDate string) ([]models.BlockedPeriod, error) {
	args := m.Called(ctx, startDate, endDate)
	return args.Get(0).([]models.BlockedPeriod), args.Error(1)
}
func (m *MockBlockedRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
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

// MockMailQueue
type MockMailQueue struct {
	mock.Mock
}

func (m *MockMailQueue) EnqueueBookingConfirmation(ctx context.Context, bookingID string) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}
