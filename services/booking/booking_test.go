package booking

import (
	"context"
	"testing"

	"roamvan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultBookingService, *MockBookingRepo, *MockCustomerRepo, *MockBlockedRepo, *MockEngine, *MockMailQueue) {
	bookings := new(MockBookingRepo)
	customers := new(MockCustomerRepo)
	blocked := new(MockBlockedRepo)
	engine := new(MockEngine)
	mail := new(MockMailQueue)
	svc := &DefaultBookingService{
		Bookings:  bookings,
		Customers: customers,
		Blocked:   blocked,
		Engine:    engine,
		Mail:      mail,
	}
	return svc, bookings, customers, blocked, engine, mail
}

func validRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		StartDate:        "2024-06-03",
		EndDate:          "2024-06-06",
		PickupTime:       "10:00",
		ReturnTime:       "17:00",
		Parking:          true,
		DeliveryDistance: 100,
		Customer: models.CustomerInput{
			FirstName: "Jonas", LastName: "Meyer",
			Email: "jonas@example.com", Phone: "+491701234567",
			Street: "Hauptstr. 1", City: "Berlin",
			PostalCode: "10115", Country: "DE",
		},
	}
}

func TestCreateBooking_Success(t *testing.T) {
	svc, bookings, customers, blocked, engine, mail := newTestService()
	ctx := context.Background()
	req := validRequest()

	bookings.On("FindOverlapping", ctx, "2024-06-03", "2024-06-06").
		Return([]models.Booking{}, nil)
	blocked.On("FindOverlapping", ctx, "2024-06-03", "2024-06-06").
		Return([]models.BlockedPeriod{}, nil)

	breakdown := &models.PriceBreakdown{
		DailyBreakdown: map[string]string{
			"2024-06-03": "100.00", "2024-06-04": "100.00", "2024-06-05": "100.00",
		},
		NightlyRatesTotal: "300.00",
		ServiceFee:        "50.00",
		EarlyPickupFee:    "50.00",
		LateReturnFee:     "50.00",
		ParkingFee:        "15.00",
		DeliveryFee:       "20.00",
		TotalPrice:        "485.00",
	}
	engine.On("ComputeQuote", ctx, mock.AnythingOfType("models.QuoteRequest")).
		Return(breakdown, nil)

	customers.On("Create", ctx, mock.AnythingOfType("models.Customer")).
		Return("cust-1", nil)
	bookings.On("Create", ctx, mock.MatchedBy(func(b models.Booking) bool {
		return b.Status == models.StatusPending &&
			b.CustomerID == "cust-1" &&
			b.TotalPrice == "485.00" &&
			b.NightlyRatesTotal == "300.00"
	})).Return("book-1", nil)

	created := models.Booking{
		ID: "book-1", StartDate: "2024-06-03", EndDate: "2024-06-06",
		Status: models.StatusPending, CustomerID: "cust-1", TotalPrice: "485.00",
	}
	bookings.On("GetByID", ctx, "book-1").Return(&created, nil)
	mail.On("EnqueueBookingConfirmation", ctx, "book-1").Return(nil)

	resp, err := svc.CreateBooking(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "book-1", resp.ID)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, "cust-1", resp.Customer.ID)

	mail.AssertCalled(t, "EnqueueBookingConfirmation", ctx, "book-1")
}

func TestCreateBooking_PickupTooEarly(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	req := validRequest()
	req.PickupTime = "04:30"

	_, err := svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrPickupTooEarly)
}

func TestCreateBooking_InvalidDeliveryDistance(t *testing.T) {
	svc, _, _, _, _, _ := newTestService()

	req := validRequest()
	req.DeliveryDistance = 150

	_, err := svc.CreateBooking(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateBooking_DateConflict(t *testing.T) {
	svc, bookings, _, blocked, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("FindOverlapping", ctx, "2024-06-03", "2024-06-06").
		Return([]models.Booking{
			{StartDate: "2024-06-05", EndDate: "2024-06-10", Status: models.StatusConfirmed},
		}, nil)
	blocked.On("FindOverlapping", ctx, "2024-06-03", "2024-06-06").
		Return([]models.BlockedPeriod{}, nil)

	_, err := svc.CreateBooking(ctx, validRequest())

	var conflict *DateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"2024-06-05", "2024-06-06"}, conflict.Dates)
}

func TestCreateBooking_MailFailureDoesNotFailBooking(t *testing.T) {
	svc, bookings, customers, blocked, engine, mail := newTestService()
	ctx := context.Background()

	bookings.On("FindOverlapping", ctx, "2024-06-03", "2024-06-06").
		Return([]models.Booking{}, nil)
	blocked.On("FindOverlapping", ctx, "2024-06-03", "2024-06-06").
		Return([]models.BlockedPeriod{}, nil)
	engine.On("ComputeQuote", ctx, mock.AnythingOfType("models.QuoteRequest")).
		Return(&models.PriceBreakdown{TotalPrice: "350.00", NightlyRatesTotal: "300.00", ServiceFee: "50.00"}, nil)
	customers.On("Create", ctx, mock.AnythingOfType("models.Customer")).
		Return("cust-1", nil)
	bookings.On("Create", ctx, mock.AnythingOfType("models.Booking")).
		Return("book-1", nil)
	bookings.On("GetByID", ctx, "book-1").
		Return(&models.Booking{ID: "book-1", Status: models.StatusPending, CustomerID: "cust-1"}, nil)
	mail.On("EnqueueBookingConfirmation", ctx, "book-1").
		Return(assert.AnError)

	resp, err := svc.CreateBooking(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "book-1", resp.ID)
}

func TestGetBooking_NotFound(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()
	ctx := context.Background()

	bookings.On("GetByID", ctx, "missing").Return(nil, nil)

	_, err := svc.GetBooking(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_AllowedTransition(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()
	ctx := context.Background()

	pending := models.Booking{ID: "book-1", Status: models.StatusPending}
	confirmed := models.Booking{ID: "book-1", Status: models.StatusConfirmed}

	bookings.On("GetByID", ctx, "book-1").Return(&pending, nil).Once()
	bookings.On("UpdateStatus", ctx, "book-1", models.StatusConfirmed).Return(nil)
	bookings.On("GetByID", ctx, "book-1").Return(&confirmed, nil).Once()

	updated, err := svc.UpdateStatus(ctx, "book-1", models.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, updated.Status)
}

func TestUpdateStatus_ForbiddenTransition(t *testing.T) {
	svc, bookings, _, _, _, _ := newTestService()
	ctx := context.Background()

	cases := []struct{ from, to string }{
		{models.StatusPending, models.StatusCompleted},
		{models.StatusCompleted, models.StatusCancelled},
		{models.StatusCancelled, models.StatusConfirmed},
	}
	for _, tc := range cases {
		b := models.Booking{ID: "book-1", Status: tc.from}
		bookings.On("GetByID", ctx, "book-1").Return(&b, nil).Once()

		_, err := svc.UpdateStatus(ctx, "book-1", tc.to)

		var transition *StatusTransitionError
		require.ErrorAs(t, err, &transition, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.from, transition.From)
		assert.Equal(t, tc.to, transition.To)
	}
}

func TestAttachDriversLicense(t *testing.T) {
	svc, bookings, customers, _, _, _ := newTestService()
	ctx := context.Background()

	b := models.Booking{ID: "book-1", CustomerID: "cust-1", Status: models.StatusPending}
	bookings.On("GetByID", ctx, "book-1").Return(&b, nil)
	bookings.On("SetDriversLicense", ctx, "book-1", "lic-123", "license.jpg").Return(nil)
	customers.On("SetDriversLicense", ctx, "cust-1", "lic-123").Return(nil)

	err := svc.AttachDriversLicense(ctx, "book-1", "lic-123", "license.jpg")
	require.NoError(t, err)
	bookings.AssertExpectations(t)
	customers.AssertExpectations(t)
}
