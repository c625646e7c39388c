package models

// CustomerInput carries the renter's details on a new booking.
type CustomerInput struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// CreateBookingRequest is the input for booking creation.
type CreateBookingRequest struct {
	StartDate        string        `json:"start_date" binding:"required"`
	EndDate          string        `json:"end_date" binding:"required"`
	PickupTime       string        `json:"pickup_time" binding:"required"`
	ReturnTime       string        `json:"return_time" binding:"required"`
	Parking          bool          `json:"parking"`
	DeliveryDistance int           `json:"delivery_distance"`
	Customer         CustomerInput `json:"customer" binding:"required"`
}

// BookingResponse is a booking together with its customer record.
type BookingResponse struct {
	Booking
	Customer Customer `json:"customer"`
}
