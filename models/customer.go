package models

import "time"

// Customer stores the renter's contact details for a booking.
type Customer struct {
	ID               string    `bson:"id" json:"id"`
	FirstName        string    `bson:"first_name" json:"first_name"`
	LastName         string    `bson:"last_name" json:"last_name"`
	Email            string    `bson:"email" json:"email"`
	Phone            string    `bson:"phone" json:"phone"`
	Street           string    `bson:"street" json:"street"`
	City             string    `bson:"city" json:"city"`
	PostalCode       string    `bson:"postal_code" json:"postal_code"`
	Country          string    `bson:"country" json:"country"`
	DriversLicenseID string    `bson:"drivers_license_id,omitempty" json:"drivers_license_id,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName returns the customer's display name.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
