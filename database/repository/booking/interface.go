package bookingRepo

import (
	"context"

	"roamvan/config"
	"roamvan/database"
	"roamvan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines storage operations for bookings.
//
// Availability checks read through FindOverlapping and are advisory only:
// two concurrent requests can both observe a free range. Final conflict
// rejection belongs to the write path, which must be made atomic on the
// date-range index when the deployment requires it.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// FindOverlapping returns non-cancelled bookings whose inclusive
	// [start_date, end_date] range intersects the given range.
	FindOverlapping(ctx context.Context, startDate, endDate string) ([]models.Booking, error)
	List(ctx context.Context, startDate, endDate, status string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SetDriversLicense(ctx context.Context, id, publicID, filename string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
