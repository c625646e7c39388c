package bookingRepo

import (
	"context"
	"errors"
	"time"

	"roamvan/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	return booking.ID, nil
}

// GetByID returns a booking by its ID, or nil if none exists.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindOverlapping returns non-cancelled bookings intersecting [startDate, endDate].
func (r *mongoBookingRepo) FindOverlapping(ctx context.Context, startDate, endDate string) ([]models.Booking, error) {
	filter := bson.M{
		"status":     bson.M{"$ne": models.StatusCancelled},
		"start_date": bson.M{"$lte": endDate},
		"end_date":   bson.M{"$gte": startDate},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"start_date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// List returns bookings filtered by the optional date window and status.
func (r *mongoBookingRepo) List(ctx context.Context, startDate, endDate, status string) ([]models.Booking, error) {
	filter := bson.M{}
	if startDate != "" {
		filter["start_date"] = bson.M{"$gte": startDate}
	}
	if endDate != "" {
		filter["end_date"] = bson.M{"$lte": endDate}
	}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"start_date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus sets a booking's status.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}

// SetDriversLicense records the uploaded license file on the booking.
func (r *mongoBookingRepo) SetDriversLicense(ctx context.Context, id, publicID, filename string) error {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"drivers_license_id":          publicID,
		"drivers_license_filename":    filename,
		"drivers_license_uploaded_at": now,
		"updated_at":                  now,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}
