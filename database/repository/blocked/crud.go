package blockedRepo

import (
	"context"
	"errors"
	"time"

	"roamvan/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new blocked period and returns its ID.
func (r *mongoBlockedPeriodRepo) Create(ctx context.Context, period models.BlockedPeriod) (string, error) {
	if period.ID == "" {
		period.ID = uuid.New().String()
	}
	if period.CreatedAt.IsZero() {
		period.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, period)
	if err != nil {
		return "", err
	}
	return period.ID, nil
}

// FindOverlapping returns all blocked periods intersecting [startDate, endDate].
func (r *mongoBlockedPeriodRepo) FindOverlapping(ctx context.Context, startDate, endDate string) ([]models.BlockedPeriod, error) {
	filter := bson.M{
		"start_date": bson.M{"$lte": endDate},
		"end_date":   bson.M{"$gte": startDate},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"start_date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var periods []models.BlockedPeriod
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

// List returns blocked periods filtered to the optional date window.
func (r *mongoBlockedPeriodRepo) List(ctx context.Context, startDate, endDate string) ([]models.BlockedPeriod, error) {
	filter := bson.M{}
	if startDate != "" {
		filter["start_date"] = bson.M{"$gte": startDate}
	}
	if endDate != "" {
		filter["end_date"] = bson.M{"$lte": endDate}
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"start_date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var periods []models.BlockedPeriod
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

// DeleteByID removes a blocked period by ID.
func (r *mongoBlockedPeriodRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("blocked period not found")
	}
	return nil
}
