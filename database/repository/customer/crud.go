package customerRepo

import (
	"context"
	"errors"
	"time"

	"roamvan/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new customer and returns its ID.
func (r *mongoCustomerRepo) Create(ctx context.Context, customer models.Customer) (string, error) {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = now
	}
	customer.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, customer)
	if err != nil {
		return "", err
	}
	return customer.ID, nil
}

// GetByID returns a customer by ID, or nil if none exists.
func (r *mongoCustomerRepo) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&customer)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// SetDriversLicense stores the license file reference on the customer.
func (r *mongoCustomerRepo) SetDriversLicense(ctx context.Context, id, publicID string) error {
	update := bson.M{"$set": bson.M{
		"drivers_license_id": publicID,
		"updated_at":         time.Now().UTC(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("customer not found")
	}
	return nil
}
