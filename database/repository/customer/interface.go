package customerRepo

import (
	"context"

	"roamvan/config"
	"roamvan/database"
	"roamvan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CustomerRepository defines storage operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer models.Customer) (string, error)
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	SetDriversLicense(ctx context.Context, id, publicID string) error
}

type mongoCustomerRepo struct {
	coll *mongo.Collection
}

// NewMongoCustomerRepo returns a CustomerRepository backed by MongoDB.
func NewMongoCustomerRepo() CustomerRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCustomerRepo{
		coll: db.Collection("customers"),
	}
}
