package blockedRepo

import (
	"context"

	"roamvan/config"
	"roamvan/database"
	"roamvan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlockedPeriodRepository defines storage operations for admin-blocked periods.
type BlockedPeriodRepository interface {
	Create(ctx context.Context, period models.BlockedPeriod) (string, error)
	// FindOverlapping returns every blocked period whose inclusive range
	// intersects the given range.
	FindOverlapping(ctx context.Context, startDate, endDate string) ([]models.BlockedPeriod, error)
	List(ctx context.Context, startDate, endDate string) ([]models.BlockedPeriod, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoBlockedPeriodRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedPeriodRepo returns a BlockedPeriodRepository backed by MongoDB.
func NewMongoBlockedPeriodRepo() BlockedPeriodRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBlockedPeriodRepo{
		coll: db.Collection("blocked_periods"),
	}
}
