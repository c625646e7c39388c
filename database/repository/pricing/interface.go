package pricingRepo

import (
	"context"

	"roamvan/config"
	"roamvan/database"
	"roamvan/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PricingRuleRepository defines storage operations for pricing rules.
// Rules are never updated or deleted; the engine resolves overlaps.
type PricingRuleRepository interface {
	Create(ctx context.Context, rule models.PricingRule) (string, error)
	GetByID(ctx context.Context, id string) (*models.PricingRule, error)
	// FindOverlapping returns every rule whose inclusive [start_date, end_date]
	// range intersects the given range.
	FindOverlapping(ctx context.Context, startDate, endDate string) ([]models.PricingRule, error)
	List(ctx context.Context, startDate, endDate string) ([]models.PricingRule, error)
}

type mongoPricingRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoPricingRuleRepo returns a PricingRuleRepository backed by MongoDB.
func NewMongoPricingRuleRepo() PricingRuleRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoPricingRuleRepo{
		coll: db.Collection("pricing_rules"),
	}
}
