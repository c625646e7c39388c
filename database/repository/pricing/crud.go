package pricingRepo

import (
	"context"
	"time"

	"roamvan/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new pricing rule and returns its ID.
func (r *mongoPricingRuleRepo) Create(ctx context.Context, rule models.PricingRule) (string, error) {
	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.InsertOne(ctx, rule)
	if err != nil {
		return "", err
	}
	return rule.ID, nil
}

// GetByID returns a pricing rule by its ID, or nil if none exists.
func (r *mongoPricingRuleRepo) GetByID(ctx context.Context, id string) (*models.PricingRule, error) {
	var rule models.PricingRule
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rule)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// FindOverlapping returns all rules intersecting [startDate, endDate].
// ISO dates compare lexicographically, so string comparison is safe here.
func (r *mongoPricingRuleRepo) FindOverlapping(ctx context.Context, startDate, endDate string) ([]models.PricingRule, error) {
	filter := bson.M{
		"start_date": bson.M{"$lte": endDate},
		"end_date":   bson.M{"$gte": startDate},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"start_date": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rules []models.PricingRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// List returns rules filtered to the optional date window.
func (r *mongoPricingRuleRepo) List(ctx context.Context, startDate, endDate string) ([]models.PricingRule, error) {
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

	var rules []models.PricingRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}
