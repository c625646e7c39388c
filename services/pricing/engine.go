package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	pricingRepo "roamvan/database/repository/pricing"
	"roamvan/models"
	"roamvan/utils"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// dailyRatesCacheTTL bounds how stale a cached rate sheet can get after an
// admin adds a rule.
const dailyRatesCacheTTL = 5 * time.Minute

// Engine exposes the pricing computations to the booking and quote paths.
type Engine interface {
	// GetDailyRates returns the nightly rate for every date in
	// [startDate, endDate). In Strict mode an uncovered date fails with
	// PricingUnavailableError; in Defaulting mode it gets the fallback rate.
	GetDailyRates(ctx context.Context, startDate, endDate string, mode RateMode) (map[string]string, error)
	// ComputeQuote produces the full price breakdown for a stay. The
	// availability check is the caller's step, before this one.
	ComputeQuote(ctx context.Context, req models.QuoteRequest) (*models.PriceBreakdown, error)
	// MinimumStay returns the minimum-stay constraint governing the first
	// night, or 1 when no rule covers it.
	MinimumStay(ctx context.Context, startDate, endDate string) (int, error)
}

// DefaultPricingEngine is the production engine. It is stateless apart from
// the injected collaborators and safe for concurrent use.
type DefaultPricingEngine struct {
	Rules       pricingRepo.PricingRuleRepository
	Cache       *redis.Client // optional; nil bypasses caching
	DefaultRate decimal.Decimal
}

// NewDefaultPricingEngine constructs the engine with the configured fallback
// nightly rate.
func NewDefaultPricingEngine(rules pricingRepo.PricingRuleRepository, cache *redis.Client, defaultRate string) (*DefaultPricingEngine, error) {
	rate, err := decimal.NewFromString(defaultRate)
	if err != nil {
		return nil, fmt.Errorf("invalid default nightly rate %q: %w", defaultRate, err)
	}
	return &DefaultPricingEngine{
		Rules:       rules,
		Cache:       cache,
		DefaultRate: rate,
	}, nil
}

func (e *DefaultPricingEngine) GetDailyRates(ctx context.Context, startDate, endDate string, mode RateMode) (map[string]string, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("daily_rates:%s:%s:%d", startDate, endDate, mode)
	if cached := e.cacheGet(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	rules, err := e.Rules.FindOverlapping(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}

	rates, err := DailyRates(rules, start, end, mode, e.DefaultRate)
	if err != nil {
		return nil, err
	}

	formatted := formatRates(rates)
	e.cacheSet(ctx, cacheKey, formatted)
	return formatted, nil
}

func (e *DefaultPricingEngine) ComputeQuote(ctx context.Context, req models.QuoteRequest) (*models.PriceBreakdown, error) {
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	pickup, err := ParseTimeOfDay(req.PickupTime)
	if err != nil {
		return nil, fmt.Errorf("invalid pickup time %q: %w", req.PickupTime, err)
	}
	ret, err := ParseTimeOfDay(req.ReturnTime)
	if err != nil {
		return nil, fmt.Errorf("invalid return time %q: %w", req.ReturnTime, err)
	}

	rules, err := e.Rules.FindOverlapping(ctx, req.StartDate, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load pricing rules: %w", err)
	}

	// An uncovered first night carries no minimum-stay constraint; its
	// pricing falls through to the fallback rate below.
	if err := ValidateMinimumStay(rules, start, end); err != nil {
		var unavailable *PricingUnavailableError
		if !errors.As(err, &unavailable) {
			return nil, err
		}
	}

	// The quote path substitutes the fallback rate for uncovered dates
	// rather than failing the whole request.
	rates, err := DailyRates(rules, start, end, Defaulting, e.DefaultRate)
	if err != nil {
		return nil, err
	}
	nightlyTotal := SumRates(rates)

	fees := CalculateFees(start, end, pickup, ret, req.Parking, req.DeliveryDistance)
	total := fees.Total(nightlyTotal)

	breakdown := &models.PriceBreakdown{
		DailyBreakdown:    formatRates(rates),
		NightlyRatesTotal: nightlyTotal.StringFixed(2),
		ServiceFee:        fees.ServiceFee.StringFixed(2),
		TotalPrice:        total.StringFixed(2),
	}
	if fees.EarlyPickupFee != nil {
		breakdown.EarlyPickupFee = fees.EarlyPickupFee.StringFixed(2)
	}
	if fees.LateReturnFee != nil {
		breakdown.LateReturnFee = fees.LateReturnFee.StringFixed(2)
	}
	if fees.ParkingFee != nil {
		breakdown.ParkingFee = fees.ParkingFee.StringFixed(2)
	}
	if fees.DeliveryFee != nil {
		breakdown.DeliveryFee = fees.DeliveryFee.StringFixed(2)
	}
	return breakdown, nil
}

func (e *DefaultPricingEngine) MinimumStay(ctx context.Context, startDate, endDate string) (int, error) {
	start, _, err := parseRange(startDate, endDate)
	if err != nil {
		return 0, err
	}
	rules, err := e.Rules.FindOverlapping(ctx, startDate, endDate)
	if err != nil {
		return 0, fmt.Errorf("failed to load pricing rules: %w", err)
	}
	rule := SelectRule(rules, start)
	if rule == nil {
		return 1, nil
	}
	return rule.MinStay, nil
}

func parseRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}

func formatRates(rates map[string]decimal.Decimal) map[string]string {
	formatted := make(map[string]string, len(rates))
	for date, rate := range rates {
		formatted[date] = rate.StringFixed(2)
	}
	return formatted
}

func (e *DefaultPricingEngine) cacheGet(ctx context.Context, key string) map[string]string {
	if e.Cache == nil {
		return nil
	}
	data, err := e.Cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Debug("daily rates cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	var rates map[string]string
	if err := json.Unmarshal([]byte(data), &rates); err != nil {
		return nil
	}
	return rates
}

func (e *DefaultPricingEngine) cacheSet(ctx context.Context, key string, rates map[string]string) {
	if e.Cache == nil {
		return
	}
	data, err := json.Marshal(rates)
	if err != nil {
		return
	}
	if err := e.Cache.Set(ctx, key, data, dailyRatesCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("daily rates cache write failed", zap.String("key", key), zap.Error(err))
	}
}
