package handlers

import (
	"net/http"

	blockedRepo "roamvan/database/repository/blocked"
	pricingRepo "roamvan/database/repository/pricing"
	"roamvan/models"
	"roamvan/services/booking"
	"roamvan/services/pricing"
	"roamvan/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the back-office operations: pricing rules,
// blocked periods and booking management.
type AdminHandler struct {
	Rules      pricingRepo.PricingRuleRepository
	Blocked    blockedRepo.BlockedPeriodRepository
	BookingSvc booking.Service
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(rules pricingRepo.PricingRuleRepository, blocked blockedRepo.BlockedPeriodRepository, bs booking.Service) *AdminHandler {
	return &AdminHandler{Rules: rules, Blocked: blocked, BookingSvc: bs}
}

type createPricingRuleRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	NightlyRate string `json:"nightly_rate" binding:"required"`
	MinStay     int    `json:"min_stay" binding:"required"`
	Notes       string `json:"notes"`
}

// CreatePricingRule handles POST /api/admin/pricing-rules. Overlapping rules
// are accepted; the engine resolves them deterministically at pricing time.
func (ah *AdminHandler) CreatePricingRule(c *gin.Context) {
	var req createPricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	start, err := pricing.ParseDate(req.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start_date", err.Error())
		return
	}
	end, err := pricing.ParseDate(req.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid end_date", err.Error())
		return
	}
	if end.Before(start) {
		utils.JSONError(c, http.StatusBadRequest, "end_date must not precede start_date", "")
		return
	}

	rate, err := decimal.NewFromString(req.NightlyRate)
	if err != nil || !rate.IsPositive() {
		utils.JSONError(c, http.StatusBadRequest, "nightly_rate must be a positive decimal", "")
		return
	}
	if req.MinStay < 1 {
		utils.JSONError(c, http.StatusBadRequest, "min_stay must be at least 1", "")
		return
	}

	rule := models.PricingRule{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		NightlyRate: rate.StringFixed(2),
		MinStay:     req.MinStay,
		Notes:       req.Notes,
	}
	id, err := ah.Rules.Create(c.Request.Context(), rule)
	if err != nil {
		zap.L().Error("Failed to create pricing rule", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create pricing rule", "")
		return
	}

	created, err := ah.Rules.GetByID(c.Request.Context(), id)
	if err != nil || created == nil {
		zap.L().Error("Failed to load created pricing rule", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load created pricing rule", "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPricingRules handles GET /api/admin/pricing-rules with optional
// start_date and end_date filters.
func (ah *AdminHandler) ListPricingRules(c *gin.Context) {
	rules, err := ah.Rules.List(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		zap.L().Error("Failed to list pricing rules", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list pricing rules", "")
		return
	}
	c.JSON(http.StatusOK, rules)
}

type createBlockedPeriodRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
	Notes     string `json:"notes"`
}

// CreateBlockedPeriod handles POST /api/admin/blocked-periods. Unlike
// pricing rules, blocked periods reject overlap with existing ones.
func (ah *AdminHandler) CreateBlockedPeriod(c *gin.Context) {
	var req createBlockedPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	start, err := pricing.ParseDate(req.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid start_date", err.Error())
		return
	}
	end, err := pricing.ParseDate(req.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid end_date", err.Error())
		return
	}
	if end.Before(start) {
		utils.JSONError(c, http.StatusBadRequest, "end_date must not precede start_date", "")
		return
	}
	if !models.ValidBlockedReason(req.Reason) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reason", "allowed values are maintenance, private and other")
		return
	}

	existing, err := ah.Blocked.FindOverlapping(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		zap.L().Error("Failed to check blocked period overlap", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create blocked period", "")
		return
	}
	if len(existing) > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Range overlaps an existing blocked period",
			"existing": existing,
		})
		return
	}

	period := models.BlockedPeriod{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Notes:     req.Notes,
	}
	id, err := ah.Blocked.Create(c.Request.Context(), period)
	if err != nil {
		zap.L().Error("Failed to create blocked period", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create blocked period", "")
		return
	}
	period.ID = id
	c.JSON(http.StatusCreated, period)
}

// ListBlockedPeriods handles GET /api/admin/blocked-periods.
func (ah *AdminHandler) ListBlockedPeriods(c *gin.Context) {
	periods, err := ah.Blocked.List(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		zap.L().Error("Failed to list blocked periods", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list blocked periods", "")
		return
	}
	c.JSON(http.StatusOK, periods)
}

// DeleteBlockedPeriod handles DELETE /api/admin/blocked-periods/:id.
func (ah *AdminHandler) DeleteBlockedPeriod(c *gin.Context) {
	if err := ah.Blocked.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		zap.L().Error("Failed to delete blocked period", zap.String("id", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete blocked period", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ListBookings handles GET /api/admin/bookings with optional date window
// and status filters.
func (ah *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := ah.BookingSvc.ListBookings(c.Request.Context(),
		c.Query("start_date"), c.Query("end_date"), c.Query("status"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus handles PUT /api/admin/bookings/:id/status.
func (ah *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !models.ValidStatus(req.Status) {
		utils.JSONError(c, http.StatusBadRequest, "Unknown booking status", req.Status)
		return
	}

	updated, err := ah.BookingSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
