package handlers

import (
	"net/http"

	"roamvan/services/booking"
	"roamvan/services/pricing"
	"roamvan/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves the public availability and quote endpoints.
type AvailabilityHandler struct {
	BookingSvc booking.Service
	Engine     pricing.Engine
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(bs booking.Service, engine pricing.Engine) *AvailabilityHandler {
	return &AvailabilityHandler{BookingSvc: bs, Engine: engine}
}

// CheckAvailability handles GET /api/availability. Alongside the conflict
// check it returns the per-night rates and the minimum stay for the range,
// so the frontend can render a calendar from one call.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		utils.JSONError(c, http.StatusBadRequest, "start_date and end_date query parameters are required", "")
		return
	}

	availability, err := h.BookingSvc.CheckAvailability(c.Request.Context(), startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rates, err := h.Engine.GetDailyRates(c.Request.Context(), startDate, endDate, pricing.Defaulting)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	minStay, err := h.Engine.MinimumStay(c.Request.Context(), startDate, endDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_available":      availability.Available,
		"conflicting_dates": availability.ConflictingDates,
		"daily_rates":       rates,
		"min_stay":          minStay,
	})
}
