package handlers

import (
	"errors"
	"net/http"

	"roamvan/services/booking"
	"roamvan/services/pricing"
	"roamvan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError translates the typed service errors into HTTP responses.
// Unknown errors are logged and reported as a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var pricingErr *pricing.PricingUnavailableError
	var minStayErr *pricing.MinimumStayError
	var conflictErr *booking.DateConflictError
	var transitionErr *booking.StatusTransitionError

	switch {
	case errors.Is(err, pricing.ErrInvalidDateRange):
		utils.JSONError(c, http.StatusBadRequest, "Invalid date range", err.Error())
	case errors.Is(err, booking.ErrPickupTooEarly):
		utils.JSONError(c, http.StatusBadRequest, "Pickup time too early", err.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
	case errors.As(err, &pricingErr):
		utils.JSONError(c, http.StatusBadRequest, "Pricing unavailable", err.Error())
	case errors.As(err, &minStayErr):
		utils.JSONError(c, http.StatusBadRequest, "Minimum stay not met", err.Error())
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":             "Requested dates are not available",
			"conflicting_dates": conflictErr.Dates,
		})
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, "Invalid status transition", err.Error())
	default:
		zap.L().Error("Unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
