package handlers

import (
	"net/http"

	"roamvan/models"
	"roamvan/services/booking"
	"roamvan/services/pricing"
	"roamvan/utils"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves price quotes for prospective bookings.
type QuoteHandler struct {
	BookingSvc booking.Service
	Engine     pricing.Engine
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(bs booking.Service, engine pricing.Engine) *QuoteHandler {
	return &QuoteHandler{BookingSvc: bs, Engine: engine}
}

// CreateQuote handles POST /api/quote. The quote is priced exactly like a
// booking would be, but nothing is persisted.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	availability, err := h.BookingSvc.CheckAvailability(c.Request.Context(), req.StartDate, req.EndDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !availability.Available {
		c.JSON(http.StatusConflict, gin.H{
			"error":             "Requested dates are not available",
			"conflicting_dates": availability.ConflictingDates,
		})
		return
	}

	breakdown, err := h.Engine.ComputeQuote(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}
