package handlers

import (
	"net/http"

	"roamvan/models"
	"roamvan/services/booking"
	"roamvan/services/payment"
	"roamvan/services/storage"
	"roamvan/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// allowedLicenseTypes defines permitted content types for license uploads.
var allowedLicenseTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

// BookingHandler serves the public booking endpoints.
type BookingHandler struct {
	BookingSvc booking.Service
	PaymentSvc payment.Service
	StorageSvc storage.StorageService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs booking.Service, ps payment.Service, ss storage.StorageService) *BookingHandler {
	return &BookingHandler{BookingSvc: bs, PaymentSvc: ps, StorageSvc: ss}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	resp, err := h.BookingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	resp, err := h.BookingSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadLicense handles POST /api/bookings/:id/license. The file arrives
// base64-encoded in the JSON body.
func (h *BookingHandler) UploadLicense(c *gin.Context) {
	bookingID := c.Param("id")

	var req struct {
		Filename    string `json:"filename" binding:"required"`
		ContentType string `json:"content_type" binding:"required"`
		Content     string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if !allowedLicenseTypes[req.ContentType] {
		utils.JSONError(c, http.StatusBadRequest, "Unsupported file type", "allowed types are image/jpeg, image/png and application/pdf")
		return
	}

	// The booking must exist before we accept a file for it.
	resp, err := h.BookingSvc.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	publicID, err := h.StorageSvc.UploadDriversLicense(c.Request.Context(), bookingID, req.ContentType, req.Content)
	if err != nil {
		zap.L().Error("Failed to upload driver's license",
			zap.String("bookingID", bookingID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store driver's license", "")
		return
	}

	if err := h.BookingSvc.AttachDriversLicense(c.Request.Context(), bookingID, publicID, req.Filename); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_id": resp.ID,
		"license_id": publicID,
		"filename":   req.Filename,
	})
}

// CreatePaymentIntent handles POST /api/bookings/:id/payment-intent.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	resp, err := h.BookingSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	intent, err := h.PaymentSvc.CreateIntent(c.Request.Context(), resp.Booking, resp.Customer)
	if err != nil {
		zap.L().Error("Failed to create payment intent",
			zap.String("bookingID", resp.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create payment intent", "")
		return
	}

	c.JSON(http.StatusOK, intent)
}
