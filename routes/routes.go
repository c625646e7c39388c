package routes

import (
	"net/http"
	"time"

	"roamvan/handlers"
	"roamvan/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers needed for route registration.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Quote        *handlers.QuoteHandler
	Booking      *handlers.BookingHandler
	Admin        *handlers.AdminHandler
}

// RegisterPublicRoutes registers the customer-facing endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/availability", hb.Availability.CheckAvailability)
		api.POST("/quote", hb.Quote.CreateQuote)

		api.POST("/bookings", hb.Booking.CreateBooking)
		api.GET("/bookings/:id", hb.Booking.GetBooking)
		api.POST("/bookings/:id/license", hb.Booking.UploadLicense)
		api.POST("/bookings/:id/payment-intent", hb.Booking.CreatePaymentIntent)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())

		adminGroup.POST("/pricing-rules", hb.Admin.CreatePricingRule)
		adminGroup.GET("/pricing-rules", hb.Admin.ListPricingRules)

		adminGroup.POST("/blocked-periods", hb.Admin.CreateBlockedPeriod)
		adminGroup.GET("/blocked-periods", hb.Admin.ListBlockedPeriods)
		adminGroup.DELETE("/blocked-periods/:id", hb.Admin.DeleteBlockedPeriod)

		adminGroup.GET("/bookings", hb.Admin.ListBookings)
		adminGroup.PUT("/bookings/:id/status", hb.Admin.UpdateBookingStatus)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Roamvan"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "x-api-key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
