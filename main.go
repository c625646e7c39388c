package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roamvan/config"
	"roamvan/cron"
	"roamvan/database"
	blockedRepoPkg "roamvan/database/repository/blocked"
	bookingRepoPkg "roamvan/database/repository/booking"
	customerRepoPkg "roamvan/database/repository/customer"
	pricingRepoPkg "roamvan/database/repository/pricing"
	"roamvan/handlers"
	"roamvan/middleware"
	"roamvan/routes"
	"roamvan/services/booking"
	"roamvan/services/notification"
	"roamvan/services/payment"
	"roamvan/services/pricing"
	"roamvan/services/storage"
	"roamvan/services/tasks"
	"roamvan/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	storageService, err := storage.NewCloudinaryStorageService(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	pricingRepo := pricingRepoPkg.NewMongoPricingRuleRepo()
	blockedRepo := blockedRepoPkg.NewMongoBlockedPeriodRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()

	// services.
	engine, err := pricing.NewDefaultPricingEngine(pricingRepo, utils.GetCacheClient(), config.AppConfig.DefaultNightlyRate)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize pricing engine: %v", err)
	}

	mailQueue := tasks.NewAsynqMailQueue()
	defer mailQueue.Close()

	bookingService := &booking.DefaultBookingService{
		Bookings:  bookingRepo,
		Customers: customerRepo,
		Blocked:   blockedRepo,
		Engine:    engine,
		Mail:      mailQueue,
	}

	paymentService := payment.NewStripePaymentService(logger)

	emailService := notification.NewSendGridEmailService(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.EmailFrom,
		config.AppConfig.EmailFromName,
		logger,
	)

	// Start the background email worker.
	cron.InitMailWorker(emailService, bookingRepo, customerRepo)

	// handlers.
	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(bookingService, engine),
		Quote:        handlers.NewQuoteHandler(bookingService, engine),
		Booking:      handlers.NewBookingHandler(bookingService, paymentService, storageService),
		Admin:        handlers.NewAdminHandler(pricingRepo, blockedRepo, bookingService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
