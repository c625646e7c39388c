package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"roamvan/config"
	bookingRepo "roamvan/database/repository/booking"
	customerRepo "roamvan/database/repository/customer"
	"roamvan/services/notification"
	"roamvan/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async email worker in background.
func InitMailWorker(emailSvc notification.EmailService, bookings bookingRepo.BookingRepository, customers customerRepo.CustomerRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleConfirmationTask(emailSvc, bookings, customers))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[MailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(emailSvc notification.EmailService, bookings bookingRepo.BookingRepository, customers customerRepo.CustomerRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailHandler] Invalid payload: %v", err)
			return err
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			log.Printf("[MailHandler] Failed to load booking %s: %v", p.BookingID, err)
			return err
		}
		if booking == nil {
			// Booking was deleted in the meantime. Nothing to retry.
			log.Printf("[MailHandler] Booking %s no longer exists, dropping task", p.BookingID)
			return nil
		}

		customer, err := customers.GetByID(ctx, booking.CustomerID)
		if err != nil {
			log.Printf("[MailHandler] Failed to load customer %s: %v", booking.CustomerID, err)
			return err
		}
		if customer == nil {
			log.Printf("[MailHandler] Customer %s no longer exists, dropping task", booking.CustomerID)
			return nil
		}

		if err := emailSvc.SendBookingConfirmation(ctx, *booking, *customer); err != nil {
			log.Printf("[MailHandler] Failed to send confirmation for booking %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[MailWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
