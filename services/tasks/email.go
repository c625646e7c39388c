package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"roamvan/config"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "email:booking_confirmation"

// BookingConfirmationPayload carries the booking to send the email for.
// The worker loads the booking and customer fresh from the database, so
// the payload stays a bare reference.
type BookingConfirmationPayload struct {
	BookingID string `json:"bookingId"`
}

func NewBookingConfirmationTask(bookingID string) (*asynq.Task, error) {
	b, err := json.Marshal(BookingConfirmationPayload{BookingID: bookingID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, b), nil
}

// AsynqMailQueue enqueues email tasks on the redis-backed queue.
type AsynqMailQueue struct {
	Client *asynq.Client
}

// NewAsynqMailQueue builds a queue client from the app config.
func NewAsynqMailQueue() *AsynqMailQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	return &AsynqMailQueue{Client: client}
}

// EnqueueBookingConfirmation queues a confirmation email for delivery.
func (q *AsynqMailQueue) EnqueueBookingConfirmation(ctx context.Context, bookingID string) error {
	if q.Client == nil {
		return fmt.Errorf("asynq client is nil, confirmation task cannot be enqueued")
	}
	task, err := NewBookingConfirmationTask(bookingID)
	if err != nil {
		return err
	}
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Queue("default")}
	if _, err := q.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}

// Close releases the underlying redis connection.
func (q *AsynqMailQueue) Close() error {
	if q.Client == nil {
		return nil
	}
	return q.Client.Close()
}
