package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"field-service-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	NotificationJobAssigned   = "job_assigned"
	NotificationJobUnassigned = "job_unassigned"
	NotificationJobCancelled  = "job_cancelled"
)

// Notification is a fire-and-forget message to one user
type Notification struct {
	UserID    uuid.UUID `json:"user_id"`
	JobID     uuid.UUID `json:"job_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier delivers notifications. Callers never roll back on its errors.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier writes notifications to the log only
type LogNotifier struct{}

// NewLogNotifier creates a new log notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the notification
func (LogNotifier) Notify(ctx context.Context, n Notification) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user_id": n.UserID.String(),
		"job_id":  n.JobID.String(),
		"type":    n.Type,
	}).Info(n.Message)
	return nil
}

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes each notification as JSON on "<prefix><user id>"
type RedisNotifier struct {
	client publisher
	prefix string
}

// NewRedisNotifier connects to redisURL
func NewRedisNotifier(redisURL, prefix string) (*RedisNotifier, *redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	return newRedisNotifier(client, prefix), client, nil
}

func newRedisNotifier(client publisher, prefix string) *RedisNotifier {
	return &RedisNotifier{client: client, prefix: prefix}
}

// Channel returns the channel a user's notifications are published on
func (r *RedisNotifier) Channel(userID uuid.UUID) string {
	return r.prefix + userID.String()
}

// Notify publishes n to the user's channel
func (r *RedisNotifier) Notify(ctx context.Context, n Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}
	if err := r.client.Publish(ctx, r.Channel(n.UserID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}
