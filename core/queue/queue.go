package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"marathon-submissions/core/config"
	"marathon-submissions/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TypeNotificationCreate is the task type for status-change notifications.
const TypeNotificationCreate = "notification:create"

// NotificationPayload is the body of a notification:create task.
type NotificationPayload struct {
	UserID  uuid.UUID      `json:"user_id"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Data    map[string]any `json:"data,omitempty"`
}

type Client struct {
	inner *asynq.Client
}

func redisOpt(cfg config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{inner: asynq.NewClient(redisOpt(cfg))}
}

func (c *Client) Close() {
	if c != nil && c.inner != nil {
		_ = c.inner.Close()
	}
}

// EnqueueNotification queues a notification for the worker; failures are
// logged but never fail the caller's request.
func (c *Client) EnqueueNotification(ctx context.Context, payload NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeNotificationCreate, body)
	info, err := c.inner.EnqueueContext(ctx, task, asynq.MaxRetry(3))
	if err != nil {
		logger.Error("Queue:EnqueueNotification", err)
		return err
	}

	logger.Info("Queue:EnqueueNotification:Queued", "task_id", info.ID, "user_id", payload.UserID)
	return nil
}

// NewServer builds the asynq worker server; core/server registers handlers
// on the returned mux and runs it alongside the HTTP listener.
func NewServer(cfg config.RedisConfig) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(redisOpt(cfg), asynq.Config{
		Concurrency: 5,
	})
	return srv, asynq.NewServeMux()
}
