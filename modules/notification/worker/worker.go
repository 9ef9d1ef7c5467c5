package worker

import (
	"context"
	"encoding/json"

	"marathon-submissions/core/logger"
	"marathon-submissions/core/queue"
	"marathon-submissions/modules/notification/service"

	"github.com/hibiken/asynq"
)

// Handler consumes notification:create tasks and writes the notification row.
type Handler struct {
	service service.NotificationServiceInterface
}

func NewHandler(svc service.NotificationServiceInterface) *Handler {
	return &Handler{service: svc}
}

// Register attaches the handler to the worker mux.
func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(queue.TypeNotificationCreate, h.HandleNotificationCreate)
}

func (h *Handler) HandleNotificationCreate(ctx context.Context, task *asynq.Task) error {
	var payload queue.NotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("NotificationWorker:HandleNotificationCreate:Unmarshal", err)
		// A malformed payload will never succeed; drop it instead of retrying.
		return nil
	}

	if err := h.service.CreateFromPayload(ctx, payload); err != nil {
		logger.Error("NotificationWorker:HandleNotificationCreate:Create", err)
		return err
	}

	logger.Info("NotificationWorker:HandleNotificationCreate:Done",
		"user_id", payload.UserID, "type", payload.Type)
	return nil
}
