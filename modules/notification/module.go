package notification

import (
	"marathon-submissions/core/database"
	"marathon-submissions/core/middleware"
	"marathon-submissions/modules/notification/controller"
	"marathon-submissions/modules/notification/repository"
	"marathon-submissions/modules/notification/router"
	"marathon-submissions/modules/notification/service"
	"marathon-submissions/modules/notification/worker"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init initializes the notification module: HTTP routes plus the asynq
// handler that persists queued notifications.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, mux *asynq.ServeMux) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e, mw)
	if mux != nil {
		worker.NewHandler(svc).Register(mux)
	}
	return svc
}
