package event

import (
	"marathon-submissions/core/database"
	"marathon-submissions/core/middleware"
	"marathon-submissions/modules/event/controller"
	"marathon-submissions/modules/event/repository"
	"marathon-submissions/modules/event/router"
	"marathon-submissions/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes. The returned
// service is wired into the middleware as the current-event resolver.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.EventService {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
