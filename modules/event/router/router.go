package router

import (
	"marathon-submissions/core/middleware"
	"marathon-submissions/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public")
	publicRoutes.GET("/events/current", r.EventController.GetCurrentEvent, mw.EventMiddleware())
	publicRoutes.GET("/events/:slug", r.EventController.GetEvent)

	adminRoutes := v1.Group("/admin", mw.AuthMiddleware(), mw.AdminMiddleware())
	adminRoutes.GET("/events", r.EventController.ListEvents)
	adminRoutes.POST("/events", r.EventController.CreateEvent)
	adminRoutes.PUT("/events/:slug/settings", r.EventController.UpdateSettings)
}
