package router

import (
	"marathon-submissions/core/middleware"
	"marathon-submissions/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

func NewNotificationRouter(notificationController *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{
		NotificationController: notificationController,
	}
}

func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	privateRoutes.GET("/notifications", r.NotificationController.GetMyNotifications)
	privateRoutes.GET("/notifications/unread-count", r.NotificationController.CountUnread)
	privateRoutes.PUT("/notifications/mark-read", r.NotificationController.MarkAsRead)
	privateRoutes.PUT("/notifications/mark-all-read", r.NotificationController.MarkAllAsRead)
}
