package router

import (
	"marathon-submissions/core/middleware"
	"marathon-submissions/modules/profile/controller"

	"github.com/labstack/echo/v4"
)

type ProfileRouter struct {
	ProfileController *controller.ProfileController
}

func NewProfileRouter(profileController *controller.ProfileController) *ProfileRouter {
	return &ProfileRouter{
		ProfileController: profileController,
	}
}

func (r *ProfileRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware(), mw.EventMiddleware())

	privateRoutes.GET("/profile", r.ProfileController.GetProfile)
	privateRoutes.PUT("/profile", r.ProfileController.UpdateProfile)
}
