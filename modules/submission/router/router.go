package router

import (
	"marathon-submissions/core/middleware"
	"marathon-submissions/modules/submission/controller"

	"github.com/labstack/echo/v4"
)

type SubmissionRouter struct {
	SubmissionController *controller.SubmissionController
}

func NewSubmissionRouter(submissionController *controller.SubmissionController) *SubmissionRouter {
	return &SubmissionRouter{
		SubmissionController: submissionController,
	}
}

func (r *SubmissionRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public", mw.EventMiddleware())
	publicRoutes.GET("/submissions", r.SubmissionController.ListSubmissions)

	privateRoutes := v1.Group("/private", mw.AuthMiddleware(), mw.EventMiddleware())
	privateRoutes.POST("/submissions", r.SubmissionController.CreateSubmission)
	privateRoutes.GET("/submissions/mine", r.SubmissionController.GetMySubmissions)
	privateRoutes.PUT("/submissions/:id", r.SubmissionController.UpdateSubmission)
	privateRoutes.DELETE("/submissions/:id", r.SubmissionController.DeleteSubmission)

	adminRoutes := v1.Group("/admin", mw.AuthMiddleware(), mw.AdminMiddleware())
	adminRoutes.PUT("/categories/:id/status", r.SubmissionController.SetCategoryStatus)
}
