package submission

import (
	"marathon-submissions/core/database"
	"marathon-submissions/core/middleware"
	availservice "marathon-submissions/modules/availability/service"
	profilerepository "marathon-submissions/modules/profile/repository"
	"marathon-submissions/modules/submission/controller"
	"marathon-submissions/modules/submission/repository"
	"marathon-submissions/modules/submission/router"
	"marathon-submissions/modules/submission/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the submission module and registers routes. The
// availability service supplies interval data for the estimate gate; the
// notifier may be nil when the worker stack is disabled.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, availability availservice.AvailabilityServiceInterface, notifier service.NotificationEnqueuer) *service.SubmissionService {
	repo := repository.NewSubmissionRepository(db)
	profiles := profilerepository.NewProfileRepository(db)
	svc := service.NewSubmissionService(repo, availability, profiles, notifier)
	ctrl := controller.NewSubmissionController(svc)
	rtr := router.NewSubmissionRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
