package profile

import (
	"marathon-submissions/core/database"
	"marathon-submissions/core/middleware"
	availservice "marathon-submissions/modules/availability/service"
	"marathon-submissions/modules/profile/controller"
	"marathon-submissions/modules/profile/repository"
	"marathon-submissions/modules/profile/router"
	"marathon-submissions/modules/profile/service"
	submissionrepository "marathon-submissions/modules/submission/repository"

	"github.com/labstack/echo/v4"
)

// Init initializes the profile module and registers routes. The submission
// repository feeds the largest-estimate check when a schedule shrinks.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, availability availservice.AvailabilityServiceInterface) *service.ProfileService {
	repo := repository.NewProfileRepository(db)
	submissions := submissionrepository.NewSubmissionRepository(db)
	svc := service.NewProfileService(db, repo, availability, submissions)
	ctrl := controller.NewProfileController(svc)
	rtr := router.NewProfileRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
