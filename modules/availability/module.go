package availability

import (
	"marathon-submissions/core/config"
	"marathon-submissions/core/database"
	"marathon-submissions/core/middleware"
	"marathon-submissions/modules/availability/controller"
	"marathon-submissions/modules/availability/repository"
	"marathon-submissions/modules/availability/router"
	"marathon-submissions/modules/availability/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the availability module and registers routes. The
// returned service is shared with the profile and submission modules.
func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) *service.AvailabilityService {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo, config.EventLocation())
	ctrl := controller.NewAvailabilityController(svc)
	rtr := router.NewAvailabilityRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
