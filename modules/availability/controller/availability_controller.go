package controller

import (
	"marathon-submissions/core/controller"
	"marathon-submissions/core/errors"
	"marathon-submissions/core/middleware"
	"marathon-submissions/modules/availability/service"

	"github.com/labstack/echo/v4"
)

type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(availabilityService service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: availabilityService,
	}
}

// GetSchedule returns the runner's stored schedule for the current event.
// Schedule writes go through the profile update, which replaces the whole
// set alongside the profile in one transaction.
func (ctrl *AvailabilityController) GetSchedule(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}
	event, err := middleware.GetCurrentEvent(c)
	if err != nil {
		return ctrl.NotFound(errors.ErrNotFound, "No upcoming active event found")
	}

	schedule, appErr := ctrl.AvailabilityService.Schedule(ctx, tokenData.UserID, event)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, schedule, "Availability schedule")
}
