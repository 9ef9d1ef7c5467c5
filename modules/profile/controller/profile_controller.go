package controller

import (
	"marathon-submissions/core/controller"
	"marathon-submissions/core/errors"
	"marathon-submissions/core/middleware"
	"marathon-submissions/modules/profile/dto"
	"marathon-submissions/modules/profile/service"

	"github.com/labstack/echo/v4"
)

type ProfileController struct {
	controller.BaseController
	ProfileService service.ProfileServiceInterface
}

func NewProfileController(profileService service.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		BaseController: controller.NewBaseController(),
		ProfileService: profileService,
	}
}

func (ctrl *ProfileController) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}
	event, err := middleware.GetCurrentEvent(c)
	if err != nil {
		return ctrl.NotFound(errors.ErrNotFound, "No upcoming active event found")
	}

	profile, appErr := ctrl.ProfileService.Get(ctx, tokenData.UserID, event)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, profile, "Profile")
}

func (ctrl *ProfileController) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}
	event, err := middleware.GetCurrentEvent(c)
	if err != nil {
		return ctrl.NotFound(errors.ErrNotFound, "No upcoming active event found")
	}

	requestData := new(dto.UpdateProfileRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	profile, appErr := ctrl.ProfileService.Update(ctx, tokenData.UserID, event, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, profile, "Profile updated")
}
