package controller

import (
	"marathon-submissions/core/controller"
	"marathon-submissions/core/errors"
	"marathon-submissions/core/middleware"
	"marathon-submissions/core/params"
	"marathon-submissions/modules/notification/dto"
	"marathon-submissions/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	NotificationService service.NotificationServiceInterface
}

func NewNotificationController(notificationService service.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: notificationService,
	}
}

func (ctrl *NotificationController) GetMyNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}

	page, appErr := ctrl.NotificationService.GetMyNotifications(ctx, tokenData.UserID, params.FromContext(c))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, page, "Notifications")
}

func (ctrl *NotificationController) MarkAsRead(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}

	requestData := new(dto.MarkAsReadRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	if appErr := ctrl.NotificationService.MarkAsRead(ctx, tokenData.UserID, requestData.IDs); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "Notifications marked as read")
}

func (ctrl *NotificationController) MarkAllAsRead(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}

	if appErr := ctrl.NotificationService.MarkAllAsRead(ctx, tokenData.UserID); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "All notifications marked as read")
}

func (ctrl *NotificationController) CountUnread(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}

	count, appErr := ctrl.NotificationService.CountUnread(ctx, tokenData.UserID)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, dto.UnreadCountResponse{Count: count}, "Unread count")
}
