package controller

import (
	"marathon-submissions/core/controller"
	"marathon-submissions/core/errors"
	"marathon-submissions/core/middleware"
	"marathon-submissions/core/params"
	"marathon-submissions/modules/event/dto"
	"marathon-submissions/modules/event/service"
	"marathon-submissions/modules/event/validator"

	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(eventService service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   eventService,
	}
}

// GetCurrentEvent returns the event resolved for this request.
func (ctrl *EventController) GetCurrentEvent(c echo.Context) error {
	event, err := middleware.GetCurrentEvent(c)
	if err != nil {
		return ctrl.NotFound(errors.ErrNotFound, "No upcoming active event found")
	}
	return ctrl.SuccessResponse(c, dto.ToEventResponse(event), "Current event")
}

func (ctrl *EventController) GetEvent(c echo.Context) error {
	ctx := c.Request().Context()

	event, appErr := ctrl.EventService.GetBySlug(ctx, c.Param("slug"))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, event, "Event")
}

func (ctrl *EventController) ListEvents(c echo.Context) error {
	ctx := c.Request().Context()

	page, appErr := ctrl.EventService.List(ctx, params.FromContext(c))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, page, "Events")
}

func (ctrl *EventController) CreateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.CreateEventRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateCreateEventRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	event, appErr := ctrl.EventService.Create(ctx, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, event, "Event created")
}

func (ctrl *EventController) UpdateSettings(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.UpdateSettingsRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateUpdateSettingsRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	event, appErr := ctrl.EventService.UpdateSettings(ctx, c.Param("slug"), requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, event, "Event settings updated")
}
