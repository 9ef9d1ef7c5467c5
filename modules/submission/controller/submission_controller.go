package controller

import (
	"marathon-submissions/core/controller"
	"marathon-submissions/core/errors"
	"marathon-submissions/core/middleware"
	"marathon-submissions/core/params"
	"marathon-submissions/modules/submission/dto"
	"marathon-submissions/modules/submission/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SubmissionController struct {
	controller.BaseController
	SubmissionService service.SubmissionServiceInterface
}

func NewSubmissionController(submissionService service.SubmissionServiceInterface) *SubmissionController {
	return &SubmissionController{
		BaseController:    controller.NewBaseController(),
		SubmissionService: submissionService,
	}
}

func (ctrl *SubmissionController) CreateSubmission(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}
	event, err := middleware.GetCurrentEvent(c)
	if err != nil {
		return ctrl.NotFound(errors.ErrNotFound, "No upcoming active event found")
	}

	requestData := new(dto.SubmitRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	submission, appErr := ctrl.SubmissionService.Create(ctx, tokenData.UserID, tokenData.Username, event, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, submission, "Submission created")
}

func (ctrl *SubmissionController) UpdateSubmission(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}
	event, err := middleware.GetCurrentEvent(c)
	if err != nil {
		return ctrl.NotFound(errors.ErrNotFound, "No upcoming active event found")
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid submission id")
	}

	requestData := new(dto.SubmitRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	submission, appErr := ctrl.SubmissionService.Update(ctx, tokenData.UserID, tokenData.Username, event, submissionID, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, submission, "Submission updated")
}

func (ctrl *SubmissionController) DeleteSubmission(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}

	submissionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid submission id")
	}

	if appErr := ctrl.SubmissionService.Delete(ctx, tokenData.UserID, submissionID); appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, nil, "Submission deleted")
}

// GetMySubmissions lists the caller's submissions for the current event.
func (ctrl *SubmissionController) GetMySubmissions(c echo.Context) error {
	ctx := c.Request().Context()

	tokenData, err := middleware.GetTokenData(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Authentication required")
	}
	event, err := middleware.GetCurrentEvent(c)
	if err != nil {
		return ctrl.NotFound(errors.ErrNotFound, "No upcoming active event found")
	}

	submissions, appErr := ctrl.SubmissionService.Mine(ctx, tokenData.UserID, event)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, submissions, "Submissions")
}

// ListSubmissions is the public, event-wide listing with runner pronouns.
func (ctrl *SubmissionController) ListSubmissions(c echo.Context) error {
	ctx := c.Request().Context()

	event, err := middleware.GetCurrentEvent(c)
	if err != nil {
		return ctrl.NotFound(errors.ErrNotFound, "No upcoming active event found")
	}

	page, appErr := ctrl.SubmissionService.All(ctx, event, params.FromContext(c))
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, page, "Submissions")
}

// SetCategoryStatus is the admin review action.
func (ctrl *SubmissionController) SetCategoryStatus(c echo.Context) error {
	ctx := c.Request().Context()

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid category id")
	}

	requestData := new(dto.SetCategoryStatusRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	category, appErr := ctrl.SubmissionService.SetCategoryStatus(ctx, categoryID, requestData)
	if appErr != nil {
		return ctrl.ErrorResponse(c, appErr)
	}
	return ctrl.SuccessResponse(c, category, "Category status updated")
}
