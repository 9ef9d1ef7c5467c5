package controller

import (
	"net/http"
	"time"

	"marathon-submissions/core/errors"
	"marathon-submissions/core/logger"

	"github.com/labstack/echo/v4"
)

// Response types
type (
	SuccessResponse struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Data      any       `json:"data,omitempty"`
		Timestamp time.Time `json:"timestamp"`
	}

	ErrorResponse struct {
		Status    string           `json:"status"`
		Code      errors.ErrorCode `json:"code"`
		Message   string           `json:"message"`
		Details   any              `json:"details,omitempty"`
		Timestamp time.Time        `json:"timestamp"`
	}
)

// BaseController is embedded by every module controller for uniform
// success/error envelopes.
type BaseController interface {
	BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	InternalServerError(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	Unauthorized(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	Forbidden(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	SuccessResponse(c echo.Context, data any, message string) error
	ErrorResponse(c echo.Context, err *errors.AppError) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func NewSuccessResponse(httpStatusCode int, data any, message string) *SuccessResponse {
	return &SuccessResponse{
		Status:    httpStatusCode,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func NewErrorResponse(httpStatusCode int, appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	err := &ErrorResponse{
		Status:    "error",
		Code:      appErrCode,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return echo.NewHTTPError(httpStatusCode, err)
}

func (h *responseHandler) BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusBadRequest, appErrCode, message, details...)
}

func (h *responseHandler) InternalServerError(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusInternalServerError, appErrCode, message, details...)
}

func (h *responseHandler) NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusNotFound, appErrCode, message, details...)
}

func (h *responseHandler) Unauthorized(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusUnauthorized, appErrCode, message, details...)
}

func (h *responseHandler) Forbidden(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusForbidden, appErrCode, message, details...)
}

func (h *responseHandler) SuccessResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, NewSuccessResponse(http.StatusOK, data, message))
}

// ErrorResponse maps an AppError code onto an HTTP status. Validation
// failures go back to the submitter without error-level logging; state and
// authorization failures are logged as warnings (they usually mean a stale
// client view).
func (h *responseHandler) ErrorResponse(c echo.Context, err *errors.AppError) error {
	httpStatus := http.StatusInternalServerError
	appCode := errors.ErrInternalServer
	msg := "internal server error"

	if err != nil {
		appCode = err.Code
		if err.Message != "" {
			msg = err.Message
		}
		switch appCode {
		case errors.ErrInvalidInput, errors.ErrInvalidRequestData,
			errors.ErrNoAvailability, errors.ErrAvailabilityWindowTooShort,
			errors.ErrDuplicateGame, errors.ErrEstimateExceedsAvailability,
			errors.ErrProfileIncomplete:
			httpStatus = http.StatusBadRequest
		case errors.ErrUnauthorized, errors.ErrTokenExpired, errors.ErrInvalidTokenFormat,
			errors.ErrMissingAuthorizationHeader:
			httpStatus = http.StatusUnauthorized
		case errors.ErrForbidden, errors.ErrStageClosed, errors.ErrQuotaExceeded:
			httpStatus = http.StatusForbidden
		case errors.ErrNotFound:
			httpStatus = http.StatusNotFound
		case errors.ErrAlreadyExists:
			httpStatus = http.StatusConflict
		default:
			httpStatus = http.StatusInternalServerError
		}
	}

	if err != nil && !err.IsValidation() {
		if httpStatus >= http.StatusInternalServerError {
			logger.Error("BaseController:ErrorResponse",
				"status", httpStatus,
				"code", appCode,
				"message", msg,
			)
		} else {
			logger.Warn("BaseController:ErrorResponse",
				"status", httpStatus,
				"code", appCode,
				"message", msg,
			)
		}
	}
	return c.JSON(httpStatus, NewErrorResponse(httpStatus, appCode, msg))
}
