package errors

import "fmt"

type ErrorCode string

const (
	ErrInternalServer             ErrorCode = "INTERNAL_SERVER"
	ErrInvalidInput               ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData         ErrorCode = "INVALID_REQUEST_DATA"
	ErrUnauthorized               ErrorCode = "UNAUTHORIZED"
	ErrForbidden                  ErrorCode = "FORBIDDEN"
	ErrNotFound                   ErrorCode = "NOT_FOUND"
	ErrAlreadyExists              ErrorCode = "ALREADY_EXISTS"
	ErrTokenExpired               ErrorCode = "TOKEN_EXPIRED"
	ErrInvalidTokenFormat         ErrorCode = "INVALID_TOKEN_FORMAT"
	ErrMissingAuthorizationHeader ErrorCode = "MISSING_AUTHORIZATION_HEADER"
	ErrCreateFailed               ErrorCode = "CREATE_FAILED"
	ErrGetFailed                  ErrorCode = "GET_FAILED"
	ErrUpdateFailed               ErrorCode = "UPDATE_FAILED"
	ErrDeleteFailed               ErrorCode = "DELETE_FAILED"
)

// Submission domain codes. The first two are availability-form failures, the
// rest map onto the submission gate pipeline.
const (
	ErrNoAvailability              ErrorCode = "NO_AVAILABILITY"
	ErrAvailabilityWindowTooShort  ErrorCode = "AVAILABILITY_WINDOW_TOO_SHORT"
	ErrStageClosed                 ErrorCode = "STAGE_CLOSED"
	ErrQuotaExceeded               ErrorCode = "QUOTA_EXCEEDED"
	ErrDuplicateGame               ErrorCode = "DUPLICATE_GAME"
	ErrEstimateExceedsAvailability ErrorCode = "ESTIMATE_EXCEEDS_AVAILABILITY"
	ErrProfileIncomplete           ErrorCode = "PROFILE_INCOMPLETE"
)

// AppError is the error type every service returns; controllers map its code
// onto an HTTP status.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the code is a user-correctable validation
// failure rather than an authorization/state failure.
func (e *AppError) IsValidation() bool {
	switch e.Code {
	case ErrInvalidInput, ErrInvalidRequestData, ErrNoAvailability, ErrAvailabilityWindowTooShort,
		ErrDuplicateGame, ErrEstimateExceedsAvailability, ErrProfileIncomplete:
		return true
	}
	return false
}
