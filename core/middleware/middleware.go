package middleware

import (
	"context"
	"net/http"

	"marathon-submissions/core/cache"
	"marathon-submissions/core/config"
	"marathon-submissions/core/constants"
	"marathon-submissions/core/controller"
	"marathon-submissions/core/errors"
	"marathon-submissions/core/logger"
	"marathon-submissions/core/utils"
	evententity "marathon-submissions/modules/event/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TokenData is the authenticated identity extracted from a bearer token.
// Token issuance itself belongs to the external identity provider.
type TokenData struct {
	UserID   uuid.UUID
	Username string
	Roles    []string
}

func (t *TokenData) HasRole(role string) bool {
	for _, r := range t.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// EventResolver yields the current event; implemented by the event service.
type EventResolver interface {
	CurrentEvent(ctx context.Context) (*evententity.Event, *errors.AppError)
}

type Middleware struct {
	events EventResolver
}

func New() *Middleware {
	return &Middleware{}
}

// SetEventResolver wires the event service in after module init.
func (m *Middleware) SetEventResolver(events EventResolver) {
	m.events = events
}

// RequestIDMiddleware tags every request with a short correlation id.
func (m *Middleware) RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = utils.GenerateID()
			}
			c.Set(constants.ContextRequestID, requestID)
			c.Response().Header().Set("X-Request-ID", requestID)
			return next(c)
		}
	}
}

// AuthMiddleware verifies the bearer token and stores TokenData in context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrMissingAuthorizationHeader, "Missing or malformed authorization header")
			}

			if cache.Ready() {
				blacklisted, err := cache.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:AuthMiddleware:Blacklist", err)
				} else if blacklisted {
					return controller.NewErrorResponse(http.StatusUnauthorized,
						errors.ErrUnauthorized, "Token has been revoked")
				}
			}

			tokenData, appErr := parseToken(token)
			if appErr != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, appErr.Code, appErr.Message)
			}

			c.Set(constants.ContextTokenData, tokenData)
			return next(c)
		}
	}
}

// AdminMiddleware requires the event-admin role on top of AuthMiddleware.
func (m *Middleware) AdminMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := GetTokenData(c)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized,
					errors.ErrUnauthorized, "Authentication required")
			}
			if !tokenData.HasRole(constants.RoleEventAdmin) {
				logger.Warn("Middleware:AdminMiddleware:Denied", "username", tokenData.Username)
				return controller.NewErrorResponse(http.StatusForbidden,
					errors.ErrForbidden, "Event admin role required")
			}
			return next(c)
		}
	}
}

// EventMiddleware resolves the current event once per request and stores it
// in context, so handlers receive an explicit event instead of reaching for
// a global lookup.
func (m *Middleware) EventMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m.events == nil {
				return controller.NewErrorResponse(http.StatusInternalServerError,
					errors.ErrInternalServer, "Event resolver not configured")
			}

			event, appErr := m.events.CurrentEvent(c.Request().Context())
			if appErr != nil {
				if appErr.Code == errors.ErrNotFound {
					logger.Warn("Middleware:EventMiddleware:NoCurrentEvent")
					return controller.NewErrorResponse(http.StatusNotFound,
						errors.ErrNotFound, "No upcoming active event found")
				}
				logger.Error("Middleware:EventMiddleware:Resolve", appErr)
				return controller.NewErrorResponse(http.StatusInternalServerError,
					appErr.Code, appErr.Message)
			}

			c.Set(constants.ContextCurrentEvent, event)
			return next(c)
		}
	}
}

func parseToken(token string) (*TokenData, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Server configuration error", nil)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.Auth.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "Invalid or expired token", err)
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "Invalid subject claim", err)
	}

	tokenData := &TokenData{UserID: userID}
	if username, ok := claims["username"].(string); ok {
		tokenData.Username = username
	}
	if rawRoles, ok := claims["roles"].([]any); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				tokenData.Roles = append(tokenData.Roles, role)
			}
		}
	}
	return tokenData, nil
}

// GetTokenData retrieves the authenticated identity set by AuthMiddleware.
func GetTokenData(c echo.Context) (*TokenData, error) {
	tokenData, ok := c.Get(constants.ContextTokenData).(*TokenData)
	if !ok || tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "No token data in context", nil)
	}
	return tokenData, nil
}

// GetCurrentEvent retrieves the event resolved by EventMiddleware.
func GetCurrentEvent(c echo.Context) (*evententity.Event, error) {
	event, ok := c.Get(constants.ContextCurrentEvent).(*evententity.Event)
	if !ok || event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "No current event in context", nil)
	}
	return event, nil
}
