// Package context carries request-scoped values between echo handlers and the service layer.
// Values set through echo.Context are also copied onto the request's context.Context where the
// service layer needs them.
package context

import (
	"context"
	"log/slog"

	"radiusmgr/internal/domain/entity"
	"radiusmgr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyIdentity  ContextKey = "identity"
	KeyPrincipal ContextKey = "principal"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

func fromContext[T any](ctx context.Context, key ContextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}

func fromEcho[T any](c echo.Context, key ContextKey) (T, bool) {
	v, ok := c.Get(string(key)).(T)

	return v, ok
}

// --- request ID ---

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the request ID of c, or a fresh UUID when none was assigned.
func GetRequestID(c echo.Context) string {
	if id, ok := fromEcho[string](c, KeyRequestID); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request ID, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := fromContext[string](ctx, KeyRequestID)

	return id
}

// --- logger ---

// WithLogger returns a new context with the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := fromContext[*slog.Logger](ctx, KeyLogger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// --- bearer identity ---

// SetIdentity stores the verified bearer identity in echo.Context and in the request context.
func SetIdentity(c echo.Context, identity *usecase.TokenIdentity) {
	c.Set(string(KeyIdentity), identity)
	c.SetRequest(c.Request().WithContext(WithIdentity(c.Request().Context(), identity)))
}

// GetIdentity returns the bearer identity set by the authentication middleware, or nil.
func GetIdentity(c echo.Context) *usecase.TokenIdentity {
	identity, _ := fromEcho[*usecase.TokenIdentity](c, KeyIdentity)

	return identity
}

// WithIdentity returns a new context with the bearer identity.
func WithIdentity(ctx context.Context, identity *usecase.TokenIdentity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext returns the bearer identity, or nil for anonymous requests.
func IdentityFromContext(ctx context.Context) *usecase.TokenIdentity {
	identity, _ := fromContext[*usecase.TokenIdentity](ctx, KeyIdentity)

	return identity
}

// SetPrincipal caches the principal loaded for the current request.
func SetPrincipal(c echo.Context, principal *entity.Principal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal returns the principal cached by SetPrincipal, or nil.
func GetPrincipal(c echo.Context) *entity.Principal {
	principal, _ := fromEcho[*entity.Principal](c, KeyPrincipal)

	return principal
}
