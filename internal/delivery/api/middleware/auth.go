package middleware

import (
	"strings"

	deliverycontext "radiusmgr/internal/delivery/context"
	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/errors"
	"radiusmgr/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "bearer "

// AuthMiddleware guards routes with bearer access tokens and derived permissions.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(sessions usecase.SessionUsecase) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate requires a valid access token in the Authorization header. Every failure is
// reported as ErrTokenInvalid.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "missing bearer token")
		}

		identity, err := m.sessions.VerifyAccessToken(c.Request().Context(), token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// RequirePermission reloads the bearer and checks that its derived permissions contain perm.
// It must run after Authenticate.
func (m *AuthMiddleware) RequirePermission(perm entity.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := m.loadPrincipal(c)
			if err != nil {
				return err
			}

			if !entity.DerivePermissions(principal).Contains(perm) {
				return errors.Wrapf(domainerrors.ErrForbidden, "missing permission %s", perm)
			}

			return next(c)
		}
	}
}

// LoadPrincipal reloads the bearer from the store so handlers see its current state.
func (m *AuthMiddleware) LoadPrincipal(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := m.loadPrincipal(c); err != nil {
			return err
		}

		return next(c)
	}
}

func (m *AuthMiddleware) loadPrincipal(c echo.Context) (*entity.Principal, error) {
	if principal := deliverycontext.GetPrincipal(c); principal != nil {
		return principal, nil
	}

	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "request is not authenticated")
	}

	principal, err := m.sessions.CurrentPrincipal(c.Request().Context(), identity)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	deliverycontext.SetPrincipal(c, principal)

	return principal, nil
}

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}
