// Package handler contains the echo handlers of the API server.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"radiusmgr/internal/delivery/api/response"
	deliverycontext "radiusmgr/internal/delivery/context"
	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/errors"
	"radiusmgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandler serves login, token refresh and password endpoints.
type AuthHandler struct {
	sessions  usecase.SessionUsecase
	passwords usecase.PasswordUsecase
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Sessions  usecase.SessionUsecase
	Passwords usecase.PasswordUsecase
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessions:  params.Sessions,
		passwords: params.Passwords,
	}
}

// --- Request DTOs ---

type loginRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"required,max=1024"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,max=1024"`
	NewPassword     string `json:"new_password" validate:"required,max=1024"`
}

type setPasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,max=1024"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,max=255"`
}

type resetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Code        string `json:"code" validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,max=1024"`
}

// --- Response DTOs ---

type principalResponse struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Email       string     `json:"email,omitempty"`
	IsActive    bool       `json:"is_active"`
	Status      string     `json:"status,omitempty"`
	Kind        string     `json:"kind"`
	LastLogin   *time.Time `json:"last_login"`
	Permissions []string   `json:"permissions"`
}

type loginResponse struct {
	AccessToken  string             `json:"access_token"`
	RefreshToken string             `json:"refresh_token"`
	TokenType    string             `json:"token_type"`
	ExpiresIn    int64              `json:"expires_in"`
	User         *principalResponse `json:"user"`
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type meResponse struct {
	PrincipalID int64      `json:"principal_id"`
	Username    string     `json:"username"`
	Kind        string     `json:"kind"`
	DisplayName string     `json:"display_name"`
	Email       string     `json:"email,omitempty"`
	Status      string     `json:"status,omitempty"`
	LastLogin   *time.Time `json:"last_login"`
	Permissions []string   `json:"permissions"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toPrincipalResponse(summary *usecase.PrincipalSummary) *principalResponse {
	if summary == nil {
		return nil
	}

	return &principalResponse{
		ID:          summary.ID,
		Username:    summary.Username,
		DisplayName: summary.DisplayName,
		Email:       summary.Email,
		IsActive:    summary.IsActive,
		Status:      string(summary.Status),
		Kind:        summary.Kind.String(),
		LastLogin:   summary.LastLogin,
		Permissions: summary.Permissions,
	}
}

// bindAndValidate decodes the body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "request body could not be decoded")
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	return nil
}

// --- Handlers ---

// Login exchanges a username (or user email) and password for a token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.sessions.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		TokenType:    session.TokenType,
		ExpiresIn:    session.ExpiresIn,
		User:         toPrincipalResponse(session.Principal),
	})
}

// Refresh exchanges a refresh token for a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.sessions.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, refreshResponse{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		TokenType:    out.TokenType,
		ExpiresIn:    out.ExpiresIn,
	})
}

// Me returns the current state of the authenticated principal.
func (h *AuthHandler) Me(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		identity := deliverycontext.GetIdentity(c)
		if identity == nil {
			return errors.Wrap(domainerrors.ErrTokenInvalid, "request is not authenticated")
		}

		var err error
		principal, err = h.sessions.CurrentPrincipal(c.Request().Context(), identity)
		if err != nil {
			return errors.WithStack(err)
		}
	}

	summary := usecase.NewPrincipalSummary(principal)

	return response.Success(c, http.StatusOK, meResponse{
		PrincipalID: summary.ID,
		Username:    summary.Username,
		Kind:        summary.Kind.String(),
		DisplayName: summary.DisplayName,
		Email:       summary.Email,
		Status:      string(summary.Status),
		LastLogin:   summary.LastLogin,
		Permissions: summary.Permissions,
	})
}

// ChangePassword changes the bearer's own password after checking the current one.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return errors.Wrap(domainerrors.ErrTokenInvalid, "request is not authenticated")
	}

	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.passwords.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		Actor:           identity,
		TargetID:        identity.PrincipalID,
		TargetKind:      identity.Kind,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Password updated"})
}

// SetUserPassword lets an operator override a user's password.
func (h *AuthHandler) SetUserPassword(c echo.Context) error {
	return h.setPassword(c, entity.PrincipalKindUser)
}

// SetOperatorPassword lets an operator override another operator's password.
func (h *AuthHandler) SetOperatorPassword(c echo.Context) error {
	return h.setPassword(c, entity.PrincipalKindOperator)
}

func (h *AuthHandler) setPassword(c echo.Context, kind entity.PrincipalKind) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return errors.Wrap(domainerrors.ErrTokenInvalid, "request is not authenticated")
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || targetID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}
	if identity.Kind == kind && identity.PrincipalID == targetID {
		return domainerrors.ErrValidationFailed.WithDetails("use /auth/change-password to change your own password")
	}

	var req setPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.passwords.ChangePassword(c.Request().Context(), usecase.ChangePasswordInput{
		Actor:       identity,
		TargetID:    targetID,
		TargetKind:  kind,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Password updated"})
}

// ForgotPassword starts a password reset. The response never depends on whether the email is known.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out := h.passwords.ForgotPassword(c.Request().Context(), req.Email)

	return response.Success(c, http.StatusOK, messageResponse{Message: out.Message})
}

// ResetPassword finishes a password reset with the emailed verification code.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.passwords.ResetPassword(c.Request().Context(), usecase.ResetPasswordInput{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Password has been reset"})
}
