package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"radiusmgr/internal/delivery/api/middleware"
	"radiusmgr/internal/delivery/api/response"
	"radiusmgr/internal/delivery/api/router/handler"
	"radiusmgr/internal/delivery/api/validator"
	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/errors"
	usecasemocks "radiusmgr/internal/mocks/usecase"
	"radiusmgr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type testServer struct {
	echo      *echo.Echo
	sessions  *usecasemocks.MockSessionUsecase
	passwords *usecasemocks.MockPasswordUsecase
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	sessions := usecasemocks.NewMockSessionUsecase(t)
	passwords := usecasemocks.NewMockPasswordUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	r := NewRouter(RouterParams{
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			Sessions:  sessions,
			Passwords: passwords,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(sessions),
	})
	r.RegisterRoutes(e)

	return &testServer{echo: e, sessions: sessions, passwords: passwords}
}

func (s *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

var (
	aliceIdentity = &usecase.TokenIdentity{
		PrincipalID: 7,
		Username:    "alice",
		Kind:        entity.PrincipalKindUser,
		Contact:     "alice@example.com",
	}
	alicePrincipal = &entity.Principal{
		ID:          7,
		Kind:        entity.PrincipalKindUser,
		Username:    "alice",
		Email:       "alice@example.com",
		DisplayName: "Alice",
		IsActive:    true,
		Status:      entity.UserStatusActive,
	}
	rootIdentity = &usecase.TokenIdentity{
		PrincipalID: 1,
		Username:    "root",
		Kind:        entity.PrincipalKindOperator,
		Contact:     "root",
	}
	rootPrincipal = &entity.Principal{
		ID:       1,
		Kind:     entity.PrincipalKindOperator,
		Username: "root",
		IsActive: true,
	}
)

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	rec, _ := srv.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	t.Run("success returns tokens and the principal without its hash", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().
			Login(mock.Anything, usecase.LoginInput{Username: "alice", Password: "Secret123!"}).
			Return(&usecase.SessionOutput{
				AccessToken:  "access",
				RefreshToken: "refresh",
				TokenType:    usecase.BearerTokenType,
				ExpiresIn:    1800,
				Principal:    usecase.NewPrincipalSummary(alicePrincipal),
			}, nil)

		rec, env := srv.do(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"Secret123!"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			TokenType    string `json:"token_type"`
			ExpiresIn    int64  `json:"expires_in"`
			User         struct {
				ID          int64    `json:"id"`
				Kind        string   `json:"kind"`
				Status      string   `json:"status"`
				Permissions []string `json:"permissions"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "access", data.AccessToken)
		assert.Equal(t, "refresh", data.RefreshToken)
		assert.Equal(t, "bearer", data.TokenType)
		assert.Equal(t, int64(1800), data.ExpiresIn)
		assert.Equal(t, int64(7), data.User.ID)
		assert.Equal(t, "USER", data.User.Kind)
		assert.Equal(t, "ACTIVE", data.User.Status)
		assert.Equal(t, []string{"user.view", "user.edit", "accounting.view", "reports.view"}, data.User.Permissions)
		assert.NotContains(t, rec.Body.String(), "password")
		require.NotNil(t, env.Meta)
		assert.NotEmpty(t, env.Meta.RequestID)
	})

	t.Run("bad credentials map to 401 without details", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().
			Login(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no principal matched"))

		rec, env := srv.do(t, http.MethodPost, "/auth/login", `{"username":"ghost","password":"whatever"}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("missing password is a validation failure", func(t *testing.T) {
		srv := newTestServer(t)

		rec, env := srv.do(t, http.MethodPost, "/auth/login", `{"username":"alice"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "password is required", env.Error.Details)
	})

	t.Run("malformed body is a validation failure", func(t *testing.T) {
		srv := newTestServer(t)

		rec, env := srv.do(t, http.MethodPost, "/auth/login", `{"username":`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})
}

func TestRefresh(t *testing.T) {
	srv := newTestServer(t)
	srv.sessions.EXPECT().
		Refresh(mock.Anything, "refresh-token").
		Return(&usecase.RefreshOutput{AccessToken: "new-access", TokenType: usecase.BearerTokenType, ExpiresIn: 1800}, nil)

	rec, env := srv.do(t, http.MethodPost, "/auth/refresh", `{"refresh_token":"refresh-token"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "new-access", data["access_token"])
	assert.NotContains(t, data, "refresh_token")
}

func TestMe(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		srv := newTestServer(t)

		rec, env := srv.do(t, http.MethodGet, "/auth/me", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "TOKEN_INVALID", env.Error.Code)
	})

	t.Run("non bearer scheme", func(t *testing.T) {
		srv := newTestServer(t)
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic YWxpY2U6cHc=")
		rec := httptest.NewRecorder()

		srv.echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().
			VerifyAccessToken(mock.Anything, "refresh-used-as-access").
			Return(nil, errors.Wrap(domainerrors.ErrTokenInvalid, "wrong token type"))

		rec, env := srv.do(t, http.MethodGet, "/auth/me", "", "refresh-used-as-access")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "TOKEN_INVALID", env.Error.Code)
	})

	t.Run("deactivated principal", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().VerifyAccessToken(mock.Anything, "token").Return(aliceIdentity, nil)
		srv.sessions.EXPECT().
			CurrentPrincipal(mock.Anything, aliceIdentity).
			Return(nil, errors.Wrap(domainerrors.ErrTokenInvalid, "principal can no longer authenticate"))

		rec, _ := srv.do(t, http.MethodGet, "/auth/me", "", "token")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns the reloaded principal", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().VerifyAccessToken(mock.Anything, "token").Return(aliceIdentity, nil)
		srv.sessions.EXPECT().CurrentPrincipal(mock.Anything, aliceIdentity).Return(alicePrincipal, nil).Once()

		rec, env := srv.do(t, http.MethodGet, "/auth/me", "", "token")

		require.Equal(t, http.StatusOK, rec.Code)
		var data struct {
			PrincipalID int64    `json:"principal_id"`
			Username    string   `json:"username"`
			Kind        string   `json:"kind"`
			Email       string   `json:"email"`
			Permissions []string `json:"permissions"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, int64(7), data.PrincipalID)
		assert.Equal(t, "USER", data.Kind)
		assert.Equal(t, "alice", data.Username)
		assert.Equal(t, "alice@example.com", data.Email)
		assert.Len(t, data.Permissions, 4)
	})
}

func TestChangePassword(t *testing.T) {
	srv := newTestServer(t)
	srv.sessions.EXPECT().VerifyAccessToken(mock.Anything, "token").Return(aliceIdentity, nil)
	srv.sessions.EXPECT().CurrentPrincipal(mock.Anything, aliceIdentity).Return(alicePrincipal, nil)
	srv.passwords.EXPECT().
		ChangePassword(mock.Anything, usecase.ChangePasswordInput{
			Actor:           aliceIdentity,
			TargetID:        7,
			TargetKind:      entity.PrincipalKindUser,
			CurrentPassword: "Secret123!",
			NewPassword:     "Better456?",
		}).
		Return(nil)

	rec, _ := srv.do(t, http.MethodPost, "/auth/change-password",
		`{"current_password":"Secret123!","new_password":"Better456?"}`, "token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminSetPassword(t *testing.T) {
	t.Run("user bearer is forbidden", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().VerifyAccessToken(mock.Anything, "token").Return(aliceIdentity, nil)
		srv.sessions.EXPECT().CurrentPrincipal(mock.Anything, aliceIdentity).Return(alicePrincipal, nil)

		rec, env := srv.do(t, http.MethodPut, "/admin/users/8/password", `{"new_password":"Better456?"}`, "token")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
	})

	t.Run("operator overrides a user password", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().VerifyAccessToken(mock.Anything, "token").Return(rootIdentity, nil)
		srv.sessions.EXPECT().CurrentPrincipal(mock.Anything, rootIdentity).Return(rootPrincipal, nil)
		srv.passwords.EXPECT().
			ChangePassword(mock.Anything, usecase.ChangePasswordInput{
				Actor:       rootIdentity,
				TargetID:    42,
				TargetKind:  entity.PrincipalKindUser,
				NewPassword: "Better456?",
			}).
			Return(nil)

		rec, _ := srv.do(t, http.MethodPut, "/admin/users/42/password", `{"new_password":"Better456?"}`, "token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("weak password surfaces the strength error", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().VerifyAccessToken(mock.Anything, "token").Return(rootIdentity, nil)
		srv.sessions.EXPECT().CurrentPrincipal(mock.Anything, rootIdentity).Return(rootPrincipal, nil)
		srv.passwords.EXPECT().
			ChangePassword(mock.Anything, mock.Anything).
			Return(domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number"))

		rec, env := srv.do(t, http.MethodPut, "/admin/operators/2/password", `{"new_password":"weakweak"}`, "token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "PASSWORD_STRENGTH", env.Error.Code)
		assert.Equal(t, "password must contain at least one number", env.Error.Details)
	})

	t.Run("operator targeting itself is sent to change-password", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().VerifyAccessToken(mock.Anything, "token").Return(rootIdentity, nil)
		srv.sessions.EXPECT().CurrentPrincipal(mock.Anything, rootIdentity).Return(rootPrincipal, nil)

		rec, env := srv.do(t, http.MethodPut, "/admin/operators/1/password", `{"new_password":"Better456?"}`, "token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "/auth/change-password")
		srv.passwords.AssertNotCalled(t, "ChangePassword", mock.Anything, mock.Anything)
	})

	t.Run("operator id matching a user id is not self", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().VerifyAccessToken(mock.Anything, "token").Return(rootIdentity, nil)
		srv.sessions.EXPECT().CurrentPrincipal(mock.Anything, rootIdentity).Return(rootPrincipal, nil)
		srv.passwords.EXPECT().
			ChangePassword(mock.Anything, usecase.ChangePasswordInput{
				Actor:       rootIdentity,
				TargetID:    1,
				TargetKind:  entity.PrincipalKindUser,
				NewPassword: "Better456?",
			}).
			Return(nil)

		rec, _ := srv.do(t, http.MethodPut, "/admin/users/1/password", `{"new_password":"Better456?"}`, "token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non numeric id", func(t *testing.T) {
		srv := newTestServer(t)
		srv.sessions.EXPECT().VerifyAccessToken(mock.Anything, "token").Return(rootIdentity, nil)
		srv.sessions.EXPECT().CurrentPrincipal(mock.Anything, rootIdentity).Return(rootPrincipal, nil)

		rec, env := srv.do(t, http.MethodPut, "/admin/users/abc/password", `{"new_password":"Better456?"}`, "token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})
}

func TestForgotPasswordIsUniform(t *testing.T) {
	srv := newTestServer(t)
	out := &usecase.ForgotPasswordOutput{Message: "If the email address is registered, a verification code has been sent."}
	srv.passwords.EXPECT().ForgotPassword(mock.Anything, "alice@example.com").Return(out)
	srv.passwords.EXPECT().ForgotPassword(mock.Anything, "nobody@example.com").Return(out)

	known, knownEnv := srv.do(t, http.MethodPost, "/auth/forgot-password", `{"email":"alice@example.com"}`, "")
	unknown, unknownEnv := srv.do(t, http.MethodPost, "/auth/forgot-password", `{"email":"nobody@example.com"}`, "")

	assert.Equal(t, http.StatusOK, known.Code)
	assert.Equal(t, known.Code, unknown.Code)
	assert.JSONEq(t, string(knownEnv.Data), string(unknownEnv.Data))
}

func TestResetPassword(t *testing.T) {
	t.Run("code must be six characters", func(t *testing.T) {
		srv := newTestServer(t)

		rec, env := srv.do(t, http.MethodPost, "/auth/reset-password",
			`{"email":"alice@example.com","code":"123","new_password":"Better456?"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("wrong code", func(t *testing.T) {
		srv := newTestServer(t)
		srv.passwords.EXPECT().
			ResetPassword(mock.Anything, usecase.ResetPasswordInput{
				Email:       "alice@example.com",
				Code:        "000000",
				NewPassword: "Better456?",
			}).
			Return(errors.Wrap(domainerrors.ErrInvalidVerificationCode, "code not found"))

		rec, env := srv.do(t, http.MethodPost, "/auth/reset-password",
			`{"email":"alice@example.com","code":"000000","new_password":"Better456?"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_VERIFICATION_CODE", env.Error.Code)
	})

	t.Run("success", func(t *testing.T) {
		srv := newTestServer(t)
		srv.passwords.EXPECT().ResetPassword(mock.Anything, mock.Anything).Return(nil)

		rec, _ := srv.do(t, http.MethodPost, "/auth/reset-password",
			`{"email":"alice@example.com","code":"123456","new_password":"Better456?"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
