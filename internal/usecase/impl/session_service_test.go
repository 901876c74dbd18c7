package impl

import (
	"context"
	"testing"

	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/domain/service"
	"radiusmgr/internal/errors"
	"radiusmgr/internal/infra/auth"
	"radiusmgr/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	store   *memoryStore
	tokens  service.TokenService
	session usecase.SessionUsecase
}

func newSessionFixture(t *testing.T, policy RefreshPolicy) *sessionFixture {
	t.Helper()

	store := newMemoryStore()
	tokens, err := auth.NewJWTService(newTestConfig())
	require.NoError(t, err)

	resolver := NewCredentialResolver(CredentialResolverParams{
		UserRepo:     store.UserRepo(),
		OperatorRepo: store.OperatorRepo(),
		Hasher:       newFakeHasher(),
		Logger:       newDiscardLogger(),
	})

	session := NewSessionService(SessionServiceParams{
		Resolver:      resolver,
		UserRepo:      store.UserRepo(),
		OperatorRepo:  store.OperatorRepo(),
		TokenService:  tokens,
		RefreshPolicy: policy,
		Logger:        newDiscardLogger(),
	})

	return &sessionFixture{store: store, tokens: tokens, session: session}
}

func TestSessionService_AliceScenario(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()
	f.store.addUser(activeUser())

	out, err := f.session.Login(ctx, usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, int64(3600), out.ExpiresIn)
	require.NotNil(t, out.Principal)
	assert.Equal(t, int64(42), out.Principal.ID)
	assert.Equal(t, entity.PrincipalKindUser, out.Principal.Kind)
	assert.Equal(t, []string{"user.view", "user.edit", "accounting.view", "reports.view"}, out.Principal.Permissions)
	assert.NotNil(t, out.Principal.LastLogin)

	identity, err := f.session.VerifyAccessToken(ctx, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.PrincipalID)
	assert.Equal(t, "alice", identity.Username)
	assert.Equal(t, entity.PrincipalKindUser, identity.Kind)
	assert.Equal(t, "alice@example.com", identity.Contact)

	stored, err := f.store.UserRepo().FindByID(ctx, 42)
	require.NoError(t, err)
	assert.NotNil(t, stored.LastLogin)
}

func TestSessionService_OperatorLogin(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.store.addOperator(activeOperator())

	out, err := f.session.Login(context.Background(), usecase.LoginInput{Username: "root", Password: "0perator!"})
	require.NoError(t, err)

	assert.Equal(t, entity.PrincipalKindOperator, out.Principal.Kind)
	assert.Equal(t, []string{"operator.view", "operator.manage"}, out.Principal.Permissions)
}

func TestSessionService_LoginFailure(t *testing.T) {
	f := newSessionFixture(t, nil)
	f.store.addUser(activeUser())

	out, err := f.session.Login(context.Background(), usecase.LoginInput{Username: "alice", Password: "wrong"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionService_RefreshKeepsPrincipal(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()
	f.store.addUser(activeUser())

	login, err := f.session.Login(ctx, usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	refreshed, err := f.session.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "bearer", refreshed.TokenType)
	assert.Empty(t, refreshed.RefreshToken)

	identity, err := f.session.VerifyAccessToken(ctx, refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.PrincipalID)
}

func TestSessionService_RefreshRejectsAccessToken(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()
	f.store.addUser(activeUser())

	login, err := f.session.Login(ctx, usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	_, err = f.session.Refresh(ctx, login.AccessToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = f.session.VerifyAccessToken(ctx, login.RefreshToken)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestSessionService_RefreshFailsForIneligiblePrincipal(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *memoryStore)
	}{
		{name: "deactivated", mutate: func(s *memoryStore) { s.users[42].IsActive = false }},
		{name: "suspended", mutate: func(s *memoryStore) { s.users[42].Status = entity.UserStatusSuspended }},
		{name: "deleted", mutate: func(s *memoryStore) { delete(s.users, 42) }},
		{name: "recreated under the same username", mutate: func(s *memoryStore) {
			u := s.users[42]
			delete(s.users, 42)
			u.ID = 43
			s.users[43] = u
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSessionFixture(t, nil)
			ctx := context.Background()
			f.store.addUser(activeUser())

			login, err := f.session.Login(ctx, usecase.LoginInput{Username: "alice", Password: "s3cret"})
			require.NoError(t, err)

			tt.mutate(f.store)

			out, err := f.session.Refresh(ctx, login.RefreshToken)
			assert.Nil(t, out)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
		})
	}
}

type alwaysRotate struct{}

func (alwaysRotate) RotateRefreshToken(*service.TokenClaims) bool { return true }

func TestSessionService_RefreshPolicyCanRotate(t *testing.T) {
	f := newSessionFixture(t, alwaysRotate{})
	ctx := context.Background()
	f.store.addUser(activeUser())

	login, err := f.session.Login(ctx, usecase.LoginInput{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	refreshed, err := f.session.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.RefreshToken)

	claims, err := f.tokens.Verify(refreshed.RefreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.PrincipalID)
}

func TestSessionService_CurrentPrincipal(t *testing.T) {
	f := newSessionFixture(t, nil)
	ctx := context.Background()
	f.store.addUser(activeUser())
	f.store.addOperator(activeOperator())

	user, err := f.session.CurrentPrincipal(ctx, &usecase.TokenIdentity{PrincipalID: 42, Kind: entity.PrincipalKindUser})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	op, err := f.session.CurrentPrincipal(ctx, &usecase.TokenIdentity{PrincipalID: 7, Kind: entity.PrincipalKindOperator})
	require.NoError(t, err)
	assert.True(t, op.IsOperator())

	f.store.operators[7].IsActive = false
	_, err = f.session.CurrentPrincipal(ctx, &usecase.TokenIdentity{PrincipalID: 7, Kind: entity.PrincipalKindOperator})
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = f.session.CurrentPrincipal(ctx, &usecase.TokenIdentity{PrincipalID: 999, Kind: entity.PrincipalKindUser})
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	_, err = f.session.CurrentPrincipal(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestSessionService_IssueSessionRequiresPrincipal(t *testing.T) {
	f := newSessionFixture(t, nil)

	_, err := f.session.IssueSession(context.Background(), nil)
	assert.Error(t, err)
}
