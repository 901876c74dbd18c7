// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "radiusmgr/internal/delivery/context"
	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/domain/repository"
	"radiusmgr/internal/domain/service"
	"radiusmgr/internal/errors"
	"radiusmgr/internal/usecase"

	"go.uber.org/fx"
)

// credentialResolver implements the CredentialResolver interface.
type credentialResolver struct {
	userRepo     repository.UserRepository
	operatorRepo repository.OperatorRepository
	hasher       service.PasswordHasher
	logger       *slog.Logger
	now          func() time.Time
}

// CredentialResolverParams holds dependencies for CredentialResolver, injected by Fx.
type CredentialResolverParams struct {
	fx.In

	UserRepo     repository.UserRepository
	OperatorRepo repository.OperatorRepository
	Hasher       service.PasswordHasher
	Logger       *slog.Logger
}

// NewCredentialResolver is the constructor for credentialResolver.
func NewCredentialResolver(params CredentialResolverParams) usecase.CredentialResolver {
	return &credentialResolver{
		userRepo:     params.UserRepo,
		operatorRepo: params.OperatorRepo,
		hasher:       params.Hasher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (r *credentialResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// AuthenticateUser looks the user up by username, then by email when the identifier looks like one.
// Account state is checked only after the password so that both failure paths cost one bcrypt run.
func (r *credentialResolver) AuthenticateUser(ctx context.Context, identifier, password string) (*entity.Principal, error) {
	user, err := r.findUser(ctx, identifier)
	if errors.Is(err, repository.ErrUserNotFound) {
		r.hasher.DummyCheck()

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	passwordOK := r.hasher.Check(password, user.PasswordHash)
	if !passwordOK || !user.CanAuthenticate() {
		r.log(ctx).Debug("User credential rejected",
			slog.Int64("userID", user.ID),
			slog.Bool("passwordMatched", passwordOK),
			slog.String("status", string(user.Status)),
		)

		return nil, nil
	}

	now := r.now()
	if err := r.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		r.log(ctx).Warn("Failed to record user last login", slog.Int64("userID", user.ID), slog.Any("error", err))
	}

	principal := user.Principal()
	principal.LastLogin = &now

	return principal, nil
}

func (r *credentialResolver) findUser(ctx context.Context, identifier string) (*entity.User, error) {
	user, err := r.userRepo.FindByUsername(ctx, identifier)
	if errors.Is(err, repository.ErrUserNotFound) && strings.Contains(identifier, "@") {
		return r.userRepo.FindByEmail(ctx, identifier)
	}

	return user, err
}

// AuthenticateOperator looks the operator up by username only.
func (r *credentialResolver) AuthenticateOperator(ctx context.Context, identifier, password string) (*entity.Principal, error) {
	operator, err := r.operatorRepo.FindByUsername(ctx, identifier)
	if errors.Is(err, repository.ErrOperatorNotFound) {
		r.hasher.DummyCheck()

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up operator")
	}

	if !r.hasher.Check(password, operator.PasswordHash) || !operator.CanAuthenticate() {
		r.log(ctx).Debug("Operator credential rejected", slog.Int64("operatorID", operator.ID))

		return nil, nil
	}

	now := r.now()
	if err := r.operatorRepo.UpdateLastLogin(ctx, operator.ID, now); err != nil {
		r.log(ctx).Warn("Failed to record operator last login", slog.Int64("operatorID", operator.ID), slog.Any("error", err))
	}

	principal := operator.Principal()
	principal.LastLogin = &now

	return principal, nil
}

// Resolve runs the combined login: users take precedence over operators with the same username.
func (r *credentialResolver) Resolve(ctx context.Context, identifier, password string) (*entity.Principal, error) {
	if identifier == "" || password == "" {
		r.hasher.DummyCheck()

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "empty username or password")
	}

	principal, err := r.AuthenticateUser(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	if principal != nil {
		return principal, nil
	}

	principal, err = r.AuthenticateOperator(ctx, identifier, password)
	if err != nil {
		return nil, err
	}
	if principal != nil {
		return principal, nil
	}

	return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no principal matched the credentials")
}
