package impl

import (
	"context"
	"log/slog"

	deliverycontext "radiusmgr/internal/delivery/context"
	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/domain/repository"
	"radiusmgr/internal/domain/service"
	"radiusmgr/internal/errors"
	"radiusmgr/internal/usecase"

	"go.uber.org/fx"
)

// RefreshPolicy decides whether a refresh also replaces the refresh token.
type RefreshPolicy interface {
	RotateRefreshToken(claims *service.TokenClaims) bool
}

// noRotationPolicy keeps the presented refresh token valid until it expires on its own.
type noRotationPolicy struct{}

func (noRotationPolicy) RotateRefreshToken(*service.TokenClaims) bool { return false }

// NewNoRotationPolicy returns the default refresh policy.
func NewNoRotationPolicy() RefreshPolicy {
	return noRotationPolicy{}
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	resolver     usecase.CredentialResolver
	userRepo     repository.UserRepository
	operatorRepo repository.OperatorRepository
	tokenService service.TokenService
	policy       RefreshPolicy
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Resolver      usecase.CredentialResolver
	UserRepo      repository.UserRepository
	OperatorRepo  repository.OperatorRepository
	TokenService  service.TokenService
	RefreshPolicy RefreshPolicy `optional:"true"`
	Logger        *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	policy := params.RefreshPolicy
	if policy == nil {
		policy = NewNoRotationPolicy()
	}

	return &sessionService{
		resolver:     params.Resolver,
		userRepo:     params.UserRepo,
		operatorRepo: params.OperatorRepo,
		tokenService: params.TokenService,
		policy:       policy,
		logger:       params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login resolves the credentials and issues a token pair for the resulting principal.
func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	principal, err := srv.resolver.Resolve(ctx, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.log(ctx).Info("Login rejected", slog.String("username", input.Username))
		} else {
			srv.log(ctx).Error("Login failed", slog.String("username", input.Username), slog.Any("error", err))
		}

		return nil, err
	}

	output, err := srv.IssueSession(ctx, principal)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded",
		slog.Int64("principalID", principal.ID),
		slog.String("kind", principal.Kind.String()),
	)

	return output, nil
}

// IssueSession signs an access and a refresh token that carry the same identity.
func (srv *sessionService) IssueSession(_ context.Context, principal *entity.Principal) (*usecase.SessionOutput, error) {
	if principal == nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "cannot issue a session without a principal")
	}

	subject := subjectOf(principal)

	accessToken, err := srv.tokenService.Issue(subject, service.TokenTypeAccess, srv.tokenService.AccessTTL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.Issue(subject, service.TokenTypeRefresh, srv.tokenService.RefreshTTL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue refresh token")
	}

	return &usecase.SessionOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    usecase.BearerTokenType,
		ExpiresIn:    int64(srv.tokenService.AccessTTL().Seconds()),
		Principal:    usecase.NewPrincipalSummary(principal),
	}, nil
}

// Refresh re-checks the principal against the store before handing out a new access token.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.Verify(refreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	principal, err := srv.lookupPrincipal(ctx, claims.Kind, claims.Subject)
	if err != nil {
		return nil, err
	}
	if principal.ID != claims.PrincipalID || !principal.CanAuthenticate() {
		srv.log(ctx).Info("Refresh rejected for principal that is no longer eligible",
			slog.Int64("principalID", claims.PrincipalID),
			slog.String("kind", claims.Kind.String()),
		)

		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "principal is no longer eligible")
	}

	subject := subjectOf(principal)
	accessToken, err := srv.tokenService.Issue(subject, service.TokenTypeAccess, srv.tokenService.AccessTTL())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	output := &usecase.RefreshOutput{
		AccessToken: accessToken,
		TokenType:   usecase.BearerTokenType,
		ExpiresIn:   int64(srv.tokenService.AccessTTL().Seconds()),
	}

	if srv.policy.RotateRefreshToken(claims) {
		output.RefreshToken, err = srv.tokenService.Issue(subject, service.TokenTypeRefresh, srv.tokenService.RefreshTTL())
		if err != nil {
			return nil, errors.Wrap(err, "failed to rotate refresh token")
		}
	}

	return output, nil
}

// VerifyAccessToken is pure token verification. It performs no I/O.
func (srv *sessionService) VerifyAccessToken(_ context.Context, accessToken string) (*usecase.TokenIdentity, error) {
	claims, err := srv.tokenService.Verify(accessToken, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	return &usecase.TokenIdentity{
		PrincipalID: claims.PrincipalID,
		Username:    claims.Subject,
		Kind:        claims.Kind,
		Contact:     claims.Contact,
	}, nil
}

// CurrentPrincipal loads the bearer by ID and rejects principals that can no longer log in.
func (srv *sessionService) CurrentPrincipal(ctx context.Context, identity *usecase.TokenIdentity) (*entity.Principal, error) {
	if identity == nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "missing identity")
	}

	var principal *entity.Principal
	switch identity.Kind {
	case entity.PrincipalKindUser:
		user, err := srv.userRepo.FindByID(ctx, identity.PrincipalID)
		if err != nil {
			return nil, mapLookupError(err)
		}
		principal = user.Principal()
	case entity.PrincipalKindOperator:
		operator, err := srv.operatorRepo.FindByID(ctx, identity.PrincipalID)
		if err != nil {
			return nil, mapLookupError(err)
		}
		principal = operator.Principal()
	default:
		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid, "unknown principal kind %q", identity.Kind)
	}

	if !principal.CanAuthenticate() {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "principal is no longer active")
	}

	return principal, nil
}

func (srv *sessionService) lookupPrincipal(ctx context.Context, kind entity.PrincipalKind, username string) (*entity.Principal, error) {
	switch kind {
	case entity.PrincipalKindUser:
		user, err := srv.userRepo.FindByUsername(ctx, username)
		if err != nil {
			return nil, mapLookupError(err)
		}

		return user.Principal(), nil
	case entity.PrincipalKindOperator:
		operator, err := srv.operatorRepo.FindByUsername(ctx, username)
		if err != nil {
			return nil, mapLookupError(err)
		}

		return operator.Principal(), nil
	default:
		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid, "unknown principal kind %q", kind)
	}
}

// mapLookupError hides deleted principals behind ErrTokenInvalid and keeps store failures visible.
func mapLookupError(err error) error {
	if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrOperatorNotFound) {
		return errors.Wrap(domainerrors.ErrTokenInvalid, "principal no longer exists")
	}

	return errors.Wrap(err, "failed to load principal")
}

func subjectOf(p *entity.Principal) *service.TokenSubject {
	return &service.TokenSubject{
		PrincipalID: p.ID,
		Kind:        p.Kind,
		Username:    p.Username,
		Contact:     p.ContactAddress(),
	}
}
