package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"radiusmgr/config"
	deliverycontext "radiusmgr/internal/delivery/context"
	"radiusmgr/internal/domain/entity"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/domain/repository"
	"radiusmgr/internal/domain/service"
	"radiusmgr/internal/errors"
	"radiusmgr/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ForgotPasswordMessage is returned for every forgot-password request, known email or not.
const ForgotPasswordMessage = "If the email address is registered, a verification code has been sent."

// codeDeliveryTimeout bounds storing and publishing a reset code after the request has returned.
const codeDeliveryTimeout = 30 * time.Second

var verificationCodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	operatorRepo repository.OperatorRepository
	hasher       service.PasswordHasher
	codes        service.CodeGenerator
	publisher    service.EventPublisher
	codeTTL      time.Duration
	maxAttempts  int
	logger       *slog.Logger
	now          func() time.Time

	deliveries sync.WaitGroup
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	OperatorRepo  repository.OperatorRepository
	Hasher        service.PasswordHasher
	CodeGenerator service.CodeGenerator
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
	Lifecycle     fx.Lifecycle `optional:"true"`
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	codeTTL := 15 * time.Minute
	maxAttempts := 5
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.VerificationCodeTTL > 0 {
			codeTTL = params.Config.Auth.VerificationCodeTTL
		}
		if params.Config.Auth.MaxResetAttempts > 0 {
			maxAttempts = params.Config.Auth.MaxResetAttempts
		}
	}

	srv := &passwordService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		operatorRepo: params.OperatorRepo,
		hasher:       params.Hasher,
		codes:        params.CodeGenerator,
		publisher:    params.Publisher,
		codeTTL:      codeTTL,
		maxAttempts:  maxAttempts,
		logger:       params.Logger,
		now:          time.Now,
	}

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: srv.drain,
		})
	}

	return srv
}

// drain waits for in-flight reset code deliveries or until ctx is done.
func (srv *passwordService) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.deliveries.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "reset code deliveries still pending")
	}
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ChangePassword lets a principal change its own password, or an operator override anyone's.
func (srv *passwordService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	actor := input.Actor
	if actor == nil {
		return errors.Wrap(domainerrors.ErrForbidden, "password change requires an authenticated actor")
	}

	isSelf := actor.PrincipalID == input.TargetID && actor.Kind == input.TargetKind
	isOverride := !isSelf && actor.Kind == entity.PrincipalKindOperator
	if !isSelf && !isOverride {
		srv.log(ctx).Warn("Password change denied",
			slog.Int64("actorID", actor.PrincipalID),
			slog.Int64("targetID", input.TargetID),
		)

		return errors.Wrap(domainerrors.ErrForbidden, "only the account owner or an operator may change this password")
	}

	currentHash, err := srv.loadPasswordHash(ctx, input.TargetKind, input.TargetID)
	if err != nil {
		return err
	}

	if isSelf && !srv.hasher.Check(input.CurrentPassword, currentHash) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password does not match")
	}

	newHash, err := srv.hashNewPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := srv.storePasswordHash(ctx, input.TargetKind, input.TargetID, newHash); err != nil {
		return err
	}

	srv.log(ctx).Info("Password changed",
		slog.Int64("actorID", actor.PrincipalID),
		slog.String("actorKind", actor.Kind.String()),
		slog.Int64("targetID", input.TargetID),
		slog.String("targetKind", input.TargetKind.String()),
		slog.Bool("override", isOverride),
	)

	return nil
}

func (srv *passwordService) loadPasswordHash(ctx context.Context, kind entity.PrincipalKind, id int64) (string, error) {
	switch kind {
	case entity.PrincipalKindUser:
		user, err := srv.userRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to load user")
		}

		return user.PasswordHash, nil
	case entity.PrincipalKindOperator:
		operator, err := srv.operatorRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return "", errors.Wrap(domainerrors.ErrNotFound, "operator not found")
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to load operator")
		}

		return operator.PasswordHash, nil
	default:
		return "", errors.Wrapf(domainerrors.ErrValidationFailed, "unknown principal kind %q", kind)
	}
}

func (srv *passwordService) storePasswordHash(ctx context.Context, kind entity.PrincipalKind, id int64, hash string) error {
	var err error
	switch kind {
	case entity.PrincipalKindUser:
		err = srv.userRepo.UpdatePassword(ctx, id, hash, srv.now())
	case entity.PrincipalKindOperator:
		err = srv.operatorRepo.UpdatePassword(ctx, id, hash, srv.now())
	default:
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown principal kind %q", kind)
	}

	if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrOperatorNotFound) {
		return errors.Wrap(domainerrors.ErrNotFound, "account disappeared during password change")
	}

	return errors.Wrap(err, "failed to store password hash")
}

func (srv *passwordService) hashNewPassword(password string) (string, error) {
	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return hash, nil
}

// ForgotPassword issues a reset code when the email belongs to a user. The caller always gets
// the same answer and never learns whether anything was sent. Storing and publishing the code
// happen after the call returns, detached from the request's cancellation.
func (srv *passwordService) ForgotPassword(ctx context.Context, email string) *usecase.ForgotPasswordOutput {
	output := &usecase.ForgotPasswordOutput{Message: ForgotPasswordMessage}

	email = normalizeEmail(email)
	if email == "" {
		return output
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Failed to look up user for password reset", slog.Any("error", err))
		}

		return output
	}

	deliveryCtx := context.WithoutCancel(ctx)
	srv.deliveries.Go(func() {
		ctx, cancel := context.WithTimeout(deliveryCtx, codeDeliveryTimeout)
		defer cancel()

		if err := srv.issueCode(ctx, user); err != nil {
			srv.log(ctx).Error("Failed to issue password reset code", slog.Int64("userID", user.ID), slog.Any("error", err))
		}
	})

	return output
}

func (srv *passwordService) issueCode(ctx context.Context, user *entity.User) error {
	code, err := srv.codes.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	email := normalizeEmail(user.Email)
	now := srv.now()
	record := &entity.VerificationCode{
		Email:     email,
		CodeHash:  srv.codes.Fingerprint(email, code),
		ExpiresAt: now.Add(srv.codeTTL),
		CreatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		codeRepo := repoFactory.VerificationCodeRepo()
		if err := codeRepo.InvalidateByEmail(ctx, email, now); err != nil {
			return err
		}

		return codeRepo.Create(ctx, record)
	})
	if err != nil {
		return errors.Wrap(err, "failed to store verification code")
	}

	event := &service.VerificationCodeEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		Email:     user.Email,
		Code:      code,
		ExpiresAt: record.ExpiresAt,
	}
	if err := srv.publisher.PublishVerificationCode(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish verification code")
	}

	srv.log(ctx).Info("Password reset code issued", slog.Int64("userID", user.ID), slog.String("eventID", event.EventID))

	return nil
}

// ResetPassword consumes a reset code and replaces the user's password in one transaction.
func (srv *passwordService) ResetPassword(ctx context.Context, input usecase.ResetPasswordInput) error {
	if !verificationCodePattern.MatchString(input.Code) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "verification code must be exactly 6 digits")
	}

	email := normalizeEmail(input.Email)
	if email == "" {
		return errors.Wrap(domainerrors.ErrInvalidVerificationCode, "email is empty")
	}

	newHash, err := srv.hashNewPassword(input.NewPassword)
	if err != nil {
		return err
	}

	fingerprint := srv.codes.Fingerprint(email, input.Code)
	now := srv.now()

	var userID int64
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidVerificationCode, "no user for email")
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up user")
		}

		err = repoFactory.VerificationCodeRepo().Consume(ctx, email, fingerprint, now)
		if errors.Is(err, repository.ErrCodeNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidVerificationCode, "code mismatch, expired or already used")
		}
		if err != nil {
			return errors.Wrap(err, "failed to consume verification code")
		}

		err = userRepo.UpdatePassword(ctx, user.ID, newHash, now)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidVerificationCode, "user disappeared during reset")
		}
		if err != nil {
			return errors.Wrap(err, "failed to store password hash")
		}
		userID = user.ID

		return nil
	})
	if errors.Is(err, domainerrors.ErrInvalidVerificationCode) {
		srv.recordFailedAttempt(ctx, email)

		return err
	}
	if err != nil {
		srv.log(ctx).Error("Password reset failed", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Int64("userID", userID))

	return nil
}

// recordFailedAttempt runs outside the reset transaction, which has already rolled back.
func (srv *passwordService) recordFailedAttempt(ctx context.Context, email string) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.VerificationCodeRepo().RecordFailedAttempt(ctx, email, srv.maxAttempts, srv.now())
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record password reset attempt", slog.Any("error", err))
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
