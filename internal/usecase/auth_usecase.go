// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"radiusmgr/internal/domain/entity"
)

// BearerTokenType is the token_type reported with every issued access token.
const BearerTokenType = "bearer"

// --- Input DTOs ---

// LoginInput carries a username (or user email) and a plaintext password.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput describes a password change on TargetID/TargetKind requested by Actor.
// CurrentPassword is only checked when the actor changes its own password.
type ChangePasswordInput struct {
	Actor           *TokenIdentity
	TargetID        int64
	TargetKind      entity.PrincipalKind
	CurrentPassword string
	NewPassword     string
}

// ResetPasswordInput finishes the forgot-password flow.
type ResetPasswordInput struct {
	Email       string
	Code        string
	NewPassword string
}

// --- Output DTOs ---

// PrincipalSummary is the public view of a principal. It never carries the password hash.
type PrincipalSummary struct {
	ID          int64
	Username    string
	DisplayName string
	Email       string
	IsActive    bool
	Status      entity.UserStatus // empty for operators
	Kind        entity.PrincipalKind
	LastLogin   *time.Time
	Permissions []string
}

// NewPrincipalSummary projects a principal and derives its permissions.
func NewPrincipalSummary(p *entity.Principal) *PrincipalSummary {
	if p == nil {
		return nil
	}

	return &PrincipalSummary{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		IsActive:    p.IsActive,
		Status:      p.Status,
		Kind:        p.Kind,
		LastLogin:   p.LastLogin,
		Permissions: entity.DerivePermissions(p).ToStrings(),
	}
}

// SessionOutput is returned by a successful login.
type SessionOutput struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64 // access token lifetime in seconds
	Principal    *PrincipalSummary
}

// RefreshOutput is returned by a successful refresh. RefreshToken is only set when the
// refresh policy rotates it.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int64
}

// TokenIdentity is what a verified access token says about its bearer.
type TokenIdentity struct {
	PrincipalID int64
	Username    string
	Kind        entity.PrincipalKind
	Contact     string
}

// ForgotPasswordOutput is identical for every request.
type ForgotPasswordOutput struct {
	Message string
}

// --- Interfaces ---

// CredentialResolver turns login credentials into a principal.
// A nil principal with a nil error means the credentials did not match; the error is reserved
// for store failures.
type CredentialResolver interface {
	AuthenticateUser(ctx context.Context, identifier, password string) (*entity.Principal, error)
	AuthenticateOperator(ctx context.Context, identifier, password string) (*entity.Principal, error)

	// Resolve tries users first, then operators, and returns ErrInvalidCredentials when neither matched.
	Resolve(ctx context.Context, identifier, password string) (*entity.Principal, error)
}

// SessionUsecase issues and checks token pairs.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)
	IssueSession(ctx context.Context, principal *entity.Principal) (*SessionOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// VerifyAccessToken checks an access token without touching the store.
	VerifyAccessToken(ctx context.Context, accessToken string) (*TokenIdentity, error)

	// CurrentPrincipal reloads the bearer from the store. Inactive principals yield ErrTokenInvalid.
	CurrentPrincipal(ctx context.Context, identity *TokenIdentity) (*entity.Principal, error)
}

// PasswordUsecase owns every mutation of a stored password hash.
type PasswordUsecase interface {
	ChangePassword(ctx context.Context, input ChangePasswordInput) error
	ForgotPassword(ctx context.Context, email string) *ForgotPasswordOutput
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
