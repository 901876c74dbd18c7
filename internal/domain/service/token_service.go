package service

import (
	"time"

	"radiusmgr/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType discriminates access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenSubject is the identity embedded into both tokens of a session.
type TokenSubject struct {
	PrincipalID int64
	Kind        entity.PrincipalKind
	Username    string
	Contact     string // email, or username when the principal has none
}

// TokenClaims defines the custom claims for the JWT tokens. Subject carries the username.
type TokenClaims struct {
	PrincipalID int64                `json:"pid"`
	Kind        entity.PrincipalKind `json:"kind"`
	Contact     string               `json:"email,omitempty"`
	Type        TokenType            `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying signed tokens.
type TokenService interface {
	// Issue signs a token of the given type that expires after ttl.
	Issue(subject *TokenSubject, tokenType TokenType, ttl time.Duration) (string, error)

	// Verify returns the claims only if the signature, expiry and type all check out.
	// Any failure returns ErrTokenInvalid and nil claims.
	Verify(tokenString string, expected TokenType) (*TokenClaims, error)

	// AccessTTL returns the configured lifetime of access tokens.
	AccessTTL() time.Duration

	// RefreshTTL returns the configured lifetime of refresh tokens.
	RefreshTTL() time.Duration
}
