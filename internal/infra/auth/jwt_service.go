package auth

import (
	"time"

	"radiusmgr/config"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/domain/service"
	"radiusmgr/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// minSecretLength is the shortest accepted HS256 signing key, in bytes.
const minSecretLength = 32

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// A single secret signs both token types; the "type" claim keeps them apart.
type jwtService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It refuses to start without a usable secret or with an access TTL that outlives the refresh TTL.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil {
		return nil, errors.New("auth configuration is required")
	}

	return newJWTService(cfg.Auth, time.Now)
}

func newJWTService(cfg *config.AuthConfig, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("auth.secretKey must be provided")
	}
	if len(cfg.SecretKey) < minSecretLength {
		return nil, errors.Errorf("auth.secretKey must be at least %d bytes", minSecretLength)
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	if cfg.AccessTokenTTL >= cfg.RefreshTokenTTL {
		return nil, errors.Errorf("access token TTL (%s) must be shorter than refresh token TTL (%s)",
			cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	}

	return &jwtService{
		secret:     []byte(cfg.SecretKey),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		now:        now,
	}, nil
}

// Issue signs a token of the given type for the subject.
func (s *jwtService) Issue(subject *service.TokenSubject, tokenType service.TokenType, ttl time.Duration) (string, error) {
	if subject == nil || subject.PrincipalID <= 0 || !subject.Kind.IsValid() {
		return "", errors.New("token subject is incomplete")
	}
	if tokenType != service.TokenTypeAccess && tokenType != service.TokenTypeRefresh {
		return "", errors.Errorf("unknown token type %q", tokenType)
	}
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	now := s.now()
	claims := &service.TokenClaims{
		PrincipalID: subject.PrincipalID,
		Kind:        subject.Kind,
		Contact:     subject.Contact,
		Type:        tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.Username,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses and validates a token, then checks that it is of the expected type.
func (s *jwtService) Verify(tokenString string, expected service.TokenType) (*service.TokenClaims, error) {
	if tokenString == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token is empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &service.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, err.Error())
	}
	if !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token is not valid")
	}

	if claims.Type != expected {
		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid, "expected %s token, got %q", expected, claims.Type)
	}
	if claims.PrincipalID <= 0 || !claims.Kind.IsValid() || claims.Subject == "" {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token identity claims are incomplete")
	}

	return claims, nil
}

// AccessTTL returns the configured access token lifetime.
func (s *jwtService) AccessTTL() time.Duration {
	return s.accessTTL
}

// RefreshTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTTL() time.Duration {
	return s.refreshTTL
}
