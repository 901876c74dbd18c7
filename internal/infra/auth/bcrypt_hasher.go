// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"
	"unicode/utf8"

	"radiusmgr/config"
	domainerrors "radiusmgr/internal/domain/errors"
	"radiusmgr/internal/domain/service"
	"radiusmgr/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once at startup so that lookups for unknown accounts still pay for
// one bcrypt comparison.
const dummyPassword = "radiusmgr-timing-equalizer"

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	policy    config.PasswordStrengthConfig
	dummyHash []byte
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength sections.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	var policy config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return newBcryptHasher(cost, policy)
}

// NewBcryptHasherWithCost returns a hasher with an explicit cost and the default policy.
func NewBcryptHasherWithCost(cost int) (service.PasswordHasher, error) {
	return newBcryptHasher(cost, config.PasswordStrengthConfig{})
}

func newBcryptHasher(cost int, policy config.PasswordStrengthConfig) (*bcryptHasher, error) {
	switch {
	case cost < bcrypt.MinCost:
		cost = bcrypt.DefaultCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}

	if policy.MinLength <= 0 {
		policy.MinLength = 8
	}
	if policy.MaxLength <= 0 || policy.MaxLength > 72 {
		policy.MaxLength = 72
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare timing equalizer hash")
	}

	return &bcryptHasher{
		cost:      cost,
		policy:    policy,
		dummyHash: dummy,
	}, nil
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt draws a fresh random salt on every call.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash failed")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash in constant time.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyCheck burns one comparison against the startup hash.
func (h *bcryptHasher) DummyCheck() {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(dummyPassword+"x"))
}

// ValidatePasswordStrength applies the configured policy to a new password.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.policy.MinLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at least %d characters long", h.policy.MinLength)
	}
	// bcrypt limits input to 72 bytes, not runes.
	if len(password) > h.policy.MaxLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "password must be at most %d bytes long", h.policy.MaxLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case h.policy.RequireUppercase && !hasUpper:
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one uppercase letter")
	case h.policy.RequireLowercase && !hasLower:
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one lowercase letter")
	case h.policy.RequireNumbers && !hasNumber:
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one number")
	case h.policy.RequireSpecial && !hasSpecial:
		return errors.Wrap(domainerrors.ErrPasswordStrength, "password must contain at least one special character")
	}

	return nil
}
