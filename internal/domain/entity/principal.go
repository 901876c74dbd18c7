package entity

import "time"

// PrincipalKind tags which store a Principal was resolved from.
type PrincipalKind string

const (
	PrincipalKindUser     PrincipalKind = "USER"
	PrincipalKindOperator PrincipalKind = "OPERATOR"
)

// String returns the string representation of the kind.
func (k PrincipalKind) String() string {
	return string(k)
}

// IsValid checks if the kind is one of the known values.
func (k PrincipalKind) IsValid() bool {
	return k == PrincipalKindUser || k == PrincipalKindOperator
}

// Principal is an authenticated identity. It is a read-time projection over a User or an
// Operator row and is never persisted. Status is only meaningful for PrincipalKindUser.
type Principal struct {
	ID          int64
	Kind        PrincipalKind
	Username    string
	Email       string
	DisplayName string
	IsActive    bool
	Status      UserStatus
	LastLogin   *time.Time
}

// IsOperator reports whether the principal came from the operators store.
func (p *Principal) IsOperator() bool {
	return p.Kind == PrincipalKindOperator
}

// CanAuthenticate applies the per-kind activity rule.
func (p *Principal) CanAuthenticate() bool {
	switch p.Kind {
	case PrincipalKindOperator:
		return p.IsActive
	case PrincipalKindUser:
		return p.IsActive && p.Status == UserStatusActive
	default:
		return false
	}
}

// ContactAddress returns the email when known, otherwise the username.
func (p *Principal) ContactAddress() string {
	if p.Email != "" {
		return p.Email
	}

	return p.Username
}
