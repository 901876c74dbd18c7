package entity

import (
	"strings"
	"time"
)

// Operator is an administrative account of the management backend.
// Operators have no status column; IsActive alone gates them.
type Operator struct {
	ID                int64
	Username          string
	FirstName         string
	LastName          string
	Email             string
	PasswordHash      string
	IsActive          bool
	LastLogin         *time.Time
	PasswordChangedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// DisplayName joins first and last name, falling back to the username.
func (o *Operator) DisplayName() string {
	name := strings.TrimSpace(o.FirstName + " " + o.LastName)
	if name == "" {
		return o.Username
	}

	return name
}

// CanAuthenticate reports whether the operator may log in.
func (o *Operator) CanAuthenticate() bool {
	return o.IsActive
}

// Principal projects the stored record into a normalized identity.
func (o *Operator) Principal() *Principal {
	return &Principal{
		ID:          o.ID,
		Kind:        PrincipalKindOperator,
		Username:    o.Username,
		Email:       o.Email,
		DisplayName: o.DisplayName(),
		IsActive:    o.IsActive,
		LastLogin:   o.LastLogin,
	}
}
