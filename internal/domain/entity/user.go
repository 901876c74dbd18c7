// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserStatus is the lifecycle state of a subscriber account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
	UserStatusExpired   UserStatus = "EXPIRED"
)

// IsValid checks if the status is one of the known values.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended, UserStatusExpired:
		return true
	default:
		return false
	}
}

// User is a subscriber account as stored in the credential store.
type User struct {
	ID                int64      // Primary key of the users table.
	Username          string     // Unique login name, usually the RADIUS User-Name.
	Email             string     // Optional contact address, unique among users when present.
	FullName          string     // Display name shown in the management UI.
	PasswordHash      string     // bcrypt hash of the web-portal password.
	IsActive          bool       // Administrative on/off switch.
	Status            UserStatus // Billing lifecycle state.
	LastLogin         *time.Time // Last successful web login, nil if never.
	PasswordChangedAt *time.Time // Last time PasswordHash was replaced.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CanAuthenticate reports whether the account state allows logging in.
func (u *User) CanAuthenticate() bool {
	return u.IsActive && u.Status == UserStatusActive
}

// Principal projects the stored record into a normalized identity.
func (u *User) Principal() *Principal {
	return &Principal{
		ID:          u.ID,
		Kind:        PrincipalKindUser,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.FullName,
		IsActive:    u.IsActive,
		Status:      u.Status,
		LastLogin:   u.LastLogin,
	}
}
