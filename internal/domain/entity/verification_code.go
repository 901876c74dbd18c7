package entity

import "time"

// VerificationCode is a single-use password reset code bound to an email address.
// Only a keyed digest of the code is stored.
type VerificationCode struct {
	ID        int64
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time

	FailedAttempts int
}

// IsUsable reports whether the code can still be consumed at now.
func (c *VerificationCode) IsUsable(now time.Time) bool {
	return c.UsedAt == nil && now.Before(c.ExpiresAt)
}
