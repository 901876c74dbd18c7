package model

import "time"

// VerificationCodeModel mirrors the 'password_reset_codes' table.
type VerificationCodeModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	CodeHash  string    `gorm:"type:char(64);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time

	FailedAttempts int `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (VerificationCodeModel) TableName() string {
	return "password_reset_codes"
}
