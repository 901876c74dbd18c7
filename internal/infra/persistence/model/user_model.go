// Package model holds the GORM persistence models of the credential store.
package model

import "time"

// UserModel mirrors the 'users' table. Only the columns the auth subsystem reads or writes are mapped.
type UserModel struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	Username          string  `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email             *string `gorm:"type:varchar(255);uniqueIndex"`
	FullName          string  `gorm:"type:varchar(128)"`
	PasswordHash      string  `gorm:"type:varchar(255);not null"`
	IsActive          bool    `gorm:"not null;default:true"`
	Status            string  `gorm:"type:varchar(16);not null;default:ACTIVE"`
	LastLogin         *time.Time
	PasswordChangedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// OperatorModel mirrors the 'operators' table.
type OperatorModel struct {
	ID                int64   `gorm:"primaryKey;autoIncrement"`
	Username          string  `gorm:"type:varchar(64);uniqueIndex;not null"`
	FirstName         string  `gorm:"type:varchar(64)"`
	LastName          string  `gorm:"type:varchar(64)"`
	Email             *string `gorm:"type:varchar(255)"`
	PasswordHash      string  `gorm:"type:varchar(255);not null"`
	IsActive          bool    `gorm:"not null;default:true"`
	LastLogin         *time.Time
	PasswordChangedAt *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OperatorModel) TableName() string {
	return "operators"
}
