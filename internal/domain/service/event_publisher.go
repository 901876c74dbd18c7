package service

import (
	"context"
	"time"
)

// VerificationCodeEvent asks the mail worker to deliver a password reset code.
type VerificationCodeEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EventID   string    `json:"event_id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVerificationCode hands a reset code to the out-of-process delivery worker.
	PublishVerificationCode(ctx context.Context, event *VerificationCodeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
