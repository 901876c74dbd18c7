// Package constants holds identifiers shared between configuration and infrastructure.
package constants

// Pub/Sub provider names accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Message attributes set on every published event.
const (
	EventAttrType      = "event_type"
	EventAttrEventID   = "event_id"
	EventAttrRequestID = "request_id"

	EventTypeVerificationCode = "password_reset.code_issued"
)
