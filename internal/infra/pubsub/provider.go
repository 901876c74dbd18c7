// Package pubsub publishes password reset codes to the out-of-process mail worker.
package pubsub

import (
	"context"
	"log/slog"

	"radiusmgr/config"
	"radiusmgr/internal/domain/constants"
	"radiusmgr/internal/domain/service"
	"radiusmgr/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher is used when no provider is configured. Codes are dropped.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishVerificationCode(ctx context.Context, event *service.VerificationCodeEvent) error {
	p.logger.WarnContext(ctx, "[NoopPubSub] Event publishing disabled, verification code not delivered",
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.EventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// eventAttributes are the routing attributes shared by every provider. The code itself only
// travels in the message body.
func eventAttributes(event *service.VerificationCodeEvent) map[string]string {
	attributes := map[string]string{
		constants.EventAttrType:    constants.EventTypeVerificationCode,
		constants.EventAttrEventID: event.EventID,
	}
	if event.RequestID != "" {
		attributes[constants.EventAttrRequestID] = event.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
