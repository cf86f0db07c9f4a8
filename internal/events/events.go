// Package events publishes auth domain events to a message broker.
// Publishing is best-effort: a broker failure is logged and never surfaced
// to the client, and this service never consumes what it publishes.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// Event types emitted after each successful auth operation.
const (
	TypeUserSignedUp        = "user.signed_up"
	TypeUserLoggedIn        = "user.logged_in"
	TypeProfileImageUpdated = "user.profile_image_updated"
)

// Event is the payload delivered to the configured broker.
type Event struct {
	Type       string    `json:"type"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers a serialized event to a broker.
type Publisher interface {
	Publish(ctx context.Context, data []byte, attrs map[string]string) error
	Close() error
}

// Emitter serializes events and hands them to a Publisher.
type Emitter struct {
	publisher Publisher
	logger    *slog.Logger
}

// NewEmitter constructs an Emitter over the given publisher.
func NewEmitter(publisher Publisher, logger *slog.Logger) *Emitter {
	return &Emitter{publisher: publisher, logger: logger}
}

// Emit publishes an event of the given type for the given email. Failures
// are logged and swallowed.
func (e *Emitter) Emit(ctx context.Context, eventType, email string) {
	evt := Event{
		Type:       eventType,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		e.logger.Warn("auth event not serialized", "type", eventType, "error", err)
		return
	}

	if err := e.publisher.Publish(ctx, data, map[string]string{"type": eventType}); err != nil {
		e.logger.Warn("auth event not published", "type", eventType, "error", err)
	}
}

// Close closes the underlying publisher.
func (e *Emitter) Close() error {
	return e.publisher.Close()
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, data []byte, attrs map[string]string) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
