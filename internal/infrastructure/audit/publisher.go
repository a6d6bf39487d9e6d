// Package audit publishes mutation events to the audit stream.
package audit

import (
	"context"
	"time"

	"github.com/sue-zadeh/fieldbase/pkg/constants"
)

// Event describes one audited mutation.
type Event struct {
	Type       constants.AuditEventType `json:"type"`
	Entity     string                   `json:"entity"`
	EntityID   int                      `json:"entity_id,omitempty"`
	ActorID    int                      `json:"actor_id,omitempty"`
	ActorEmail string                   `json:"actor_email,omitempty"`
	Detail     string                   `json:"detail,omitempty"`
	OccurredAt time.Time                `json:"occurred_at"`
}

// Publisher delivers audit events. Implementations must be safe for
// concurrent use; delivery is best effort and never blocks the request path
// on broker failures.
type Publisher interface {
	Publish(ctx context.Context, event Event)
	Close() error
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event. Used when no
// brokers are configured and in tests.
func NewNoopPublisher() Publisher { return noopPublisher{} }

func (noopPublisher) Publish(context.Context, Event) {}
func (noopPublisher) Close() error                   { return nil }
