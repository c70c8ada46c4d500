// Package events publishes catalogue lifecycle events for downstream consumers
// (notifications, audit). Publishing is best effort: callers log failures and move on.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type is the routing key of an event.
type Type string

const (
	FileRegistered  Type = "file.registered"
	FileDeleted     Type = "file.deleted"
	LinkCreated     Type = "share.created"
	LinkExpired     Type = "share.expired"
	LinkDeactivated Type = "share.deactivated"
	LinksSwept      Type = "share.swept"
)

// Event is the JSON body published for every lifecycle change.
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OwnerID    int64     `json:"owner_id,omitempty"`
	RecordID   int64     `json:"record_id,omitempty"`
	Token      string    `json:"token,omitempty"`
	Count      int64     `json:"count,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// New stamps an event of type t with a fresh id.
func New(t Type, at time.Time) Event {
	return Event{ID: uuid.NewString(), Type: t, OccurredAt: at.UTC()}
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
