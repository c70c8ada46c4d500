package service

import (
	"context"
	"log/slog"

	"filevault/internal/events"
)

// publish delivers e without failing the caller; the store write already committed.
func publish(ctx context.Context, pub events.Publisher, log *slog.Logger, e events.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, e); err != nil {
		log.Warn("event_publish_failed",
			slog.String("event_type", string(e.Type)),
			slog.String("error", err.Error()),
		)
	}
}
