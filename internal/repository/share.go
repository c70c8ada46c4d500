package repository

import (
	"context"
	"time"

	"filevault/internal/model"
)

// ShareLinkRepository defines data access for share links.
// Links reference file records by id without a cascading relation.
type ShareLinkRepository interface {
	// Create stores a new link. A taken token yields ErrDuplicateToken.
	Create(ctx context.Context, l *model.ShareLink) error

	// FindActive returns an active link joined with its file's display fields.
	// Expiry is not checked here; inactive, unknown or orphaned links yield ErrNotFound.
	FindActive(ctx context.Context, token string) (*model.SharedFile, error)

	// Find returns the raw link row in any state.
	Find(ctx context.Context, token string) (*model.ShareLink, error)

	// ListByRecord returns the owner's links for one record, newest first.
	ListByRecord(ctx context.Context, recordID, ownerID int64) ([]model.ShareLink, error)

	// Expire deactivates the link if it is still active and expired at now.
	Expire(ctx context.Context, token string, now time.Time) (bool, error)

	// Deactivate switches an active link off regardless of expiry.
	Deactivate(ctx context.Context, token string, now time.Time) (bool, error)

	// SweepExpired deactivates every active link expired at now and returns how many changed.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}
