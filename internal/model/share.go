package model

import (
	"time"

	"filevault/internal/category"
)

// ShareLinkTTL is the fixed lifetime of every share link.
const ShareLinkTTL = 24 * time.Hour

// ShareLink is a time-bounded capability to fetch one file record without owning it.
type ShareLink struct {
	Token          string    `json:"token"`
	PlatformFileID string    `json:"platform_file_id"`
	OwnerID        int64     `json:"owner_id"`
	RecordID       int64     `json:"record_id"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	IsActive       bool      `json:"is_active"`
	// DeactivatedAt is set when the link leaves the active state, by any path.
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}

// ExpiredAt reports whether the link is past its expiry at now.
// The expiry instant itself counts as expired.
func (l *ShareLink) ExpiredAt(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}

// State classifies the link for audit purposes. An inactive link counts as
// explicitly deactivated only if it was switched off before its expiry.
func (l *ShareLink) State(now time.Time) LinkState {
	switch {
	case l.IsActive && !l.ExpiredAt(now):
		return LinkActive
	case l.IsActive:
		// still flagged but past expiry; resolve or sweep will flip it
		return LinkExpiredPending
	case l.DeactivatedAt != nil && l.DeactivatedAt.Before(l.ExpiresAt):
		return LinkInactive
	default:
		return LinkExpiredInactive
	}
}

// LinkState is the lifecycle state of a share link.
type LinkState string

const (
	LinkActive          LinkState = "active"
	LinkExpiredPending  LinkState = "expired_pending"
	LinkExpiredInactive LinkState = "expired_inactive"
	LinkInactive        LinkState = "inactive"
)

// SharedFile is a share link joined with the display fields of its file record.
type SharedFile struct {
	ShareLink
	FileName    string            `json:"file_name"`
	FileSize    int64             `json:"file_size"`
	FileType    string            `json:"file_type"`
	Category    category.Category `json:"category"`
	Description *string           `json:"description,omitempty"`
	Tags        *string           `json:"tags,omitempty"`
}
