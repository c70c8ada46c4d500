package model

import (
	"time"

	"filevault/internal/category"
)

// MaxDefaultFileSize is the registration size limit used when none is configured (50 MiB).
const MaxDefaultFileSize int64 = 50 * 1024 * 1024

// OriginRef points back to the chat message a file was submitted in.
type OriginRef struct {
	ChatID    int64 `json:"chat_id"`
	MessageID int64 `json:"message_id"`
}

// FileRecord is the stored metadata of one file owned by one user.
// The file bytes stay on the chat platform and are referenced by PlatformFileID.
// This is a pure domain model with no database-specific dependencies or tags.
type FileRecord struct {
	ID             int64             `json:"record_id"`
	PlatformFileID string            `json:"platform_file_id"`
	FileName       string            `json:"file_name"`
	FileSize       int64             `json:"file_size"`
	FileType       string            `json:"file_type"`
	Category       category.Category `json:"category"`
	OwnerID        int64             `json:"owner_id"`
	UploadedAt     time.Time         `json:"uploaded_at"`
	Description    *string           `json:"description,omitempty"`
	Tags           *string           `json:"tags,omitempty"`
	Origin         *OriginRef        `json:"origin,omitempty"`
}

// OwnedBy reports whether the record belongs to ownerID.
func (f *FileRecord) OwnedBy(ownerID int64) bool {
	return f != nil && f.OwnerID == ownerID
}

// CategorySummary is the per-category aggregate of one owner's catalogue.
type CategorySummary struct {
	Category  category.Category `json:"category"`
	Count     int64             `json:"count"`
	TotalSize int64             `json:"total_size"`
}

// CatalogStats is the whole-catalogue aggregate of one owner.
type CatalogStats struct {
	TotalFiles int64 `json:"total_files"`
	TotalSize  int64 `json:"total_size"`
}
