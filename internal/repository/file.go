package repository

import (
	"context"

	"filevault/internal/category"
	"filevault/internal/model"
)

// FileRepository defines data access for file records using SQL queries only.
// Every listing is scoped by owner and ordered newest upload first.
type FileRepository interface {
	// Create inserts a new record and returns its assigned id.
	// A platform file id already present anywhere yields ErrDuplicateFile.
	Create(ctx context.Context, f *model.FileRecord) (int64, error)

	// FindByID returns a record by id without any owner filter.
	FindByID(ctx context.Context, id int64) (*model.FileRecord, error)

	// FindByPlatformID returns the owner's record holding platformFileID.
	FindByPlatformID(ctx context.Context, platformFileID string, ownerID int64) (*model.FileRecord, error)

	ListByOwner(ctx context.Context, ownerID int64) ([]model.FileRecord, error)
	ListByOwnerAndCategory(ctx context.Context, ownerID int64, c category.Category) ([]model.FileRecord, error)

	// Search matches query as a case-insensitive substring of name, description, tags or type.
	Search(ctx context.Context, ownerID int64, query string) ([]model.FileRecord, error)

	// DeleteOwned removes the record only when both id and owner match, in one statement.
	// It reports whether a row was removed.
	DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error)

	CategorySummary(ctx context.Context, ownerID int64) ([]model.CategorySummary, error)
	Stats(ctx context.Context, ownerID int64) (model.CatalogStats, error)
}
