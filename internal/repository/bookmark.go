package repository

import (
	"context"

	"filevault/internal/model"
)

// BookmarkRepository defines data access for saved web links. Deletes are soft.
type BookmarkRepository interface {
	// Create stores a bookmark. An active bookmark with the same owner and URL yields ErrDuplicateBookmark.
	Create(ctx context.Context, b *model.Bookmark) (int64, error)
	FindActiveByURL(ctx context.Context, ownerID int64, url string) (*model.Bookmark, error)
	FindByID(ctx context.Context, id, ownerID int64) (*model.Bookmark, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Bookmark, error)
	ListByCategory(ctx context.Context, ownerID int64, category string) ([]model.Bookmark, error)
	Categories(ctx context.Context, ownerID int64) ([]model.BookmarkCategoryCount, error)
	Search(ctx context.Context, ownerID int64, query string) ([]model.Bookmark, error)
	Deactivate(ctx context.Context, id, ownerID int64) (bool, error)
	Count(ctx context.Context, ownerID int64) (int64, error)
}
