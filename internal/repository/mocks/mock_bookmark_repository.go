package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filevault/internal/model"
)

type MockBookmarkRepository struct {
	mock.Mock
}

func (m *MockBookmarkRepository) Create(ctx context.Context, b *model.Bookmark) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookmarkRepository) FindActiveByURL(ctx context.Context, ownerID int64, url string) (*model.Bookmark, error) {
	args := m.Called(ctx, ownerID, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) FindByID(ctx context.Context, id, ownerID int64) (*model.Bookmark, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Bookmark), args.Error(1)
}

func (m *MockBookmarkRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Bookmark, error) {
	args := m.Called(ctx, ownerID)
	return bookmarks(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkRepository) ListByCategory(ctx context.Context, ownerID int64, category string) ([]model.Bookmark, error) {
	args := m.Called(ctx, ownerID, category)
	return bookmarks(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkRepository) Categories(ctx context.Context, ownerID int64) ([]model.BookmarkCategoryCount, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BookmarkCategoryCount), args.Error(1)
}

func (m *MockBookmarkRepository) Search(ctx context.Context, ownerID int64, query string) ([]model.Bookmark, error) {
	args := m.Called(ctx, ownerID, query)
	return bookmarks(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkRepository) Deactivate(ctx context.Context, id, ownerID int64) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkRepository) Count(ctx context.Context, ownerID int64) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func bookmarks(v any) []model.Bookmark {
	if v == nil {
		return nil
	}
	return v.([]model.Bookmark)
}
