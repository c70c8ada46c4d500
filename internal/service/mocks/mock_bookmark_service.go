package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filevault/internal/model"
	"filevault/internal/service"
)

type MockBookmarkService struct {
	mock.Mock
}

func (m *MockBookmarkService) Add(ctx context.Context, in service.AddBookmarkInput) (*model.Bookmark, error) {
	args := m.Called(ctx, in)
	return bookmark(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkService) FindByURL(ctx context.Context, ownerID int64, rawURL string) (*model.Bookmark, error) {
	args := m.Called(ctx, ownerID, rawURL)
	return bookmark(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkService) Get(ctx context.Context, id, ownerID int64) (*model.Bookmark, error) {
	args := m.Called(ctx, id, ownerID)
	return bookmark(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkService) List(ctx context.Context, ownerID int64) ([]model.Bookmark, error) {
	args := m.Called(ctx, ownerID)
	return bookmarks(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkService) ListByCategory(ctx context.Context, ownerID int64, category string) ([]model.Bookmark, error) {
	args := m.Called(ctx, ownerID, category)
	return bookmarks(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkService) Categories(ctx context.Context, ownerID int64) ([]model.BookmarkCategoryCount, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BookmarkCategoryCount), args.Error(1)
}

func (m *MockBookmarkService) Search(ctx context.Context, ownerID int64, query string) ([]model.Bookmark, error) {
	args := m.Called(ctx, ownerID, query)
	return bookmarks(args.Get(0)), args.Error(1)
}

func (m *MockBookmarkService) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookmarkService) Stats(ctx context.Context, ownerID int64) (service.BookmarkStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(service.BookmarkStats), args.Error(1)
}

func bookmark(v any) *model.Bookmark {
	if v == nil {
		return nil
	}
	return v.(*model.Bookmark)
}

func bookmarks(v any) []model.Bookmark {
	if v == nil {
		return nil
	}
	return v.([]model.Bookmark)
}
