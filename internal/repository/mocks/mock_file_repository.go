package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filevault/internal/category"
	"filevault/internal/model"
)

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, f *model.FileRecord) (int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id int64) (*model.FileRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileRecord), args.Error(1)
}

func (m *MockFileRepository) FindByPlatformID(ctx context.Context, platformFileID string, ownerID int64) (*model.FileRecord, error) {
	args := m.Called(ctx, platformFileID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileRecord), args.Error(1)
}

func (m *MockFileRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.FileRecord, error) {
	args := m.Called(ctx, ownerID)
	return records(args.Get(0)), args.Error(1)
}

func (m *MockFileRepository) ListByOwnerAndCategory(ctx context.Context, ownerID int64, c category.Category) ([]model.FileRecord, error) {
	args := m.Called(ctx, ownerID, c)
	return records(args.Get(0)), args.Error(1)
}

func (m *MockFileRepository) Search(ctx context.Context, ownerID int64, query string) ([]model.FileRecord, error) {
	args := m.Called(ctx, ownerID, query)
	return records(args.Get(0)), args.Error(1)
}

func (m *MockFileRepository) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileRepository) CategorySummary(ctx context.Context, ownerID int64) ([]model.CategorySummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategorySummary), args.Error(1)
}

func (m *MockFileRepository) Stats(ctx context.Context, ownerID int64) (model.CatalogStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(model.CatalogStats), args.Error(1)
}

func records(v any) []model.FileRecord {
	if v == nil {
		return nil
	}
	return v.([]model.FileRecord)
}
