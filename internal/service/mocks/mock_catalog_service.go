package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filevault/internal/category"
	"filevault/internal/model"
	"filevault/internal/service"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Register(ctx context.Context, in service.RegisterInput) (*model.FileRecord, error) {
	args := m.Called(ctx, in)
	return record(args.Get(0)), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, recordID int64) (*model.FileRecord, error) {
	args := m.Called(ctx, recordID)
	return record(args.Get(0)), args.Error(1)
}

func (m *MockCatalogService) GetOwned(ctx context.Context, recordID, ownerID int64) (*model.FileRecord, error) {
	args := m.Called(ctx, recordID, ownerID)
	return record(args.Get(0)), args.Error(1)
}

func (m *MockCatalogService) FindByPlatformID(ctx context.Context, platformFileID string, ownerID int64) (*model.FileRecord, error) {
	args := m.Called(ctx, platformFileID, ownerID)
	return record(args.Get(0)), args.Error(1)
}

func (m *MockCatalogService) List(ctx context.Context, ownerID int64) ([]model.FileRecord, error) {
	args := m.Called(ctx, ownerID)
	return records(args.Get(0)), args.Error(1)
}

func (m *MockCatalogService) ListByCategory(ctx context.Context, ownerID int64, c category.Category) ([]model.FileRecord, error) {
	args := m.Called(ctx, ownerID, c)
	return records(args.Get(0)), args.Error(1)
}

func (m *MockCatalogService) Search(ctx context.Context, ownerID int64, query string) ([]model.FileRecord, error) {
	args := m.Called(ctx, ownerID, query)
	return records(args.Get(0)), args.Error(1)
}

func (m *MockCatalogService) CategorySummary(ctx context.Context, ownerID int64) ([]model.CategorySummary, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CategorySummary), args.Error(1)
}

func (m *MockCatalogService) Stats(ctx context.Context, ownerID int64) (model.CatalogStats, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(model.CatalogStats), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, recordID, ownerID int64) (bool, error) {
	args := m.Called(ctx, recordID, ownerID)
	return args.Bool(0), args.Error(1)
}

func record(v any) *model.FileRecord {
	if v == nil {
		return nil
	}
	return v.(*model.FileRecord)
}

func records(v any) []model.FileRecord {
	if v == nil {
		return nil
	}
	return v.([]model.FileRecord)
}
