package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filevault/internal/service"
)

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Build(ctx context.Context, ownerID int64) (*service.Export, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Export), args.Error(1)
}

func (m *MockExportService) Upload(ctx context.Context, ownerID int64) (*service.UploadedExport, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadedExport), args.Error(1)
}
