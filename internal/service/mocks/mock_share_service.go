package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"filevault/internal/model"
)

type MockShareService struct {
	mock.Mock
}

func (m *MockShareService) Create(ctx context.Context, token, platformFileID string, ownerID, recordID int64) error {
	args := m.Called(ctx, token, platformFileID, ownerID, recordID)
	return args.Error(0)
}

func (m *MockShareService) Share(ctx context.Context, recordID, ownerID int64) (*model.ShareLink, error) {
	args := m.Called(ctx, recordID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareLink), args.Error(1)
}

func (m *MockShareService) Resolve(ctx context.Context, token string) (*model.SharedFile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SharedFile), args.Error(1)
}

func (m *MockShareService) Deactivate(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareService) DeactivateOwned(ctx context.Context, token string, ownerID int64) (bool, error) {
	args := m.Called(ctx, token, ownerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareService) SweepExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockShareService) Inspect(ctx context.Context, token string) (*model.ShareLink, model.LinkState, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Get(1).(model.LinkState), args.Error(2)
	}
	return args.Get(0).(*model.ShareLink), args.Get(1).(model.LinkState), args.Error(2)
}

func (m *MockShareService) ListByRecord(ctx context.Context, recordID, ownerID int64) ([]model.ShareLink, error) {
	args := m.Called(ctx, recordID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShareLink), args.Error(1)
}

func (m *MockShareService) URL(token string) string {
	args := m.Called(token)
	return args.String(0)
}
