package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"filevault/internal/model"
)

type MockShareLinkRepository struct {
	mock.Mock
}

func (m *MockShareLinkRepository) Create(ctx context.Context, l *model.ShareLink) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockShareLinkRepository) FindActive(ctx context.Context, token string) (*model.SharedFile, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SharedFile), args.Error(1)
}

func (m *MockShareLinkRepository) Find(ctx context.Context, token string) (*model.ShareLink, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) ListByRecord(ctx context.Context, recordID, ownerID int64) ([]model.ShareLink, error) {
	args := m.Called(ctx, recordID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShareLink), args.Error(1)
}

func (m *MockShareLinkRepository) Expire(ctx context.Context, token string, now time.Time) (bool, error) {
	args := m.Called(ctx, token, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareLinkRepository) Deactivate(ctx context.Context, token string, now time.Time) (bool, error) {
	args := m.Called(ctx, token, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockShareLinkRepository) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
