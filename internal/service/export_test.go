package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filevault/internal/category"
	"filevault/internal/events"
	"filevault/internal/logger"
	"filevault/internal/model"
	repoMocks "filevault/internal/repository/mocks"
	"filevault/internal/storage"
	storeMocks "filevault/internal/storage/mocks"
)

func exportFixture(t *testing.T, store storage.Storage) (*repoMocks.MockFileRepository, ExportService) {
	t.Helper()
	mRepo := new(repoMocks.MockFileRepository)
	catalog := NewCatalogService(mRepo, events.Noop{}, 0, logger.Discard())
	msk := time.FixedZone("MSK", 3*3600)
	clock := ClockFunc(func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) })
	return mRepo, NewExportService(catalog, store, clock, msk, logger.Discard())
}

func TestExportService_Build(t *testing.T) {
	ctx := context.Background()
	mRepo, svc := exportFixture(t, nil)

	desc, tags := "Q1, final", "finance"
	mRepo.On("ListByOwner", ctx, int64(1)).Return([]model.FileRecord{
		{
			FileName:    "report.pdf",
			FileSize:    1572864,
			FileType:    "pdf",
			Category:    category.Documents,
			UploadedAt:  time.Date(2026, 2, 28, 21, 30, 0, 0, time.UTC),
			Description: &desc,
			Tags:        &tags,
		},
		{FileName: "app.apk", FileSize: 1000, FileType: "apk", Category: category.APK, UploadedAt: time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)},
	}, nil)

	exp, err := svc.Build(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, "files_export_20260301_130000.csv", exp.FileName)
	assert.Equal(t, 2, exp.Rows)

	rows, err := csv.NewReader(bytes.NewReader(exp.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, []string{"report.pdf", "1.50", "pdf", "Документы", "01.03.2026 00:30", "Q1, final", "finance"}, rows[1])
	assert.Equal(t, []string{"app.apk", "0.00", "apk", "Android приложения", "05.01.2026 11:00", "", ""}, rows[2])
}

func TestExportService_BuildPropagatesFault(t *testing.T) {
	ctx := context.Background()
	mRepo, svc := exportFixture(t, nil)
	mRepo.On("ListByOwner", ctx, int64(1)).Return(nil, errors.New("down"))

	exp, err := svc.Build(ctx, 1)

	assert.Nil(t, exp)
	assert.ErrorIs(t, err, ErrStorageFault)
}

func TestExportService_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		_, svc := exportFixture(t, nil)
		_, err := svc.Upload(ctx, 1)
		assert.ErrorIs(t, err, ErrExportStorageDisabled)
	})

	t.Run("uploads and presigns", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo, svc := exportFixture(t, mStore)
		mRepo.On("ListByOwner", ctx, int64(1)).Return([]model.FileRecord{}, nil)

		var uploaded string
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "exports/1/") && strings.HasSuffix(key, "/files_export_20260301_130000.csv")
		}), mock.Anything, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "text/csv; charset=utf-8" && opt.Metadata["owner-id"] == "1"
		})).Return(func(_ context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
			b, _ := io.ReadAll(r)
			uploaded = string(b)
			return storage.ObjectInfo{Key: key, Size: opt.Size}
		}, nil)
		mStore.On("PresignGet", ctx, mock.Anything, exportURLTTL).Return("https://minio.local/exports/x.csv?sig=1", nil)

		res, err := svc.Upload(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "https://minio.local/exports/x.csv?sig=1", res.URL)
		assert.Equal(t, 0, res.Rows)
		assert.Contains(t, uploaded, "Название файла")
		mStore.AssertExpectations(t)
	})

	t.Run("presign failure removes the object", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo, svc := exportFixture(t, mStore)
		mRepo.On("ListByOwner", ctx, int64(1)).Return([]model.FileRecord{}, nil)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{Key: "exports/1/k.csv"}, nil)
		mStore.On("PresignGet", ctx, "exports/1/k.csv", exportURLTTL).Return("", errors.New("signature error"))
		mStore.On("Delete", ctx, "exports/1/k.csv").Return(nil)

		_, err := svc.Upload(ctx, 1)

		assert.ErrorContains(t, err, "presign export: signature error")
		mStore.AssertExpectations(t)
	})

	t.Run("put failure", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo, svc := exportFixture(t, mStore)
		mRepo.On("ListByOwner", ctx, int64(1)).Return([]model.FileRecord{}, nil)
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, errors.New("bucket missing"))

		_, err := svc.Upload(ctx, 1)

		assert.ErrorContains(t, err, "upload export: bucket missing")
		mStore.AssertNotCalled(t, "PresignGet", mock.Anything, mock.Anything, mock.Anything)
	})
}
