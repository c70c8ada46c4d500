package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filevault/internal/category"
	"filevault/internal/http/middleware"
	"filevault/internal/model"
	"filevault/internal/service"
	serviceMocks "filevault/internal/service/mocks"
)

const owner int64 = 42

var faultErr = fmt.Errorf("list_files: %w: connection refused", service.ErrStorageFault)

type fakeSweeper struct {
	n   int64
	err error
}

func (f fakeSweeper) RunOnce(context.Context) (int64, error) { return f.n, f.err }

type testServices struct {
	catalog   *serviceMocks.MockCatalogService
	shares    *serviceMocks.MockShareService
	exports   *serviceMocks.MockExportService
	bookmarks *serviceMocks.MockBookmarkService
}

func newTestApp(t *testing.T, sweeper SweepRunner) (*fiber.App, testServices) {
	t.Helper()
	m := testServices{
		catalog:   new(serviceMocks.MockCatalogService),
		shares:    new(serviceMocks.MockShareService),
		exports:   new(serviceMocks.MockExportService),
		bookmarks: new(serviceMocks.MockBookmarkService),
	}
	t.Cleanup(func() {
		m.catalog.AssertExpectations(t)
		m.shares.AssertExpectations(t)
		m.exports.AssertExpectations(t)
		m.bookmarks.AssertExpectations(t)
	})
	if sweeper == nil {
		sweeper = fakeSweeper{}
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, nil, Services{
		Catalog:   m.catalog,
		Shares:    m.shares,
		Exports:   m.exports,
		Bookmarks: m.bookmarks,
		Sweeper:   sweeper,
	})
	return app, m
}

func do(t *testing.T, app *fiber.App, method, target string, body any, ownerID int64) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ownerID != 0 {
		req.Header.Set(middleware.OwnerIDHeader, fmt.Sprint(ownerID))
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body := decode[map[string]string](t, resp)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOwnerRequired(t *testing.T) {
	app, _ := newTestApp(t, nil)

	for _, target := range []string{"/files", "/files/1", "/bookmarks", "/files/stats"} {
		resp := do(t, app, http.MethodGet, target, nil, 0)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, target)
		assert.Equal(t, "OWNER_REQUIRED", decode[errorPayload](t, resp).Error.Code)
	}
}

func TestRegisterFile(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		rec := &model.FileRecord{ID: 7, PlatformFileID: "abc", FileName: "report.pdf", FileType: "pdf", Category: category.Documents, OwnerID: owner}
		m.catalog.On("Register", mock.Anything, mock.MatchedBy(func(in service.RegisterInput) bool {
			return in.OwnerID == owner && in.PlatformFileID == "abc" && in.Kind == category.KindDocument && in.FileSize == 2048
		})).Return(rec, nil).Once()

		resp := do(t, app, http.MethodPost, "/files", map[string]any{
			"platform_file_id": "abc", "file_name": "report.pdf", "file_size": 2048,
		}, owner)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		got := decode[model.FileRecord](t, resp)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, category.Documents, got.Category)
	})

	t.Run("error mapping", func(t *testing.T) {
		tests := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"duplicate", service.ErrDuplicateFile, http.StatusConflict, "DUPLICATE_FILE"},
			{"too large", service.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
			{"invalid", fmt.Errorf("%w: platform file id is required", service.ErrInvalidInput), http.StatusBadRequest, "INVALID_INPUT"},
			{"write fault", fmt.Errorf("register: %w: boom", service.ErrStorageFault), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				app, m := newTestApp(t, nil)
				m.catalog.On("Register", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

				resp := do(t, app, http.MethodPost, "/files", map[string]any{"platform_file_id": "abc", "file_size": 1}, owner)

				assert.Equal(t, tt.status, resp.StatusCode)
				assert.Equal(t, tt.code, decode[errorPayload](t, resp).Error.Code)
			})
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		app, _ := newTestApp(t, nil)

		resp := do(t, app, http.MethodPost, "/files", map[string]any{"platform_file_id": "abc", "kind": "sticker"}, owner)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_KIND", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		app, _ := newTestApp(t, nil)
		req := httptest.NewRequest(http.MethodPost, "/files", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.OwnerIDHeader, "42")

		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_BODY", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestListFiles(t *testing.T) {
	items := []model.FileRecord{{ID: 2, FileName: "b.png"}, {ID: 1, FileName: "a.png"}}

	t.Run("all", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.catalog.On("List", mock.Anything, owner).Return(items, nil).Once()

		resp := do(t, app, http.MethodGet, "/files", nil, owner)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[fileListResponse](t, resp)
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, int64(2), got.Items[0].ID)
	})

	t.Run("by category", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.catalog.On("ListByCategory", mock.Anything, owner, category.Images).Return(items, nil).Once()

		resp := do(t, app, http.MethodGet, "/files?category=images", nil, owner)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown category", func(t *testing.T) {
		app, _ := newTestApp(t, nil)

		resp := do(t, app, http.MethodGet, "/files?category=memes", nil, owner)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_CATEGORY", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("search wins over category", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.catalog.On("Search", mock.Anything, owner, "report").Return([]model.FileRecord{}, nil).Once()

		resp := do(t, app, http.MethodGet, "/files?q=report&category=images", nil, owner)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[fileListResponse](t, resp)
		assert.NotNil(t, got.Items)
		assert.Zero(t, got.Total)
	})

	t.Run("store fault degrades to empty data", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.catalog.On("List", mock.Anything, owner).Return([]model.FileRecord{}, faultErr).Once()

		resp := do(t, app, http.MethodGet, "/files", nil, owner)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		var body struct {
			Error errorEnvelope    `json:"error"`
			Data  fileListResponse `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "STORAGE_UNAVAILABLE", body.Error.Code)
		assert.NotNil(t, body.Data.Items)
		assert.Empty(t, body.Data.Items)
	})
}

func TestGetFile(t *testing.T) {
	tests := []struct {
		name   string
		ret    *model.FileRecord
		err    error
		status int
		code   string
	}{
		{"found", &model.FileRecord{ID: 5, OwnerID: owner}, nil, http.StatusOK, ""},
		{"not found", nil, service.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"other owner", nil, service.ErrUnauthorized, http.StatusForbidden, "FORBIDDEN"},
		{"fault", nil, faultErr, http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m := newTestApp(t, nil)
			m.catalog.On("GetOwned", mock.Anything, int64(5), owner).Return(tt.ret, tt.err).Once()

			resp := do(t, app, http.MethodGet, "/files/5", nil, owner)

			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.code != "" {
				assert.Equal(t, tt.code, decode[errorPayload](t, resp).Error.Code)
			}
		})
	}

	t.Run("invalid id", func(t *testing.T) {
		app, _ := newTestApp(t, nil)

		resp := do(t, app, http.MethodGet, "/files/abc", nil, owner)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "INVALID_ID", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestDeleteFile(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.catalog.On("Delete", mock.Anything, int64(5), owner).Return(true, nil).Once()

		resp := do(t, app, http.MethodDelete, "/files/5", nil, owner)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not owned or missing", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.catalog.On("Delete", mock.Anything, int64(5), owner).Return(false, nil).Once()

		resp := do(t, app, http.MethodDelete, "/files/5", nil, owner)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("fault", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.catalog.On("Delete", mock.Anything, int64(5), owner).Return(false, faultErr).Once()

		resp := do(t, app, http.MethodDelete, "/files/5", nil, owner)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestFileAggregates(t *testing.T) {
	app, m := newTestApp(t, nil)
	m.catalog.On("Stats", mock.Anything, owner).Return(model.CatalogStats{TotalFiles: 3, TotalSize: 1024}, nil).Once()
	m.catalog.On("CategorySummary", mock.Anything, owner).Return([]model.CategorySummary{
		{Category: category.Images, Count: 2, TotalSize: 1000},
		{Category: category.Documents, Count: 1, TotalSize: 24},
	}, nil).Once()

	resp := do(t, app, http.MethodGet, "/files/stats", nil, owner)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(3), decode[model.CatalogStats](t, resp).TotalFiles)

	resp = do(t, app, http.MethodGet, "/files/categories", nil, owner)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	cats := decode[categoryListResponse](t, resp)
	require.Len(t, cats.Items, 2)
	assert.Equal(t, category.Images, cats.Items[0].Category)
	assert.Equal(t, "Изображения", cats.Items[0].DisplayName)
}

func TestExportFiles(t *testing.T) {
	t.Run("csv download", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.exports.On("Build", mock.Anything, owner).Return(&service.Export{
			FileName: "files_export_20260301_100000.csv",
			Rows:     1,
			Data:     []byte("header\nrow\n"),
		}, nil).Once()

		resp := do(t, app, http.MethodGet, "/files/export", nil, owner)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "files_export_20260301_100000.csv")
		assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get(fiber.HeaderContentType))
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "header\nrow\n", string(body))
	})

	t.Run("upload", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.exports.On("Upload", mock.Anything, owner).Return(&service.UploadedExport{
			FileName: "files_export_20260301_100000.csv",
			URL:      "https://minio.local/presigned",
			Rows:     1,
		}, nil).Once()

		resp := do(t, app, http.MethodGet, "/files/export?upload=true", nil, owner)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "https://minio.local/presigned", decode[service.UploadedExport](t, resp).URL)
	})

	t.Run("upload without storage", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.exports.On("Upload", mock.Anything, owner).Return(nil, service.ErrExportStorageDisabled).Once()

		resp := do(t, app, http.MethodGet, "/files/export?upload=true", nil, owner)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "EXPORT_STORAGE_DISABLED", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestCreateShare(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	link := &model.ShareLink{Token: "113a3ffa210d", RecordID: 5, OwnerID: owner, CreatedAt: created, ExpiresAt: created.Add(model.ShareLinkTTL), IsActive: true}

	t.Run("created", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.shares.On("Share", mock.Anything, int64(5), owner).Return(link, nil).Once()
		m.shares.On("URL", "113a3ffa210d").Return("https://t.me/vault_bot?start=file_113a3ffa210d").Once()

		resp := do(t, app, http.MethodPost, "/files/5/shares", nil, owner)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		got := decode[shareResponse](t, resp)
		assert.Equal(t, "113a3ffa210d", got.Token)
		assert.Equal(t, "https://t.me/vault_bot?start=file_113a3ffa210d", got.URL)
		assert.True(t, got.ExpiresAt.Equal(created.Add(24*time.Hour)))
	})

	t.Run("not owner", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.shares.On("Share", mock.Anything, int64(5), owner).Return(nil, service.ErrUnauthorized).Once()

		resp := do(t, app, http.MethodPost, "/files/5/shares", nil, owner)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestListShares(t *testing.T) {
	app, m := newTestApp(t, nil)
	m.shares.On("ListByRecord", mock.Anything, int64(5), owner).Return([]model.ShareLink{{Token: "t1"}, {Token: "t2"}}, nil).Once()
	m.shares.On("URL", mock.Anything).Return("").Twice()

	resp := do(t, app, http.MethodGet, "/files/5/shares", nil, owner)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[shareListResponse](t, resp)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "t1", got.Items[0].Token)
}

func TestResolveShare(t *testing.T) {
	t.Run("no owner header needed", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		shared := &model.SharedFile{ShareLink: model.ShareLink{Token: "tok", OwnerID: 1}, FileName: "report.pdf"}
		m.shares.On("Resolve", mock.Anything, "tok").Return(shared, nil).Once()
		m.shares.On("URL", "tok").Return("").Once()

		resp := do(t, app, http.MethodGet, "/shares/tok", nil, 0)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[map[string]any](t, resp)
		assert.Equal(t, "report.pdf", got["file_name"])
		assert.Equal(t, "tok", got["token"])
	})

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"unknown", service.ErrNotFound, "NOT_FOUND"},
		{"expired", service.ErrExpired, "LINK_EXPIRED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m := newTestApp(t, nil)
			m.shares.On("Resolve", mock.Anything, "tok").Return(nil, tt.err).Once()

			resp := do(t, app, http.MethodGet, "/shares/tok", nil, 0)

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, tt.code, decode[errorPayload](t, resp).Error.Code)
		})
	}
}

func TestShareState(t *testing.T) {
	link := &model.ShareLink{Token: "tok", OwnerID: owner}

	t.Run("owner", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.shares.On("Inspect", mock.Anything, "tok").Return(link, model.LinkExpiredPending, nil).Once()

		resp := do(t, app, http.MethodGet, "/shares/tok/state", nil, owner)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, model.LinkExpiredPending, decode[linkStateResponse](t, resp).State)
	})

	t.Run("stranger", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.shares.On("Inspect", mock.Anything, "tok").Return(link, model.LinkActive, nil).Once()

		resp := do(t, app, http.MethodGet, "/shares/tok/state", nil, owner+1)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestDeactivateShare(t *testing.T) {
	tests := []struct {
		name   string
		ok     bool
		err    error
		status int
	}{
		{"deactivated", true, nil, http.StatusNoContent},
		{"already inactive", false, nil, http.StatusNotFound},
		{"stranger", false, service.ErrUnauthorized, http.StatusForbidden},
		{"unknown", false, service.ErrNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, m := newTestApp(t, nil)
			m.shares.On("DeactivateOwned", mock.Anything, "tok", owner).Return(tt.ok, tt.err).Once()

			resp := do(t, app, http.MethodDelete, "/shares/tok", nil, owner)

			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	t.Run("requires owner", func(t *testing.T) {
		app, _ := newTestApp(t, nil)

		resp := do(t, app, http.MethodDelete, "/shares/tok", nil, 0)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestSweepShares(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		app, _ := newTestApp(t, fakeSweeper{n: 3})

		resp := do(t, app, http.MethodPost, "/shares/sweep", nil, 0)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int64(3), decode[sweepResponse](t, resp).Expired)
	})

	t.Run("fault", func(t *testing.T) {
		app, _ := newTestApp(t, fakeSweeper{err: fmt.Errorf("sweep: %w: down", service.ErrStorageFault)})

		resp := do(t, app, http.MethodPost, "/shares/sweep", nil, 0)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestAddBookmark(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.bookmarks.On("Add", mock.Anything, mock.MatchedBy(func(in service.AddBookmarkInput) bool {
			return in.OwnerID == owner && in.URL == "go.dev/blog"
		})).Return(&model.Bookmark{ID: 1, URL: "https://go.dev/blog", Category: "general"}, nil).Once()

		resp := do(t, app, http.MethodPost, "/bookmarks", map[string]any{"url": "go.dev/blog"}, owner)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "https://go.dev/blog", decode[model.Bookmark](t, resp).URL)
	})

	t.Run("duplicate", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.bookmarks.On("Add", mock.Anything, mock.Anything).Return(nil, service.ErrDuplicateBookmark).Once()

		resp := do(t, app, http.MethodPost, "/bookmarks", map[string]any{"url": "go.dev"}, owner)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "DUPLICATE_BOOKMARK", decode[errorPayload](t, resp).Error.Code)
	})
}

func TestListBookmarks(t *testing.T) {
	items := []model.Bookmark{{ID: 1, Title: "Go blog"}}

	t.Run("by url", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.bookmarks.On("FindByURL", mock.Anything, owner, "https://go.dev/blog").Return(&items[0], nil).Once()

		resp := do(t, app, http.MethodGet, "/bookmarks?url=https://go.dev/blog", nil, owner)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, decode[bookmarkListResponse](t, resp).Total)
	})

	t.Run("by url missing", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.bookmarks.On("FindByURL", mock.Anything, owner, "https://go.dev").Return(nil, service.ErrNotFound).Once()

		resp := do(t, app, http.MethodGet, "/bookmarks?url=https://go.dev", nil, owner)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("search", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.bookmarks.On("Search", mock.Anything, owner, "go").Return(items, nil).Once()

		resp := do(t, app, http.MethodGet, "/bookmarks?q=go", nil, owner)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("category", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.bookmarks.On("ListByCategory", mock.Anything, owner, "news").Return(items, nil).Once()

		resp := do(t, app, http.MethodGet, "/bookmarks?category=news", nil, owner)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("fault", func(t *testing.T) {
		app, m := newTestApp(t, nil)
		m.bookmarks.On("List", mock.Anything, owner).Return([]model.Bookmark{}, faultErr).Once()

		resp := do(t, app, http.MethodGet, "/bookmarks", nil, owner)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}

func TestBookmarkAggregatesAndDelete(t *testing.T) {
	app, m := newTestApp(t, nil)
	cats := []model.BookmarkCategoryCount{{Category: "general", Count: 2}}
	m.bookmarks.On("Stats", mock.Anything, owner).Return(service.BookmarkStats{Total: 2, Categories: cats}, nil).Once()
	m.bookmarks.On("Categories", mock.Anything, owner).Return(cats, nil).Once()
	m.bookmarks.On("Get", mock.Anything, int64(9), owner).Return(&model.Bookmark{ID: 9}, nil).Once()
	m.bookmarks.On("Delete", mock.Anything, int64(9), owner).Return(true, nil).Once()
	m.bookmarks.On("Delete", mock.Anything, int64(10), owner).Return(false, nil).Once()

	resp := do(t, app, http.MethodGet, "/bookmarks/stats", nil, owner)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), decode[service.BookmarkStats](t, resp).Total)

	resp = do(t, app, http.MethodGet, "/bookmarks/categories", nil, owner)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[bookmarkCategoriesResponse](t, resp).Items, 1)

	resp = do(t, app, http.MethodGet, "/bookmarks/9", nil, owner)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/bookmarks/9", nil, owner)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/bookmarks/10", nil, owner)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouting(t *testing.T) {
	app, _ := newTestApp(t, nil)

	t.Run("not found route", func(t *testing.T) {
		resp := do(t, app, http.MethodGet, "/non-existent", nil, 0)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp := do(t, app, http.MethodPost, "/health", nil, 0)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, "METHOD_NOT_ALLOWED", decode[errorPayload](t, resp).Error.Code)
	})

	t.Run("request id echoed in errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		req.Header.Set(middleware.RequestIDHeader, "rid-1")
		resp, _ := app.Test(req)

		assert.Equal(t, "rid-1", decode[errorPayload](t, resp).RequestID)
	})
}
