package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"filevault/internal/category"
	"filevault/internal/model"
	"filevault/internal/storage"
)

// ErrExportStorageDisabled is returned by Upload when no object store is configured.
var ErrExportStorageDisabled = errors.New("export storage not configured")

// exportURLTTL is how long a presigned export link stays valid.
const exportURLTTL = time.Hour

var exportHeader = []string{
	"Название файла",
	"Размер (MB)",
	"Тип файла",
	"Категория",
	"Дата загрузки",
	"Описание",
	"Теги",
}

// Export is a rendered CSV of one owner's catalogue.
type Export struct {
	FileName string
	Rows     int
	Data     []byte
}

// UploadedExport points at an export stored in the object store.
type UploadedExport struct {
	FileName  string    `json:"file_name"`
	Key       string    `json:"key"`
	Rows      int       `json:"rows"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ExportService renders catalogue exports and optionally publishes them to object storage.
type ExportService interface {
	Build(ctx context.Context, ownerID int64) (*Export, error)
	Upload(ctx context.Context, ownerID int64) (*UploadedExport, error)
}

type exportService struct {
	catalog CatalogService
	store   storage.Storage
	clock   Clock
	loc     *time.Location
	log     *slog.Logger
}

// NewExportService constructs an ExportService. store may be nil, in which case
// Upload fails with ErrExportStorageDisabled. Dates are rendered in loc.
func NewExportService(catalog CatalogService, store storage.Storage, clock Clock, loc *time.Location, log *slog.Logger) ExportService {
	if clock == nil {
		clock = SystemClock{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &exportService{
		catalog: catalog,
		store:   store,
		clock:   clock,
		loc:     loc,
		log:     log.With(slog.String("component", "export")),
	}
}

func (s *exportService) Build(ctx context.Context, ownerID int64) (*Export, error) {
	files, err := s.catalog.List(ctx, ownerID)
	if err != nil {
		// an empty export would look like an empty catalogue
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, f := range files {
		if err := w.Write(s.row(f)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return &Export{
		FileName: fmt.Sprintf("files_export_%s.csv", s.clock.Now().In(s.loc).Format("20060102_150405")),
		Rows:     len(files),
		Data:     buf.Bytes(),
	}, nil
}

func (s *exportService) row(f model.FileRecord) []string {
	return []string{
		f.FileName,
		strconv.FormatFloat(float64(f.FileSize)/(1024*1024), 'f', 2, 64),
		f.FileType,
		category.DisplayName(f.Category),
		f.UploadedAt.In(s.loc).Format("02.01.2006 15:04"),
		deref(f.Description),
		deref(f.Tags),
	}
}

func (s *exportService) Upload(ctx context.Context, ownerID int64) (*UploadedExport, error) {
	if s.store == nil {
		return nil, ErrExportStorageDisabled
	}
	exp, err := s.Build(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%d/%s/%s", ownerID, uuid.NewString(), exp.FileName)
	info, err := s.store.Put(ctx, key, bytes.NewReader(exp.Data), storage.PutObjectOptions{
		Size:        int64(len(exp.Data)),
		ContentType: "text/csv; charset=utf-8",
		Metadata:    map[string]string{"owner-id": strconv.FormatInt(ownerID, 10)},
	})
	if err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}

	url, err := s.store.PresignGet(ctx, info.Key, exportURLTTL)
	if err != nil {
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			s.log.Warn("export_rollback_failed", slog.String("key", info.Key), slog.String("error", delErr.Error()))
		}
		return nil, fmt.Errorf("presign export: %w", err)
	}

	s.log.Info("export_uploaded",
		slog.Int64("owner_id", ownerID),
		slog.String("key", info.Key),
		slog.Int("rows", exp.Rows),
	)
	return &UploadedExport{
		FileName:  exp.FileName,
		Key:       info.Key,
		Rows:      exp.Rows,
		URL:       url,
		ExpiresAt: s.clock.Now().Add(exportURLTTL),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
