package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"filevault/internal/category"
	"filevault/internal/events"
	"filevault/internal/model"
	"filevault/internal/repository"
)

// RegisterInput is everything the bot knows about an incoming attachment.
type RegisterInput struct {
	PlatformFileID string
	OwnerID        int64
	// FileName may be empty; a name is derived from Kind and PlatformFileID.
	FileName string
	FileSize int64
	// FileType overrides the type derived from Kind, FileName and MimeType.
	FileType    string
	Kind        category.Kind
	MimeType    string
	Description *string
	Tags        *string
	Origin      *model.OriginRef
}

// CatalogService is the owner-scoped file catalogue. Reads that hit a store
// fault return an empty value together with an error wrapping ErrStorageFault.
type CatalogService interface {
	Register(ctx context.Context, in RegisterInput) (*model.FileRecord, error)
	// Get fetches a record with no owner check. Callers must authorize.
	Get(ctx context.Context, recordID int64) (*model.FileRecord, error)
	// GetOwned fetches a record and fails with ErrUnauthorized if ownerID does not own it.
	GetOwned(ctx context.Context, recordID, ownerID int64) (*model.FileRecord, error)
	FindByPlatformID(ctx context.Context, platformFileID string, ownerID int64) (*model.FileRecord, error)
	List(ctx context.Context, ownerID int64) ([]model.FileRecord, error)
	ListByCategory(ctx context.Context, ownerID int64, c category.Category) ([]model.FileRecord, error)
	Search(ctx context.Context, ownerID int64, query string) ([]model.FileRecord, error)
	CategorySummary(ctx context.Context, ownerID int64) ([]model.CategorySummary, error)
	Stats(ctx context.Context, ownerID int64) (model.CatalogStats, error)
	// Delete removes the record only if ownerID owns it and reports whether it did.
	Delete(ctx context.Context, recordID, ownerID int64) (bool, error)
}

type catalogService struct {
	repo        repository.FileRepository
	pub         events.Publisher
	maxFileSize int64
	log         *slog.Logger
}

// NewCatalogService constructs a CatalogService. maxFileSize <= 0 disables the size limit.
func NewCatalogService(repo repository.FileRepository, pub events.Publisher, maxFileSize int64, log *slog.Logger) CatalogService {
	return &catalogService{
		repo:        repo,
		pub:         pub,
		maxFileSize: maxFileSize,
		log:         log.With(slog.String("component", "catalog")),
	}
}

func (s *catalogService) Register(ctx context.Context, in RegisterInput) (*model.FileRecord, error) {
	pid := strings.TrimSpace(in.PlatformFileID)
	switch {
	case pid == "":
		return nil, invalid("platform file id is required")
	case in.FileSize < 0:
		return nil, invalid("file size must not be negative")
	case s.maxFileSize > 0 && in.FileSize > s.maxFileSize:
		return nil, ErrFileTooLarge
	}

	kind := in.Kind
	if kind == "" {
		kind = category.KindDocument
	}
	att := category.Attachment{Kind: kind, FileName: strings.TrimSpace(in.FileName), MimeType: in.MimeType}

	fileType := category.NormalizeFileType(in.FileType)
	if fileType == "" {
		fileType = att.FileType()
	}

	rec := &model.FileRecord{
		PlatformFileID: pid,
		FileName:       att.DefaultFileName(pid),
		FileSize:       in.FileSize,
		FileType:       fileType,
		Category:       category.Of(fileType),
		OwnerID:        in.OwnerID,
		Description:    optional(in.Description),
		Tags:           optional(in.Tags),
		Origin:         in.Origin,
	}

	if _, err := s.repo.Create(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateFile) {
			return nil, ErrDuplicateFile
		}
		return nil, storeFault(s.log, "register", err)
	}
	filesRegisteredTotal.Inc()

	e := events.New(events.FileRegistered, time.Now())
	e.OwnerID, e.RecordID = rec.OwnerID, rec.ID
	publish(ctx, s.pub, s.log, e)

	return rec, nil
}

func (s *catalogService) Get(ctx context.Context, recordID int64) (*model.FileRecord, error) {
	rec, err := s.repo.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeFault(s.log, "get", err)
	}
	return rec, nil
}

func (s *catalogService) GetOwned(ctx context.Context, recordID, ownerID int64) (*model.FileRecord, error) {
	rec, err := s.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !rec.OwnedBy(ownerID) {
		return nil, ErrUnauthorized
	}
	return rec, nil
}

func (s *catalogService) FindByPlatformID(ctx context.Context, platformFileID string, ownerID int64) (*model.FileRecord, error) {
	rec, err := s.repo.FindByPlatformID(ctx, platformFileID, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeFault(s.log, "find_by_platform_id", err)
	}
	return rec, nil
}

func (s *catalogService) List(ctx context.Context, ownerID int64) ([]model.FileRecord, error) {
	return s.records("list", func() ([]model.FileRecord, error) {
		return s.repo.ListByOwner(ctx, ownerID)
	})
}

func (s *catalogService) ListByCategory(ctx context.Context, ownerID int64, c category.Category) ([]model.FileRecord, error) {
	return s.records("list_by_category", func() ([]model.FileRecord, error) {
		return s.repo.ListByOwnerAndCategory(ctx, ownerID, c)
	})
}

func (s *catalogService) Search(ctx context.Context, ownerID int64, query string) ([]model.FileRecord, error) {
	return s.records("search", func() ([]model.FileRecord, error) {
		return s.repo.Search(ctx, ownerID, query)
	})
}

func (s *catalogService) records(op string, fetch func() ([]model.FileRecord, error)) ([]model.FileRecord, error) {
	out, err := fetch()
	if err != nil {
		return []model.FileRecord{}, storeFault(s.log, op, err)
	}
	if out == nil {
		out = []model.FileRecord{}
	}
	return out, nil
}

func (s *catalogService) CategorySummary(ctx context.Context, ownerID int64) ([]model.CategorySummary, error) {
	out, err := s.repo.CategorySummary(ctx, ownerID)
	if err != nil {
		return []model.CategorySummary{}, storeFault(s.log, "category_summary", err)
	}
	if out == nil {
		out = []model.CategorySummary{}
	}
	return out, nil
}

func (s *catalogService) Stats(ctx context.Context, ownerID int64) (model.CatalogStats, error) {
	st, err := s.repo.Stats(ctx, ownerID)
	if err != nil {
		return model.CatalogStats{}, storeFault(s.log, "stats", err)
	}
	return st, nil
}

func (s *catalogService) Delete(ctx context.Context, recordID, ownerID int64) (bool, error) {
	deleted, err := s.repo.DeleteOwned(ctx, recordID, ownerID)
	if err != nil {
		return false, storeFault(s.log, "delete", err)
	}
	if !deleted {
		return false, nil
	}
	filesDeletedTotal.Inc()

	e := events.New(events.FileDeleted, time.Now())
	e.OwnerID, e.RecordID = ownerID, recordID
	publish(ctx, s.pub, s.log, e)
	return true, nil
}

// optional drops blank strings so they are stored as NULL.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
