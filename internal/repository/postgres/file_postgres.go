package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"filevault/internal/category"
	"filevault/internal/model"
	"filevault/internal/repository"
)

const fileColumns = `id, platform_file_id, file_name, file_size, file_type, category, owner_id,
	uploaded_at, description, tags, origin_chat_id, origin_message_id`

type fileRow struct {
	ID              int64          `db:"id"`
	PlatformFileID  string         `db:"platform_file_id"`
	FileName        string         `db:"file_name"`
	FileSize        int64          `db:"file_size"`
	FileType        string         `db:"file_type"`
	Category        string         `db:"category"`
	OwnerID         int64          `db:"owner_id"`
	UploadedAt      time.Time      `db:"uploaded_at"`
	Description     sql.NullString `db:"description"`
	Tags            sql.NullString `db:"tags"`
	OriginChatID    sql.NullInt64  `db:"origin_chat_id"`
	OriginMessageID sql.NullInt64  `db:"origin_message_id"`
}

func (r fileRow) toModel() model.FileRecord {
	f := model.FileRecord{
		ID:             r.ID,
		PlatformFileID: r.PlatformFileID,
		FileName:       r.FileName,
		FileSize:       r.FileSize,
		FileType:       r.FileType,
		Category:       category.Category(r.Category),
		OwnerID:        r.OwnerID,
		UploadedAt:     r.UploadedAt,
		Description:    stringPtr(r.Description),
		Tags:           stringPtr(r.Tags),
	}
	if r.OriginChatID.Valid || r.OriginMessageID.Valid {
		f.Origin = &model.OriginRef{ChatID: r.OriginChatID.Int64, MessageID: r.OriginMessageID.Int64}
	}
	return f
}

func toModels(rows []fileRow) []model.FileRecord {
	out := make([]model.FileRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toModel())
	}
	return out
}

// FilePostgres is a PostgreSQL implementation of repository.FileRepository.
type FilePostgres struct {
	db *sqlx.DB
}

// NewFilePostgres creates a new FilePostgres repository.
func NewFilePostgres(db *sql.DB) *FilePostgres {
	return &FilePostgres{db: wrap(db)}
}

var _ repository.FileRepository = (*FilePostgres)(nil)

// Create inserts a file row. Uniqueness of platform_file_id is left to the
// table constraint so concurrent inserts cannot both succeed.
func (r *FilePostgres) Create(ctx context.Context, f *model.FileRecord) (int64, error) {
	const q = `
		INSERT INTO files (platform_file_id, file_name, file_size, file_type, category, owner_id,
			uploaded_at, description, tags, origin_chat_id, origin_message_id)
		VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7::timestamptz, now()), $8, $9, $10, $11)
		RETURNING id, uploaded_at
	`
	var uploadedAt any
	if !f.UploadedAt.IsZero() {
		uploadedAt = f.UploadedAt
	}
	var chatID, messageID sql.NullInt64
	if f.Origin != nil {
		chatID = sql.NullInt64{Int64: f.Origin.ChatID, Valid: true}
		messageID = sql.NullInt64{Int64: f.Origin.MessageID, Valid: true}
	}

	row := r.db.QueryRowxContext(ctx, q,
		f.PlatformFileID,
		f.FileName,
		f.FileSize,
		f.FileType,
		string(f.Category),
		f.OwnerID,
		uploadedAt,
		nullString(f.Description),
		nullString(f.Tags),
		chatID,
		messageID,
	)
	if err := row.Scan(&f.ID, &f.UploadedAt); err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicateFile
		}
		return 0, err
	}
	return f.ID, nil
}

// FindByID fetches a single record by id.
func (r *FilePostgres) FindByID(ctx context.Context, id int64) (*model.FileRecord, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE id = $1`
	return r.get(ctx, q, id)
}

// FindByPlatformID fetches the owner's record for a platform file id.
func (r *FilePostgres) FindByPlatformID(ctx context.Context, platformFileID string, ownerID int64) (*model.FileRecord, error) {
	const q = `SELECT ` + fileColumns + ` FROM files WHERE platform_file_id = $1 AND owner_id = $2`
	return r.get(ctx, q, platformFileID, ownerID)
}

func (r *FilePostgres) get(ctx context.Context, q string, args ...any) (*model.FileRecord, error) {
	var row fileRow
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	f := row.toModel()
	return &f, nil
}

// ListByOwner returns all of the owner's records, newest first.
func (r *FilePostgres) ListByOwner(ctx context.Context, ownerID int64) ([]model.FileRecord, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE owner_id = $1
		ORDER BY uploaded_at DESC, id DESC
	`
	return r.list(ctx, q, ownerID)
}

// ListByOwnerAndCategory returns the owner's records in one category, newest first.
func (r *FilePostgres) ListByOwnerAndCategory(ctx context.Context, ownerID int64, c category.Category) ([]model.FileRecord, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE owner_id = $1 AND category = $2
		ORDER BY uploaded_at DESC, id DESC
	`
	return r.list(ctx, q, ownerID, string(c))
}

// Search returns the owner's records whose name, description, tags or type
// contain query, ignoring case. LIKE wildcards in query match literally.
func (r *FilePostgres) Search(ctx context.Context, ownerID int64, query string) ([]model.FileRecord, error) {
	const q = `
		SELECT ` + fileColumns + `
		FROM files
		WHERE owner_id = $1 AND (
			file_name ILIKE $2 OR
			description ILIKE $2 OR
			tags ILIKE $2 OR
			file_type ILIKE $2
		)
		ORDER BY uploaded_at DESC, id DESC
	`
	return r.list(ctx, q, ownerID, containsPattern(query))
}

func (r *FilePostgres) list(ctx context.Context, q string, args ...any) ([]model.FileRecord, error) {
	var rows []fileRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	return toModels(rows), nil
}

// DeleteOwned removes a record only if it belongs to ownerID.
func (r *FilePostgres) DeleteOwned(ctx context.Context, id, ownerID int64) (bool, error) {
	const q = `DELETE FROM files WHERE id = $1 AND owner_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, ownerID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CategorySummary groups the owner's records by category, largest groups first.
func (r *FilePostgres) CategorySummary(ctx context.Context, ownerID int64) ([]model.CategorySummary, error) {
	const q = `
		SELECT category, COUNT(*) AS count, COALESCE(SUM(file_size), 0) AS total_size
		FROM files
		WHERE owner_id = $1
		GROUP BY category
		ORDER BY count DESC, category ASC
	`
	var rows []struct {
		Category  string `db:"category"`
		Count     int64  `db:"count"`
		TotalSize int64  `db:"total_size"`
	}
	if err := r.db.SelectContext(ctx, &rows, q, ownerID); err != nil {
		return nil, err
	}
	out := make([]model.CategorySummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.CategorySummary{
			Category:  category.Category(row.Category),
			Count:     row.Count,
			TotalSize: row.TotalSize,
		})
	}
	return out, nil
}

// Stats returns the owner's record count and total size; zero when the owner has none.
func (r *FilePostgres) Stats(ctx context.Context, ownerID int64) (model.CatalogStats, error) {
	const q = `SELECT COUNT(*), COALESCE(SUM(file_size), 0) FROM files WHERE owner_id = $1`
	var s model.CatalogStats
	if err := r.db.QueryRowContext(ctx, q, ownerID).Scan(&s.TotalFiles, &s.TotalSize); err != nil {
		return model.CatalogStats{}, err
	}
	return s, nil
}
