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

const linkColumns = `sl.token, sl.platform_file_id, sl.owner_id, sl.record_id,
	sl.created_at, sl.expires_at, sl.is_active, sl.deactivated_at`

type linkRow struct {
	Token          string       `db:"token"`
	PlatformFileID string       `db:"platform_file_id"`
	OwnerID        int64        `db:"owner_id"`
	RecordID       int64        `db:"record_id"`
	CreatedAt      time.Time    `db:"created_at"`
	ExpiresAt      time.Time    `db:"expires_at"`
	IsActive       bool         `db:"is_active"`
	DeactivatedAt  sql.NullTime `db:"deactivated_at"`
}

func (r linkRow) toModel() model.ShareLink {
	l := model.ShareLink{
		Token:          r.Token,
		PlatformFileID: r.PlatformFileID,
		OwnerID:        r.OwnerID,
		RecordID:       r.RecordID,
		CreatedAt:      r.CreatedAt,
		ExpiresAt:      r.ExpiresAt,
		IsActive:       r.IsActive,
	}
	if r.DeactivatedAt.Valid {
		t := r.DeactivatedAt.Time
		l.DeactivatedAt = &t
	}
	return l
}

type sharedFileRow struct {
	linkRow
	FileName    string         `db:"file_name"`
	FileSize    int64          `db:"file_size"`
	FileType    string         `db:"file_type"`
	Category    string         `db:"category"`
	Description sql.NullString `db:"description"`
	Tags        sql.NullString `db:"tags"`
}

// ShareLinkPostgres is a PostgreSQL implementation of repository.ShareLinkRepository.
type ShareLinkPostgres struct {
	db *sqlx.DB
}

// NewShareLinkPostgres creates a new ShareLinkPostgres repository.
func NewShareLinkPostgres(db *sql.DB) *ShareLinkPostgres {
	return &ShareLinkPostgres{db: wrap(db)}
}

var _ repository.ShareLinkRepository = (*ShareLinkPostgres)(nil)

func (r *ShareLinkPostgres) Create(ctx context.Context, l *model.ShareLink) error {
	const q = `
		INSERT INTO share_links (token, platform_file_id, owner_id, record_id, created_at, expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
	`
	_, err := r.db.ExecContext(ctx, q,
		l.Token,
		l.PlatformFileID,
		l.OwnerID,
		l.RecordID,
		l.CreatedAt,
		l.ExpiresAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicateToken
		}
		return err
	}
	l.IsActive = true
	return nil
}

// FindActive joins on the file row; a link whose record was deleted is not found.
func (r *ShareLinkPostgres) FindActive(ctx context.Context, token string) (*model.SharedFile, error) {
	const q = `
		SELECT ` + linkColumns + `,
			f.file_name, f.file_size, f.file_type, f.category, f.description, f.tags
		FROM share_links sl
		JOIN files f ON f.id = sl.record_id
		WHERE sl.token = $1 AND sl.is_active
	`
	var row sharedFileRow
	if err := r.db.GetContext(ctx, &row, q, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &model.SharedFile{
		ShareLink:   row.linkRow.toModel(),
		FileName:    row.FileName,
		FileSize:    row.FileSize,
		FileType:    row.FileType,
		Category:    category.Category(row.Category),
		Description: stringPtr(row.Description),
		Tags:        stringPtr(row.Tags),
	}, nil
}

func (r *ShareLinkPostgres) Find(ctx context.Context, token string) (*model.ShareLink, error) {
	const q = `SELECT ` + linkColumns + ` FROM share_links sl WHERE sl.token = $1`
	var row linkRow
	if err := r.db.GetContext(ctx, &row, q, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	l := row.toModel()
	return &l, nil
}

func (r *ShareLinkPostgres) ListByRecord(ctx context.Context, recordID, ownerID int64) ([]model.ShareLink, error) {
	const q = `
		SELECT ` + linkColumns + `
		FROM share_links sl
		WHERE sl.record_id = $1 AND sl.owner_id = $2
		ORDER BY sl.created_at DESC, sl.token ASC
	`
	var rows []linkRow
	if err := r.db.SelectContext(ctx, &rows, q, recordID, ownerID); err != nil {
		return nil, err
	}
	out := make([]model.ShareLink, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

// Expire is conditional on the row still being active and expired, so a
// racing sweep and resolve flip it at most once.
func (r *ShareLinkPostgres) Expire(ctx context.Context, token string, now time.Time) (bool, error) {
	const q = `
		UPDATE share_links
		SET is_active = FALSE, deactivated_at = $2
		WHERE token = $1 AND is_active AND expires_at <= $2
	`
	return r.exec(ctx, q, token, now)
}

func (r *ShareLinkPostgres) Deactivate(ctx context.Context, token string, now time.Time) (bool, error) {
	const q = `
		UPDATE share_links
		SET is_active = FALSE, deactivated_at = $2
		WHERE token = $1 AND is_active
	`
	return r.exec(ctx, q, token, now)
}

func (r *ShareLinkPostgres) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	const q = `
		UPDATE share_links
		SET is_active = FALSE, deactivated_at = $1
		WHERE is_active AND expires_at <= $1
	`
	res, err := r.db.ExecContext(ctx, q, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *ShareLinkPostgres) exec(ctx context.Context, q string, args ...any) (bool, error) {
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
