package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"filevault/internal/model"
	"filevault/internal/repository"
)

const bookmarkColumns = `id, owner_id, title, url, description, category, tags, created_at, is_active`

type bookmarkRow struct {
	ID          int64          `db:"id"`
	OwnerID     int64          `db:"owner_id"`
	Title       string         `db:"title"`
	URL         string         `db:"url"`
	Description sql.NullString `db:"description"`
	Category    string         `db:"category"`
	Tags        sql.NullString `db:"tags"`
	CreatedAt   time.Time      `db:"created_at"`
	IsActive    bool           `db:"is_active"`
}

func (r bookmarkRow) toModel() model.Bookmark {
	return model.Bookmark{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		URL:         r.URL,
		Description: stringPtr(r.Description),
		Category:    r.Category,
		Tags:        stringPtr(r.Tags),
		CreatedAt:   r.CreatedAt,
		IsActive:    r.IsActive,
	}
}

// BookmarkPostgres is a PostgreSQL implementation of repository.BookmarkRepository.
// Reads only ever see active rows.
type BookmarkPostgres struct {
	db *sqlx.DB
}

// NewBookmarkPostgres creates a new BookmarkPostgres repository.
func NewBookmarkPostgres(db *sql.DB) *BookmarkPostgres {
	return &BookmarkPostgres{db: wrap(db)}
}

var _ repository.BookmarkRepository = (*BookmarkPostgres)(nil)

func (r *BookmarkPostgres) Create(ctx context.Context, b *model.Bookmark) (int64, error) {
	const q = `
		INSERT INTO bookmarks (owner_id, title, url, description, category, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	row := r.db.QueryRowxContext(ctx, q,
		b.OwnerID,
		b.Title,
		b.URL,
		nullString(b.Description),
		b.Category,
		nullString(b.Tags),
	)
	if err := row.Scan(&b.ID, &b.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicateBookmark
		}
		return 0, err
	}
	b.IsActive = true
	return b.ID, nil
}

func (r *BookmarkPostgres) FindActiveByURL(ctx context.Context, ownerID int64, url string) (*model.Bookmark, error) {
	const q = `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE owner_id = $1 AND url = $2 AND is_active LIMIT 1`
	return r.get(ctx, q, ownerID, url)
}

func (r *BookmarkPostgres) FindByID(ctx context.Context, id, ownerID int64) (*model.Bookmark, error) {
	const q = `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = $1 AND owner_id = $2 AND is_active`
	return r.get(ctx, q, id, ownerID)
}

func (r *BookmarkPostgres) get(ctx context.Context, q string, args ...any) (*model.Bookmark, error) {
	var row bookmarkRow
	if err := r.db.GetContext(ctx, &row, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	b := row.toModel()
	return &b, nil
}

func (r *BookmarkPostgres) ListByOwner(ctx context.Context, ownerID int64) ([]model.Bookmark, error) {
	const q = `
		SELECT ` + bookmarkColumns + `
		FROM bookmarks
		WHERE owner_id = $1 AND is_active
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, q, ownerID)
}

func (r *BookmarkPostgres) ListByCategory(ctx context.Context, ownerID int64, category string) ([]model.Bookmark, error) {
	const q = `
		SELECT ` + bookmarkColumns + `
		FROM bookmarks
		WHERE owner_id = $1 AND category = $2 AND is_active
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, q, ownerID, category)
}

func (r *BookmarkPostgres) Search(ctx context.Context, ownerID int64, query string) ([]model.Bookmark, error) {
	const q = `
		SELECT ` + bookmarkColumns + `
		FROM bookmarks
		WHERE owner_id = $1 AND is_active AND (
			title ILIKE $2 OR
			url ILIKE $2 OR
			description ILIKE $2 OR
			tags ILIKE $2
		)
		ORDER BY created_at DESC, id DESC
	`
	return r.list(ctx, q, ownerID, containsPattern(query))
}

func (r *BookmarkPostgres) list(ctx context.Context, q string, args ...any) ([]model.Bookmark, error) {
	var rows []bookmarkRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, err
	}
	out := make([]model.Bookmark, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *BookmarkPostgres) Categories(ctx context.Context, ownerID int64) ([]model.BookmarkCategoryCount, error) {
	const q = `
		SELECT category, COUNT(*) AS count
		FROM bookmarks
		WHERE owner_id = $1 AND is_active
		GROUP BY category
		ORDER BY count DESC, category ASC
	`
	var out []model.BookmarkCategoryCount
	rows, err := r.db.QueryxContext(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c model.BookmarkCategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.BookmarkCategoryCount{}
	}
	return out, nil
}

// Deactivate soft-deletes the bookmark; it reports false when nothing active matched.
func (r *BookmarkPostgres) Deactivate(ctx context.Context, id, ownerID int64) (bool, error) {
	const q = `UPDATE bookmarks SET is_active = FALSE WHERE id = $1 AND owner_id = $2 AND is_active`
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

func (r *BookmarkPostgres) Count(ctx context.Context, ownerID int64) (int64, error) {
	const q = `SELECT COUNT(*) FROM bookmarks WHERE owner_id = $1 AND is_active`
	var n int64
	if err := r.db.GetContext(ctx, &n, q, ownerID); err != nil {
		return 0, err
	}
	return n, nil
}
