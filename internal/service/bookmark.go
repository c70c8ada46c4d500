package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"filevault/internal/model"
	"filevault/internal/repository"
)

// AddBookmarkInput describes a web link to save.
type AddBookmarkInput struct {
	OwnerID int64
	// Title defaults to the URL's host.
	Title       string
	URL         string
	Description *string
	// Category defaults to model.DefaultBookmarkCategory.
	Category string
	Tags     *string
}

// BookmarkStats summarizes an owner's saved links.
type BookmarkStats struct {
	Total      int64                         `json:"total"`
	Categories []model.BookmarkCategoryCount `json:"categories"`
}

// BookmarkService manages saved web links. Deleting a bookmark only hides it.
type BookmarkService interface {
	Add(ctx context.Context, in AddBookmarkInput) (*model.Bookmark, error)
	// FindByURL returns the owner's active bookmark for rawURL, or ErrNotFound.
	FindByURL(ctx context.Context, ownerID int64, rawURL string) (*model.Bookmark, error)
	Get(ctx context.Context, id, ownerID int64) (*model.Bookmark, error)
	List(ctx context.Context, ownerID int64) ([]model.Bookmark, error)
	ListByCategory(ctx context.Context, ownerID int64, category string) ([]model.Bookmark, error)
	Categories(ctx context.Context, ownerID int64) ([]model.BookmarkCategoryCount, error)
	Search(ctx context.Context, ownerID int64, query string) ([]model.Bookmark, error)
	Delete(ctx context.Context, id, ownerID int64) (bool, error)
	Stats(ctx context.Context, ownerID int64) (BookmarkStats, error)
}

type bookmarkService struct {
	repo repository.BookmarkRepository
	log  *slog.Logger
}

func NewBookmarkService(repo repository.BookmarkRepository, log *slog.Logger) BookmarkService {
	return &bookmarkService{repo: repo, log: log.With(slog.String("component", "bookmarks"))}
}

// normalizeURL accepts absolute http(s) URLs and bare hosts such as "go.dev/blog".
func normalizeURL(raw string) (string, *url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil, invalid("url is required")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", nil, invalid("malformed url %q", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", nil, invalid("unsupported url scheme %q", u.Scheme)
	}
	return u.String(), u, nil
}

func normalizeCategory(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return model.DefaultBookmarkCategory
	}
	return c
}

func (s *bookmarkService) Add(ctx context.Context, in AddBookmarkInput) (*model.Bookmark, error) {
	link, u, err := normalizeURL(in.URL)
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = u.Host
	}

	b := &model.Bookmark{
		OwnerID:     in.OwnerID,
		Title:       title,
		URL:         link,
		Description: optional(in.Description),
		Category:    normalizeCategory(in.Category),
		Tags:        optional(in.Tags),
	}
	if _, err := s.repo.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrDuplicateBookmark) {
			return nil, ErrDuplicateBookmark
		}
		return nil, storeFault(s.log, "add_bookmark", err)
	}
	return b, nil
}

func (s *bookmarkService) FindByURL(ctx context.Context, ownerID int64, rawURL string) (*model.Bookmark, error) {
	link, _, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	return s.one("find_bookmark", func() (*model.Bookmark, error) {
		return s.repo.FindActiveByURL(ctx, ownerID, link)
	})
}

func (s *bookmarkService) Get(ctx context.Context, id, ownerID int64) (*model.Bookmark, error) {
	return s.one("get_bookmark", func() (*model.Bookmark, error) {
		return s.repo.FindByID(ctx, id, ownerID)
	})
}

func (s *bookmarkService) one(op string, fetch func() (*model.Bookmark, error)) (*model.Bookmark, error) {
	b, err := fetch()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeFault(s.log, op, err)
	}
	return b, nil
}

func (s *bookmarkService) List(ctx context.Context, ownerID int64) ([]model.Bookmark, error) {
	return s.many("list_bookmarks", func() ([]model.Bookmark, error) {
		return s.repo.ListByOwner(ctx, ownerID)
	})
}

func (s *bookmarkService) ListByCategory(ctx context.Context, ownerID int64, category string) ([]model.Bookmark, error) {
	return s.many("list_bookmarks_by_category", func() ([]model.Bookmark, error) {
		return s.repo.ListByCategory(ctx, ownerID, normalizeCategory(category))
	})
}

func (s *bookmarkService) Search(ctx context.Context, ownerID int64, query string) ([]model.Bookmark, error) {
	return s.many("search_bookmarks", func() ([]model.Bookmark, error) {
		return s.repo.Search(ctx, ownerID, strings.TrimSpace(query))
	})
}

func (s *bookmarkService) many(op string, fetch func() ([]model.Bookmark, error)) ([]model.Bookmark, error) {
	out, err := fetch()
	if err != nil {
		return []model.Bookmark{}, storeFault(s.log, op, err)
	}
	if out == nil {
		out = []model.Bookmark{}
	}
	return out, nil
}

func (s *bookmarkService) Categories(ctx context.Context, ownerID int64) ([]model.BookmarkCategoryCount, error) {
	out, err := s.repo.Categories(ctx, ownerID)
	if err != nil {
		return []model.BookmarkCategoryCount{}, storeFault(s.log, "bookmark_categories", err)
	}
	if out == nil {
		out = []model.BookmarkCategoryCount{}
	}
	return out, nil
}

func (s *bookmarkService) Delete(ctx context.Context, id, ownerID int64) (bool, error) {
	ok, err := s.repo.Deactivate(ctx, id, ownerID)
	if err != nil {
		return false, storeFault(s.log, "delete_bookmark", err)
	}
	return ok, nil
}

func (s *bookmarkService) Stats(ctx context.Context, ownerID int64) (BookmarkStats, error) {
	total, err := s.repo.Count(ctx, ownerID)
	if err != nil {
		return BookmarkStats{Categories: []model.BookmarkCategoryCount{}}, storeFault(s.log, "bookmark_stats", err)
	}
	cats, err := s.Categories(ctx, ownerID)
	if err != nil {
		return BookmarkStats{Categories: cats}, err
	}
	return BookmarkStats{Total: total, Categories: cats}, nil
}
