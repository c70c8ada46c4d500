package handler

import (
	"github.com/gofiber/fiber/v2"

	"filevault/internal/http/middleware"
	"filevault/internal/model"
	"filevault/internal/service"
)

type addBookmarkRequest struct {
	Title       string  `json:"title"`
	URL         string  `json:"url" example:"https://go.dev/blog"`
	Description *string `json:"description"`
	Category    string  `json:"category" example:"general"`
	Tags        *string `json:"tags"`
}

type bookmarkListResponse struct {
	Items []model.Bookmark `json:"items"`
	Total int              `json:"total"`
}

type bookmarkCategoriesResponse struct {
	Items []model.BookmarkCategoryCount `json:"items"`
}

// AddBookmark saves a web link for the caller.
//
// @Summary  Add a bookmark
// @Tags     bookmarks
// @Accept   json
// @Produce  json
// @Param    X-Owner-ID header int                true "owner id"
// @Param    body       body   addBookmarkRequest true "link"
// @Success  201 {object} model.Bookmark
// @Failure  400 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Router   /bookmarks [post]
func AddBookmark(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req addBookmarkRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		b, err := svc.Add(c.UserContext(), service.AddBookmarkInput{
			OwnerID:     middleware.OwnerID(c),
			Title:       req.Title,
			URL:         req.URL,
			Description: req.Description,
			Category:    req.Category,
			Tags:        req.Tags,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(b)
	}
}

// ListBookmarks lists the caller's bookmarks, newest first. Precedence of the
// filters: url (exact match), then q (search), then category.
//
// @Summary  List bookmarks
// @Tags     bookmarks
// @Produce  json
// @Param    X-Owner-ID header int    true  "owner id"
// @Param    url        query  string false "exact url"
// @Param    q          query  string false "search text"
// @Param    category   query  string false "category"
// @Success  200 {object} bookmarkListResponse
// @Failure  503 {object} errorPayload
// @Router   /bookmarks [get]
func ListBookmarks(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, owner := c.UserContext(), middleware.OwnerID(c)

		if raw := c.Query("url"); raw != "" {
			b, err := svc.FindByURL(ctx, owner, raw)
			if err != nil {
				return writeReadError(c, err, bookmarkListResponse{Items: []model.Bookmark{}})
			}
			return c.JSON(bookmarkListResponse{Items: []model.Bookmark{*b}, Total: 1})
		}

		var (
			items []model.Bookmark
			err   error
		)
		switch q, cat := c.Query("q"), c.Query("category"); {
		case q != "":
			items, err = svc.Search(ctx, owner, q)
		case cat != "":
			items, err = svc.ListByCategory(ctx, owner, cat)
		default:
			items, err = svc.List(ctx, owner)
		}
		if items == nil {
			items = []model.Bookmark{}
		}
		if err != nil {
			return writeReadError(c, err, bookmarkListResponse{Items: items})
		}
		return c.JSON(bookmarkListResponse{Items: items, Total: len(items)})
	}
}

// GetBookmark returns one of the caller's active bookmarks.
//
// @Summary  Get a bookmark
// @Tags     bookmarks
// @Produce  json
// @Param    X-Owner-ID header int true "owner id"
// @Param    id         path   int true "bookmark id"
// @Success  200 {object} model.Bookmark
// @Failure  404 {object} errorPayload
// @Router   /bookmarks/{id} [get]
func GetBookmark(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		b, err := svc.Get(c.UserContext(), id, middleware.OwnerID(c))
		if err != nil {
			return writeReadError(c, err, nil)
		}
		return c.JSON(b)
	}
}

// DeleteBookmark hides one of the caller's bookmarks.
//
// @Summary  Delete a bookmark
// @Tags     bookmarks
// @Param    X-Owner-ID header int true "owner id"
// @Param    id         path   int true "bookmark id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /bookmarks/{id} [delete]
func DeleteBookmark(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		deleted, err := svc.Delete(c.UserContext(), id, middleware.OwnerID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		if !deleted {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "bookmark not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// BookmarkCategories counts the caller's bookmarks per category.
//
// @Summary  Bookmark categories
// @Tags     bookmarks
// @Produce  json
// @Param    X-Owner-ID header int true "owner id"
// @Success  200 {object} bookmarkCategoriesResponse
// @Failure  503 {object} errorPayload
// @Router   /bookmarks/categories [get]
func BookmarkCategories(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Categories(c.UserContext(), middleware.OwnerID(c))
		if items == nil {
			items = []model.BookmarkCategoryCount{}
		}
		if err != nil {
			return writeReadError(c, err, bookmarkCategoriesResponse{Items: items})
		}
		return c.JSON(bookmarkCategoriesResponse{Items: items})
	}
}

// BookmarkStats returns the caller's bookmark total and per-category counts.
//
// @Summary  Bookmark totals
// @Tags     bookmarks
// @Produce  json
// @Param    X-Owner-ID header int true "owner id"
// @Success  200 {object} service.BookmarkStats
// @Failure  503 {object} errorPayload
// @Router   /bookmarks/stats [get]
func BookmarkStats(svc service.BookmarkService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext(), middleware.OwnerID(c))
		if err != nil {
			return writeReadError(c, err, stats)
		}
		return c.JSON(stats)
	}
}
