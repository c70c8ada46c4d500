package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"filevault/internal/http/middleware"
	"filevault/internal/service"
)

// Services bundles what the HTTP layer calls into.
type Services struct {
	Catalog   service.CatalogService
	Shares    service.ShareService
	Exports   service.ExportService
	Bookmarks service.BookmarkService
	Sweeper   SweepRunner
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Static segments (/files/stats) are registered before parameterized ones (/files/:id).
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	owner := middleware.Owner()

	files := app.Group("/files", owner)
	files.Post("/", RegisterFile(svc.Catalog))
	files.Get("/", ListFiles(svc.Catalog))
	files.Get("/stats", FileStats(svc.Catalog))
	files.Get("/categories", FileCategories(svc.Catalog))
	files.Get("/export", ExportFiles(svc.Exports))
	files.Get("/:id", GetFile(svc.Catalog))
	files.Delete("/:id", DeleteFile(svc.Catalog))
	files.Post("/:id/shares", CreateShare(svc.Shares))
	files.Get("/:id/shares", ListShares(svc.Shares))

	// resolving a link needs only the token
	app.Post("/shares/sweep", SweepShares(svc.Sweeper))
	app.Get("/shares/:token", ResolveShare(svc.Shares))
	app.Get("/shares/:token/state", owner, ShareState(svc.Shares))
	app.Delete("/shares/:token", owner, DeactivateShare(svc.Shares))

	bookmarks := app.Group("/bookmarks", owner)
	bookmarks.Post("/", AddBookmark(svc.Bookmarks))
	bookmarks.Get("/", ListBookmarks(svc.Bookmarks))
	bookmarks.Get("/stats", BookmarkStats(svc.Bookmarks))
	bookmarks.Get("/categories", BookmarkCategories(svc.Bookmarks))
	bookmarks.Get("/:id", GetBookmark(svc.Bookmarks))
	bookmarks.Delete("/:id", DeleteBookmark(svc.Bookmarks))
}
