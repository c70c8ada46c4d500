package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"filevault/internal/category"
	"filevault/internal/http/middleware"
	"filevault/internal/model"
	"filevault/internal/service"
)

type registerFileRequest struct {
	PlatformFileID string           `json:"platform_file_id"`
	FileName       string           `json:"file_name"`
	FileSize       int64            `json:"file_size"`
	FileType       string           `json:"file_type"`
	Kind           string           `json:"kind" example:"document"`
	MimeType       string           `json:"mime_type"`
	Description    *string          `json:"description"`
	Tags           *string          `json:"tags"`
	Origin         *model.OriginRef `json:"origin"`
}

type fileListResponse struct {
	Items []model.FileRecord `json:"items"`
	Total int                `json:"total"`
}

type categoryListResponse struct {
	Items []categoryEntry `json:"items"`
}

type categoryEntry struct {
	model.CategorySummary
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

// RegisterFile stores the metadata of a file the caller just sent to the bot.
//
// @Summary  Register a file
// @Tags     files
// @Accept   json
// @Produce  json
// @Param    X-Owner-ID header int                 true "owner id"
// @Param    body       body   registerFileRequest true "file metadata"
// @Success  201 {object} model.FileRecord
// @Failure  400 {object} errorPayload
// @Failure  409 {object} errorPayload
// @Failure  413 {object} errorPayload
// @Router   /files [post]
func RegisterFile(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerFileRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		kind, err := category.ParseKind(req.Kind)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_KIND", err.Error())
		}

		rec, err := svc.Register(c.UserContext(), service.RegisterInput{
			PlatformFileID: req.PlatformFileID,
			OwnerID:        middleware.OwnerID(c),
			FileName:       req.FileName,
			FileSize:       req.FileSize,
			FileType:       req.FileType,
			Kind:           kind,
			MimeType:       req.MimeType,
			Description:    req.Description,
			Tags:           req.Tags,
			Origin:         req.Origin,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// ListFiles lists the caller's files, newest first. q searches name,
// description, tags and type; category filters by label. q wins over category.
//
// @Summary  List files
// @Tags     files
// @Produce  json
// @Param    X-Owner-ID header int    true  "owner id"
// @Param    category   query  string false "category label"
// @Param    q          query  string false "search text"
// @Success  200 {object} fileListResponse
// @Failure  400 {object} errorPayload
// @Failure  503 {object} errorPayload
// @Router   /files [get]
func ListFiles(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := middleware.OwnerID(c)
		q, cat := c.Query("q"), c.Query("category")

		var (
			items []model.FileRecord
			err   error
		)
		switch {
		case q != "":
			items, err = svc.Search(c.UserContext(), owner, q)
		case cat != "":
			if !category.Valid(cat) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_CATEGORY", "unknown category")
			}
			items, err = svc.ListByCategory(c.UserContext(), owner, category.Category(cat))
		default:
			items, err = svc.List(c.UserContext(), owner)
		}
		if items == nil {
			items = []model.FileRecord{}
		}
		if err != nil {
			return writeReadError(c, err, fileListResponse{Items: items})
		}
		return c.JSON(fileListResponse{Items: items, Total: len(items)})
	}
}

// GetFile returns one of the caller's files.
//
// @Summary  Get a file
// @Tags     files
// @Produce  json
// @Param    X-Owner-ID header int true "owner id"
// @Param    id         path   int true "record id"
// @Success  200 {object} model.FileRecord
// @Failure  403 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /files/{id} [get]
func GetFile(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		rec, err := svc.GetOwned(c.UserContext(), id, middleware.OwnerID(c))
		if err != nil {
			return writeReadError(c, err, nil)
		}
		return c.JSON(rec)
	}
}

// DeleteFile removes one of the caller's files. Share links to it are left in place.
//
// @Summary  Delete a file
// @Tags     files
// @Param    X-Owner-ID header int true "owner id"
// @Param    id         path   int true "record id"
// @Success  204
// @Failure  404 {object} errorPayload
// @Router   /files/{id} [delete]
func DeleteFile(svc service.CatalogService) fiber.Handler {
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
			// someone else's record looks the same as a missing one
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// FileStats returns the caller's file count and total size.
//
// @Summary  Catalogue totals
// @Tags     files
// @Produce  json
// @Param    X-Owner-ID header int true "owner id"
// @Success  200 {object} model.CatalogStats
// @Failure  503 {object} errorPayload
// @Router   /files/stats [get]
func FileStats(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext(), middleware.OwnerID(c))
		if err != nil {
			return writeReadError(c, err, stats)
		}
		return c.JSON(stats)
	}
}

// FileCategories returns per-category counts and sizes, largest category first.
//
// @Summary  Category summary
// @Tags     files
// @Produce  json
// @Param    X-Owner-ID header int true "owner id"
// @Success  200 {object} categoryListResponse
// @Failure  503 {object} errorPayload
// @Router   /files/categories [get]
func FileCategories(svc service.CatalogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := svc.CategorySummary(c.UserContext(), middleware.OwnerID(c))
		items := make([]categoryEntry, 0, len(rows))
		for _, r := range rows {
			items = append(items, categoryEntry{
				CategorySummary: r,
				DisplayName:     category.DisplayName(r.Category),
				Icon:            category.Icon(r.Category),
			})
		}
		if err != nil {
			return writeReadError(c, err, categoryListResponse{Items: items})
		}
		return c.JSON(categoryListResponse{Items: items})
	}
}

// ExportFiles renders the caller's catalogue as CSV. With upload=true the file
// is stored in object storage and a presigned download URL is returned instead.
//
// @Summary  Export the catalogue
// @Tags     files
// @Produce  text/csv
// @Produce  json
// @Param    X-Owner-ID header int  true  "owner id"
// @Param    upload     query  bool false "store and return a download URL"
// @Success  200 {object} service.UploadedExport
// @Failure  503 {object} errorPayload
// @Router   /files/export [get]
func ExportFiles(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := middleware.OwnerID(c)
		if c.QueryBool("upload") {
			up, err := svc.Upload(c.UserContext(), owner)
			if err != nil {
				return writeServiceError(c, err)
			}
			return c.JSON(up)
		}

		exp, err := svc.Build(c.UserContext(), owner)
		if err != nil {
			return writeReadError(c, err, nil)
		}
		c.Attachment(exp.FileName)
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		return c.Send(exp.Data)
	}
}
