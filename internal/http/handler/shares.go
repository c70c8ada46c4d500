package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"filevault/internal/http/middleware"
	"filevault/internal/model"
	"filevault/internal/service"
)

// SweepRunner runs one expired-link sweep. *service.Sweeper implements it.
type SweepRunner interface {
	RunOnce(ctx context.Context) (int64, error)
}

type shareResponse struct {
	model.ShareLink
	// URL is the bot deep link; empty when no bot username is configured.
	URL string `json:"url,omitempty"`
}

type shareListResponse struct {
	Items []shareResponse `json:"items"`
}

type sharedFileResponse struct {
	*model.SharedFile
	URL string `json:"url,omitempty"`
}

type linkStateResponse struct {
	model.ShareLink
	State model.LinkState `json:"state"`
}

type sweepResponse struct {
	Expired int64 `json:"expired"`
}

// CreateShare mints a 24h share link for one of the caller's files.
//
// @Summary  Share a file
// @Tags     shares
// @Produce  json
// @Param    X-Owner-ID header int true "owner id"
// @Param    id         path   int true "record id"
// @Success  201 {object} shareResponse
// @Failure  403 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /files/{id}/shares [post]
func CreateShare(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		link, err := svc.Share(c.UserContext(), id, middleware.OwnerID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(shareResponse{ShareLink: *link, URL: svc.URL(link.Token)})
	}
}

// ListShares lists every link ever minted for one of the caller's files, newest first.
// Another owner's record yields an empty list.
//
// @Summary  List share links of a file
// @Tags     shares
// @Produce  json
// @Param    X-Owner-ID header int true "owner id"
// @Param    id         path   int true "record id"
// @Success  200 {object} shareListResponse
// @Failure  503 {object} errorPayload
// @Router   /files/{id}/shares [get]
func ListShares(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		links, err := svc.ListByRecord(c.UserContext(), id, middleware.OwnerID(c))
		items := make([]shareResponse, 0, len(links))
		for _, l := range links {
			items = append(items, shareResponse{ShareLink: l, URL: svc.URL(l.Token)})
		}
		if err != nil {
			return writeReadError(c, err, shareListResponse{Items: items})
		}
		return c.JSON(shareListResponse{Items: items})
	}
}

// ResolveShare returns the file behind a share link. Anyone holding the token may call it.
//
// @Summary  Resolve a share link
// @Tags     shares
// @Produce  json
// @Param    token path string true "share token"
// @Success  200 {object} sharedFileResponse
// @Failure  404 {object} errorPayload "NOT_FOUND or LINK_EXPIRED"
// @Failure  503 {object} errorPayload
// @Router   /shares/{token} [get]
func ResolveShare(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Params("token")
		shared, err := svc.Resolve(c.UserContext(), token)
		if err != nil {
			return writeReadError(c, err, nil)
		}
		return c.JSON(sharedFileResponse{SharedFile: shared, URL: svc.URL(token)})
	}
}

// ShareState reports a link's lifecycle state to the owner of the link.
//
// @Summary  Inspect a share link
// @Tags     shares
// @Produce  json
// @Param    X-Owner-ID header int    true "owner id"
// @Param    token      path   string true "share token"
// @Success  200 {object} linkStateResponse
// @Failure  403 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /shares/{token}/state [get]
func ShareState(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		link, state, err := svc.Inspect(c.UserContext(), c.Params("token"))
		if err != nil {
			return writeReadError(c, err, nil)
		}
		if link.OwnerID != middleware.OwnerID(c) {
			return writeServiceError(c, service.ErrUnauthorized)
		}
		return c.JSON(linkStateResponse{ShareLink: *link, State: state})
	}
}

// DeactivateShare switches off one of the caller's links before it expires.
//
// @Summary  Deactivate a share link
// @Tags     shares
// @Param    X-Owner-ID header int    true "owner id"
// @Param    token      path   string true "share token"
// @Success  204
// @Failure  403 {object} errorPayload
// @Failure  404 {object} errorPayload
// @Router   /shares/{token} [delete]
func DeactivateShare(svc service.ShareService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, err := svc.DeactivateOwned(c.UserContext(), c.Params("token"), middleware.OwnerID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		if !ok {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "no active share link")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// SweepShares deactivates every expired link now instead of waiting for the next tick.
//
// @Summary  Sweep expired share links
// @Tags     shares
// @Produce  json
// @Success  200 {object} sweepResponse
// @Failure  500 {object} errorPayload
// @Router   /shares/sweep [post]
func SweepShares(sweeper SweepRunner) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := sweeper.RunOnce(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(sweepResponse{Expired: n})
	}
}
