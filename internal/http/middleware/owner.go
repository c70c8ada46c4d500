package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const (
	// OwnerIDHeader carries the chat user id of the caller. The bot front end sets it.
	OwnerIDHeader = "X-Owner-ID"
	// OwnerIDLocalKey is the key the parsed owner id is stored under in Fiber's context locals.
	OwnerIDLocalKey = "owner_id"
)

// Owner rejects requests without a positive integer X-Owner-ID header and
// stores the parsed id for downstream handlers.
func Owner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.ParseInt(c.Get(OwnerIDHeader), 10, 64)
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusUnauthorized, "missing or invalid "+OwnerIDHeader+" header")
		}
		c.Locals(OwnerIDLocalKey, id)
		return c.Next()
	}
}

// OwnerID returns the id stored by Owner, or 0 if the middleware did not run.
func OwnerID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(OwnerIDLocalKey).(int64)
	return id
}
