package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const clientIDHeader = "X-Client-ID"

// ClientID ensures every request carries the stable identifier that scopes
// the client's durable state (session record, pending redirect, wallet link).
// A client without one is assigned a fresh identifier and is expected to echo
// it back on subsequent requests.
func ClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Copy the header value: fiber's zero-allocation strings alias the
		// request buffer, and this identifier outlives the request as a key
		// in the stores it scopes.
		id := utils.CopyString(c.Get(clientIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(clientIDHeader, id)
		c.Locals("client_id", id)

		return c.Next()
	}
}
