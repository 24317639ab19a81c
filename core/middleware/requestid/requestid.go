package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request id.
const HeaderName = "X-Request-ID"

// LocalsKey is the fiber.Ctx locals key holding the request id.
const LocalsKey = "request_id"

// New creates a middleware that assigns every request an id. An incoming
// X-Request-ID is reused; otherwise a new UUID is generated. The id is stored in
// the context locals and echoed in the response header.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderName)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
