package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the ray id.
const Header = "X-Ray-ID"

// New returns a middleware assigning a ray id to every request. An incoming X-Ray-ID
// header is kept. The id is stored in c.Locals("ray_id").
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("ray_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
