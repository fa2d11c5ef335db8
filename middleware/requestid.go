// middleware/requestid.go
package middleware

import (
	"strconv"

	"manufacturing-mcp/controllers/idgen"

	"github.com/gofiber/fiber/v2"
)

// RequestID tags every response with a unique identifier so log lines can be
// correlated with individual requests.
func RequestID(ctx *fiber.Ctx) error {
	id := strconv.FormatInt(idgen.GenerateID(), 10)
	ctx.Locals("request_id", id)
	ctx.Set("X-Request-ID", id)
	return ctx.Next()
}
