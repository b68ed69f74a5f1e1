package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "github.com/sam002696/tuition-management-backend/internals/helpers"
)

// OnlyRoles guards a route group to the given roles; the forbidden
// message is surfaced as-is in the envelope.
func OnlyRoles(forbiddenMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helper.GetUserRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthenticated.")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		if forbiddenMessage == "" {
			forbiddenMessage = "Forbidden"
		}
		return fiber.NewError(fiber.StatusForbidden, forbiddenMessage)
	}
}
