package auth

import (
	"github.com/gofiber/fiber/v2"

	"servicecredit_backend/internals/constants"
	helper "servicecredit_backend/internals/helpers"
)

// OnlyRoles gates a route to the given roles. Must run after AuthMiddleware.
func OnlyRoles(forbiddenMessage string, roles ...constants.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helper.GetRoleFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		if forbiddenMessage == "" {
			forbiddenMessage = "Access denied: insufficient privileges"
		}
		return helper.JsonError(c, fiber.StatusForbidden, forbiddenMessage)
	}
}
