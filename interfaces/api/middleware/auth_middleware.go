package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Msparihar/todo/domain/repositories"
	"github.com/Msparihar/todo/pkg/logger"
	"github.com/Msparihar/todo/pkg/utils"
)

// Protected gates a route behind bearer-token auth. Every sub-step failure
// (missing header, bad signature, expiry, unknown subject) collapses into the
// same 401 so nothing is leaked about which step failed.
func Protected(jwtSecret string, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()

		token := utils.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return utils.UnauthorizedResponse(c, "")
		}

		userID, err := utils.ValidateToken(token, jwtSecret)
		if err != nil {
			logger.WarnContext(ctx, "Token validation failed", "error", err)
			return utils.UnauthorizedResponse(c, "")
		}

		// The subject must still resolve to a stored user.
		user, err := users.GetByID(ctx, userID)
		if err != nil {
			logger.WarnContext(ctx, "Token subject not found", "user_id", userID)
			return utils.UnauthorizedResponse(c, "")
		}

		c.Locals("user", &utils.UserContext{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		})

		return c.Next()
	}
}
