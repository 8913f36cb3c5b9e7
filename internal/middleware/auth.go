package middleware

import (
	"encoding/base64"
	"strings"

	"go-insights/internal/config"
	"go-insights/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware guards admin routes. It accepts either Basic credentials
// matching ADMIN_USER/ADMIN_PASS or a Bearer JWT carrying an admin claim.
// SkipAuth bypasses the check entirely for local development.
func AdminMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.SkipAuth {
			c.Locals(utils.UserClaimsKey, &utils.UserClaims{Username: "dev-admin", IsAdmin: true})
			return c.Next()
		}

		authHeader := c.Get("Authorization")
		switch {
		case strings.HasPrefix(authHeader, "Basic "):
			return basicAuth(c, cfg, authHeader)
		case strings.HasPrefix(authHeader, "Bearer "):
			return bearerAuth(c, authHeader)
		default:
			c.Set("WWW-Authenticate", "Basic")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Unauthorized",
			})
		}
	}
}

func basicAuth(c *fiber.Ctx, cfg *config.Config, authHeader string) error {
	if cfg.AdminUser == "" || cfg.AdminPass == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Server not configured for admin auth",
		})
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, "Basic "))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid authorization header",
		})
	}

	user, pass, found := strings.Cut(string(decoded), ":")
	if !found || user != cfg.AdminUser || pass != cfg.AdminPass {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Forbidden",
		})
	}

	c.Locals(utils.UserClaimsKey, &utils.UserClaims{Username: user, IsAdmin: true})
	return c.Next()
}

func bearerAuth(c *fiber.Ctx, authHeader string) error {
	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ValidateToken(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid token",
		})
	}
	if !claims.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Forbidden",
		})
	}

	c.Locals(utils.UserClaimsKey, claims)
	return c.Next()
}
