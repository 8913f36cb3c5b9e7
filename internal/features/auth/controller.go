package auth

import (
	common_api "go-insights/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Service AuthService
}

func NewAuthController(service AuthService) *AuthController {
	return &AuthController{Service: service}
}

// Login godoc
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := ctx.BodyParser(&body); err != nil {
		return common_api.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	token, err := c.Service.Login(ctx.UserContext(), body.Username, body.Password)
	if err != nil {
		return common_api.Error(ctx, err)
	}

	return common_api.OK(ctx, "Login successful", fiber.Map{"token": token})
}
