package system

import (
	"go-insights/internal/common/api"
	"go-insights/internal/database"

	"github.com/gofiber/fiber/v2"
)

type HealthApi struct {
	db *database.MongodbDB
}

func NewHealthApi(db *database.MongodbDB) api.Route {
	return &HealthApi{db: db}
}

func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend is running")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	app.Get("/db-status", func(c *fiber.Ctx) error {
		ping := "ok"
		if err := h.db.Ping(c.UserContext()); err != nil {
			ping = "error: " + err.Error()
		}
		return c.JSON(fiber.Map{"ping": ping})
	})
}
