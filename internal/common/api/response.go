package api

import (
	"go-insights/internal/common/apperr"
	"go-insights/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

// Every endpoint answers with the same envelope:
// { success, message?, data?, count?, meta? }

func OK(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// OKList includes a count alongside the data array.
func OKList(c *fiber.Ctx, message string, data interface{}, count int) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
		"count":   count,
	})
}

// OKPage includes pagination metadata.
func OKPage(c *fiber.Ctx, message string, data interface{}, count int, meta models.Meta) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
		"count":   count,
		"meta":    meta,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// Error maps an error from the service layer onto the envelope. Internal
// detail stays out of the response; callers are expected to have logged it.
func Error(c *fiber.Ctx, err error) error {
	return Fail(c, apperr.StatusCode(err), apperr.ClientMessage(err))
}
