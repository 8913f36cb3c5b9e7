package contact

import (
	"time"

	common_api "go-insights/internal/common/api"
	"go-insights/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

type ContactController struct {
	Service ContactService
}

func NewContactController(service ContactService) *ContactController {
	return &ContactController{Service: service}
}

// CreateContact godoc
func (c *ContactController) CreateContact(ctx *fiber.Ctx) error {
	var contact Contact
	if err := ctx.BodyParser(&contact); err != nil {
		return common_api.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	created, err := c.Service.Create(ctx.UserContext(), &contact)
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.Created(ctx, "Contact created successfully", created)
}

// GetContacts godoc
func (c *ContactController) GetContacts(ctx *fiber.Ctx) error {
	p := models.ParsePagination(ctx.Query("page"), ctx.Query("limit"))

	contacts, meta, err := c.Service.ListPage(ctx.UserContext(), ctx.Query("from"), ctx.Query("to"), p)
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OKPage(ctx, "Contacts fetched successfully", contacts, len(contacts), meta)
}

// GetContactByID godoc
func (c *ContactController) GetContactByID(ctx *fiber.Ctx) error {
	contact, err := c.Service.GetByID(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Contact fetched successfully", contact)
}

// DeleteContact godoc
func (c *ContactController) DeleteContact(ctx *fiber.Ctx) error {
	if err := c.Service.Delete(ctx.UserContext(), ctx.Params("id")); err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Contact deleted successfully", nil)
}

// ExportContacts streams the filtered contacts as an .xlsx download.
func (c *ContactController) ExportContacts(ctx *fiber.Ctx) error {
	contacts, err := c.Service.Export(ctx.UserContext(), ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		return common_api.Error(ctx, err)
	}

	buf, err := BuildExportWorkbook(contacts)
	if err != nil {
		return common_api.Fail(ctx, fiber.StatusInternalServerError, "Failed to build export")
	}

	filename := "contacts-" + time.Now().Format("2006-01-02") + ".xlsx"
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Send(buf.Bytes())
}
