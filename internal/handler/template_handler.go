package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"fatura-web/internal/importer"
	"fatura-web/internal/utils"
)

type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// Download serves the starter file for an import kind, CSV by default or
// XLSX with ?format=xlsx, localized with ?lang=tr|en.
func (h *TemplateHandler) Download(c *fiber.Ctx) error {
	kind := c.Params("kind")
	tmpl, err := importer.TemplateFor(kind)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Unknown import kind", err)
	}

	lang := c.Query("lang", "tr")
	if lang != "tr" && lang != "en" {
		lang = "tr"
	}

	if c.Query("format", "csv") == "xlsx" {
		data, err := tmpl.XLSX(lang)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to render template", err)
		}
		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_template.xlsx"`, kind))
		return c.Send(data)
	}

	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s_template.csv"`, kind))
	return c.Send(tmpl.CSV(lang))
}
