package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/catalog"
	"github.com/jhoicas/inventario-web/internal/application/dto"
	domcatalog "github.com/jhoicas/inventario-web/internal/domain/catalog"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/notice"
)

// CatalogHandler vista de catálogo.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// catalogPage datos de la plantilla catalog.html.
type catalogPage struct {
	Title      string
	Failed     bool
	Query      domcatalog.Query
	Categories []entity.Category
	Projection domcatalog.Projection
	PrevURL    string
	NextURL    string
	Notices    notice.List
}

// Index GET / con q, category y page. Una página inválida cae en la 1.
func (h *CatalogHandler) Index(c *fiber.Ctx) error {
	var in dto.CatalogQuery
	if err := c.QueryParser(&in); err != nil {
		in = dto.CatalogQuery{}
	}
	state, notices := h.uc.View(c.UserContext(), domcatalog.ParseQuery(in.Q, in.Category, in.Page))
	return h.render(c, state, notices)
}

// Refresh GET /refresh: limpia filtros y recarga ambos recursos.
func (h *CatalogHandler) Refresh(c *fiber.Ctx) error {
	state, notices := h.uc.Refresh(c.UserContext())
	return h.render(c, state, notices)
}

func (h *CatalogHandler) render(c *fiber.Ctx, state catalog.State, notices notice.List) error {
	page := catalogPage{Title: "Inventario de productos", Notices: notices}
	status := fiber.StatusOK
	switch s := state.(type) {
	case catalog.Ready:
		page.Query = s.Query
		page.Categories = s.Categories
		page.Projection = s.Projection
	case catalog.Failed:
		page.Failed = true
		page.Query = s.Query
		page.Projection = s.Projection
		status = fiber.StatusBadGateway
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "estado de catálogo inesperado: "+state.Kind())
	}
	if page.Projection.HasPrev() {
		page.PrevURL = catalogURL(page.Query, page.Projection.Page-1)
	}
	if page.Projection.HasNext() {
		page.NextURL = catalogURL(page.Query, page.Projection.Page+1)
	}
	return c.Status(status).Render("catalog", page, "layout")
}
