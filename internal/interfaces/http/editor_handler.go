package http

import (
	"errors"
	"math"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/editor"
	"github.com/jhoicas/inventario-web/internal/domain"
	domcatalog "github.com/jhoicas/inventario-web/internal/domain/catalog"
	"github.com/jhoicas/inventario-web/internal/domain/draft"
	"github.com/jhoicas/inventario-web/internal/domain/notice"
)

// EditorHandler vista de edición de un producto.
type EditorHandler struct {
	uc *editor.UseCase
}

// NewEditorHandler construye el handler.
func NewEditorHandler(uc *editor.UseCase) *EditorHandler {
	return &EditorHandler{uc: uc}
}

type optionView struct {
	Value    string
	Label    string
	Selected bool
}

type fieldView struct {
	Name    string
	Label   string
	Type    string
	Value   string
	Error   string
	Max     int
	Counter *draft.Counter
	Options []optionView
}

type editorPage struct {
	Title   string
	ID      string
	Phase   string
	Fields  []fieldView
	Notices notice.List
}

type messagePage struct {
	Title   string
	Message string
	Notices notice.List
}

type savedPage struct {
	Title      string
	Notices    notice.List
	RedirectMS int64
	RedirectS  int
}

var fieldLabels = map[draft.Field]string{
	draft.ProductCode: "Código",
	draft.ProductName: "Nombre",
	draft.ImportDate:  "Fecha de ingreso",
	draft.Quantity:    "Cantidad",
	draft.CategoryID:  "Categoría",
}

var fieldTypes = map[draft.Field]string{
	draft.ProductCode: "text",
	draft.ProductName: "text",
	draft.ImportDate:  "date",
	draft.Quantity:    "number",
	draft.CategoryID:  "select",
}

// Show GET /edit/:id
func (h *EditorHandler) Show(c *fiber.Ctx) error {
	s := h.uc.Open(c.UserContext(), c.Params("id"))
	if s.Phase() == editor.PhaseLoadFailed {
		return h.loadFailed(c, s)
	}
	return h.renderForm(c, s, fiber.StatusOK)
}

// Submit POST /edit/:id con los campos del formulario. action=cancel descarta el borrador.
func (h *EditorHandler) Submit(c *fiber.Ctx) error {
	s := h.uc.Open(c.UserContext(), c.Params("id"))
	if s.Phase() == editor.PhaseLoadFailed {
		return h.loadFailed(c, s)
	}

	if c.FormValue("action") == "cancel" {
		if err := s.Cancel(); err != nil {
			return err
		}
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	args := c.Request().PostArgs()
	form := make(map[string]string, len(draft.Fields))
	for _, f := range draft.Fields {
		if args.Has(string(f)) {
			form[string(f)] = string(args.Peek(string(f)))
		}
	}
	if err := s.ApplyForm(form); err != nil {
		return err
	}

	err := s.Submit(c.UserContext())
	switch {
	case err == nil:
		delay := h.uc.RedirectDelay()
		return c.Render("saved", savedPage{
			Title:      "Producto actualizado",
			Notices:    s.Notices,
			RedirectMS: delay.Milliseconds(),
			RedirectS:  int(math.Ceil(delay.Seconds())),
		}, "layout")
	case errors.Is(err, domain.ErrValidation):
		return h.renderForm(c, s, fiber.StatusUnprocessableEntity)
	case errors.Is(err, domain.ErrSubmitInProgress):
		return h.renderForm(c, s, fiber.StatusConflict)
	case errors.Is(err, domain.ErrSubmitFailure):
		return h.renderForm(c, s, fiber.StatusBadGateway)
	default:
		return err
	}
}

func (h *EditorHandler) loadFailed(c *fiber.Ctx, s *editor.Session) error {
	status := fiber.StatusBadGateway
	if s.NotFound() {
		status = fiber.StatusNotFound
	}
	return c.Status(status).Render("error", messagePage{
		Title:   "Editar producto",
		Message: editor.LoadFailedMessage,
	}, "layout")
}

func (h *EditorHandler) renderForm(c *fiber.Ctx, s *editor.Session, status int) error {
	page := editorPage{
		Title:   "Editar producto",
		ID:      s.ID,
		Phase:   string(s.Phase()),
		Notices: s.Notices,
	}
	for _, f := range draft.Fields {
		fv := fieldView{
			Name:  string(f),
			Label: fieldLabels[f],
			Type:  fieldTypes[f],
			Value: s.Draft.Get(f),
			Error: s.Errors.Message(f),
		}
		if lim, ok := draft.LimitFor(f); ok {
			fv.Max = lim.Max
			counter := s.Counter(f)
			fv.Counter = &counter
		}
		switch f {
		case draft.ImportDate:
			fv.Value = dateInputValue(fv.Value)
		case draft.CategoryID:
			fv.Options = append(fv.Options, optionView{Value: "", Label: "Selecciona una categoría", Selected: fv.Value == ""})
			for _, cat := range s.Categories {
				fv.Options = append(fv.Options, optionView{Value: cat.ID, Label: cat.Name, Selected: cat.ID == fv.Value})
			}
		}
		page.Fields = append(page.Fields, fv)
	}
	return c.Status(status).Render("editor", page, "layout")
}

// dateInputValue el control de fecha solo acepta AAAA-MM-DD; una marca de tiempo completa
// se reduce a su fecha.
func dateInputValue(raw string) string {
	if len(raw) <= 10 {
		return raw
	}
	if t, ok := domcatalog.ParseISODate(raw); ok {
		return t.Format("2006-01-02")
	}
	return raw
}
