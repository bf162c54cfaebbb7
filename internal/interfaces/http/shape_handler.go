package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain/draft"
)

// ShapeHandler API de modelado de entrada que usan los scripts del editor. Las mismas
// funciones se aplican al enviar el formulario.
type ShapeHandler struct{}

// NewShapeHandler construye el handler.
func NewShapeHandler() *ShapeHandler {
	return &ShapeHandler{}
}

// Shape POST /api/shape
func (h *ShapeHandler) Shape(c *fiber.Ctx) error {
	var in dto.ShapeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	f, ok := draft.ParseField(in.Field)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FIELD", Message: "campo desconocido: " + in.Field})
	}
	src := draft.SourceInput
	switch in.Source {
	case "", string(draft.SourceInput):
	case string(draft.SourcePaste):
		src = draft.SourcePaste
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "source debe ser input o paste"})
	}

	shaped := draft.Shape(f, in.Value, src)
	out := dto.ShapeResponse{
		Value:     shaped.Value,
		Truncated: shaped.Truncated,
		Notice:    dto.NoticeFrom(shaped.Notice),
	}
	if counter, ok := draft.CounterFor(f, shaped.Value); ok {
		out.Counter = &counter
	}
	return c.JSON(out)
}

// Keystroke POST /api/keystroke
func (h *ShapeHandler) Keystroke(c *fiber.Ctx) error {
	var in dto.KeystrokeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	f, ok := draft.ParseField(in.Field)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FIELD", Message: "campo desconocido: " + in.Field})
	}
	allowed, n := draft.AllowKey(f, in.Value, in.Key)
	return c.JSON(dto.KeystrokeResponse{Allowed: allowed, Notice: dto.NoticeFrom(n)})
}
