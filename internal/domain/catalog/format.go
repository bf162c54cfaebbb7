package catalog

import (
	"time"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// DefaultDateLayout día/mes/año con dos dígitos, como en la configuración regional de la tienda.
const DefaultDateLayout = "02/01/2006"

// UnknownCategory etiqueta para referencias de categoría colgantes.
const UnknownCategory = "Categoría desconocida"

// ParseISODate interpreta una fecha ISO-8601 (YYYY-MM-DD o RFC 3339).
func ParseISODate(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if len(raw) > len(time.DateOnly) {
		if t, err := time.Parse(time.DateOnly, raw[:len(time.DateOnly)]); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate presenta la fecha con el layout dado. Si no se puede interpretar se muestra tal cual.
func FormatDate(raw, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	t, ok := ParseISODate(raw)
	if !ok {
		return raw
	}
	return t.Format(layout)
}

// CategoryName resuelve el nombre de la categoría por id (comparación textual).
func CategoryName(categories []entity.Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownCategory
}
