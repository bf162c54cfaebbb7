package catalog

import (
	"strconv"
	"strings"
)

// DefaultPageSize tamaño de página fijo del listado.
const DefaultPageSize = 5

// Query estado de búsqueda del listado: subcadena de nombre, filtro de categoría y página (base 1).
// Cambiar el nombre o la categoría siempre vuelve a la página 1.
type Query struct {
	Name       string
	CategoryID string
	Page       int
}

// ParseQuery construye la Query a partir de los parámetros de la URL (q, category, page).
// Una página ausente o inválida se interpreta como 1.
func ParseQuery(name, categoryID, page string) Query {
	p, err := strconv.Atoi(strings.TrimSpace(page))
	if err != nil || p < 1 {
		p = 1
	}
	return Query{Name: name, CategoryID: strings.TrimSpace(categoryID), Page: p}
}

// WithName cambia la búsqueda por nombre y reinicia la paginación.
func (q Query) WithName(name string) Query {
	q.Name = name
	q.Page = 1
	return q
}

// WithCategory cambia el filtro de categoría y reinicia la paginación.
func (q Query) WithCategory(categoryID string) Query {
	q.CategoryID = categoryID
	q.Page = 1
	return q
}

// WithPage cambia solo la página.
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}

// Reset limpia los filtros (acción "refrescar").
func (q Query) Reset() Query {
	return Query{Page: 1}
}

// IsFiltered indica si hay algún filtro activo.
func (q Query) IsFiltered() bool {
	return q.Name != "" || q.CategoryID != ""
}
