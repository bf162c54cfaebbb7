package catalog

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// Input entradas canónicas de la proyección. La proyección no guarda estado propio:
// siempre se recalcula desde aquí.
type Input struct {
	Products   []entity.Product
	Categories []entity.Category
	Query      Query
	PageSize   int
	DateLayout string
}

// Row fila lista para renderizar.
type Row struct {
	Product      entity.Product
	CategoryName string
	ImportDate   string // formateada
}

// Projection subconjunto ordenado y paginado de productos.
type Projection struct {
	Rows       []Row
	Page       int
	PageSize   int
	TotalPages int
	Total      int  // productos tras el filtro
	From       int  // índice 1-based de la primera fila mostrada
	To         int  // índice 1-based de la última fila mostrada
	Empty      bool // sin resultados: la vista muestra "no se encontraron productos"
}

// Pages números de página para los botones del paginador.
func (p Projection) Pages() []int {
	out := make([]int, p.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// HasPrev indica si hay página anterior.
func (p Projection) HasPrev() bool { return p.Page > 1 }

// HasNext indica si hay página siguiente.
func (p Projection) HasNext() bool { return p.Page < p.TotalPages }

// ShowPager el paginador solo se muestra con más de una página.
func (p Projection) ShowPager() bool { return p.TotalPages > 1 }

// SortByQuantityDesc ordena por cantidad descendente. Es estable: los empates
// conservan el orden de entrada. No modifica el slice recibido.
func SortByQuantityDesc(products []entity.Product) []entity.Product {
	out := slices.Clone(products)
	slices.SortStableFunc(out, func(a, b entity.Product) int {
		return cmp.Compare(b.Quantity, a.Quantity)
	})
	return out
}

// Filter conserva los productos cuyo nombre contiene q.Name (sin distinguir mayúsculas)
// y cuya categoría coincide con q.CategoryID, cuando esos filtros no están vacíos.
func Filter(products []entity.Product, q Query) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	var needle string
	if q.Name != "" {
		needle = cases.Fold().String(q.Name)
	}
	for _, p := range products {
		if needle != "" && !strings.Contains(cases.Fold().String(p.ProductName), needle) {
			continue
		}
		if q.CategoryID != "" && p.CategoryID != q.CategoryID {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PageBounds calcula la página efectiva (acotada a [1, totalPages]), el total de páginas
// y el rango [start, end) a cortar para n elementos.
func PageBounds(n, page, pageSize int) (effective, totalPages, start, end int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages = (n + pageSize - 1) / pageSize
	effective = page
	if effective > totalPages {
		effective = totalPages
	}
	if effective < 1 {
		effective = 1
	}
	start = (effective - 1) * pageSize
	end = min(start+pageSize, n)
	if start > n {
		start = n
	}
	return effective, totalPages, start, end
}

// Paginate devuelve las filas de la página solicitada.
func Paginate(products []entity.Product, page, pageSize int) []entity.Product {
	_, _, start, end := PageBounds(len(products), page, pageSize)
	return products[start:end]
}

// Project ejecuta el pipeline completo: orden base, filtro, paginación y decoración de filas.
// Es una función pura y total: una lista vacía produce una proyección vacía, nunca un error.
func Project(in Input) Projection {
	pageSize := in.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := Filter(SortByQuantityDesc(in.Products), in.Query)
	page, totalPages, start, end := PageBounds(len(filtered), in.Query.Page, pageSize)

	proj := Projection{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Total:      len(filtered),
		Empty:      len(filtered) == 0,
	}
	if proj.Empty {
		return proj
	}

	proj.From = start + 1
	proj.To = end
	proj.Rows = make([]Row, 0, end-start)
	for _, p := range filtered[start:end] {
		proj.Rows = append(proj.Rows, Row{
			Product:      p,
			CategoryName: CategoryName(in.Categories, p.CategoryID),
			ImportDate:   FormatDate(p.ImportDate, in.DateLayout),
		})
	}
	return proj
}
