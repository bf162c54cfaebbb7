package draft

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// Draft copia editable de los campos de un Product. Todos los valores son texto tal como
// los escribe el usuario; la coerción ocurre solo en Merge. Nunca modifica el producto cargado.
type Draft struct {
	ProductCode string
	ProductName string
	ImportDate  string
	Quantity    string
	CategoryID  string
}

// FromProduct inicializa el borrador con los valores del producto cargado.
func FromProduct(p entity.Product) Draft {
	d := Draft{
		ProductCode: p.ProductCode,
		ProductName: p.ProductName,
		ImportDate:  p.ImportDate,
		CategoryID:  p.CategoryID,
	}
	if p.Quantity != 0 {
		d.Quantity = strconv.Itoa(p.Quantity)
	}
	return d
}

// Get devuelve el valor actual de un campo.
func (d Draft) Get(f Field) string {
	switch f {
	case ProductCode:
		return d.ProductCode
	case ProductName:
		return d.ProductName
	case ImportDate:
		return d.ImportDate
	case Quantity:
		return d.Quantity
	case CategoryID:
		return d.CategoryID
	}
	return ""
}

// Set modela el valor según el límite del campo y lo guarda. Devuelve el resultado del
// modelado para que quien llama emita el aviso de recorte si lo hay.
func (d *Draft) Set(f Field, value string, src Source) Shaped {
	s := Shape(f, value, src)
	switch f {
	case ProductCode:
		d.ProductCode = s.Value
	case ProductName:
		d.ProductName = s.Value
	case ImportDate:
		d.ImportDate = s.Value
	case Quantity:
		d.Quantity = s.Value
	case CategoryID:
		d.CategoryID = s.Value
	}
	return s
}

// Merge construye el registro de reemplazo completo: el producto original (incluidos los
// campos que la UI no edita) con los campos del borrador encima. La cantidad se convierte
// a entero; una categoría numérica se normaliza a su forma decimal ("07" → "7").
func (d Draft) Merge(original entity.Product) (entity.Product, error) {
	qty, err := ParseQuantity(d.Quantity)
	if err != nil {
		return entity.Product{}, fmt.Errorf("%w: quantity: %v", domain.ErrInvalidInput, err)
	}
	cat := strings.TrimSpace(d.CategoryID)
	if cat == "" {
		return entity.Product{}, fmt.Errorf("%w: categoryId vacío", domain.ErrInvalidInput)
	}
	if n, err := strconv.Atoi(cat); err == nil {
		cat = strconv.Itoa(n)
	}

	out := original.Clone()
	out.ProductCode = d.ProductCode
	out.ProductName = d.ProductName
	out.ImportDate = d.ImportDate
	out.Quantity = qty
	out.CategoryID = cat
	return out, nil
}
