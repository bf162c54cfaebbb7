package draft

// Field nombre de un campo editable; coincide con el nombre del campo en el servicio de datos
// y con el atributo name del formulario.
type Field string

const (
	ProductCode Field = "productCode"
	ProductName Field = "productName"
	ImportDate  Field = "importDate"
	Quantity    Field = "quantity"
	CategoryID  Field = "categoryId"
)

// Fields orden de presentación y de validación.
var Fields = []Field{ProductCode, ProductName, ImportDate, Quantity, CategoryID}

// ParseField valida un nombre de campo recibido desde fuera.
func ParseField(s string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// Limit límite de longitud de un campo de texto libre y umbrales del contador.
type Limit struct {
	Max    int
	Warn   int // a partir de aquí el contador pasa a "warning"
	Danger int // a partir de aquí el contador pasa a "danger"
	Label  string
}

var limits = map[Field]Limit{
	ProductCode: {Max: 20, Warn: 15, Danger: 18, Label: "El código de producto"},
	ProductName: {Max: 100, Warn: 80, Danger: 90, Label: "El nombre de producto"},
}

// LimitFor devuelve el límite del campo, si tiene.
func LimitFor(f Field) (Limit, bool) {
	l, ok := limits[f]
	return l, ok
}
