package entity

import "encoding/json"

// Product representa un producto del catálogo tal como lo expone el servicio de datos.
// ImportDate se guarda como texto ISO-8601 (YYYY-MM-DD); CategoryID es la referencia
// textual a Category.ID y puede quedar colgante si la categoría fue eliminada.
type Product struct {
	ID          string
	ProductCode string // máx. 20 caracteres
	ProductName string // máx. 100 caracteres
	ImportDate  string
	Quantity    int
	CategoryID  string
	// Extra conserva los campos del servicio que la UI no edita (y el id tal como llegó),
	// para reenviarlos en el PUT.
	Extra map[string]json.RawMessage
}

// Clone devuelve una copia independiente (Extra incluido).
func (p Product) Clone() Product {
	out := p
	if p.Extra != nil {
		out.Extra = make(map[string]json.RawMessage, len(p.Extra))
		for k, v := range p.Extra {
			out.Extra[k] = append(json.RawMessage(nil), v...)
		}
	}
	return out
}
