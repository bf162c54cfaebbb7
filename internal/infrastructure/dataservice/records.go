package dataservice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// Campos conocidos del registro de producto en el servicio.
const (
	keyID          = "id"
	keyProductCode = "productCode"
	keyProductName = "productName"
	keyImportDate  = "importDate"
	keyQuantity    = "quantity"
	keyCategoryID  = "categoryId"
)

var productKeys = []string{keyID, keyProductCode, keyProductName, keyImportDate, keyQuantity, keyCategoryID}

// wireID identificador que el servicio puede enviar como número o como texto.
// Internamente siempre es texto.
type wireID string

func (w *wireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*w = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*w = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identificador inválido %s: %w", b, err)
	}
	*w = wireID(n.String())
	return nil
}

// MarshalJSON emite un entero JSON si el texto es un entero decimal canónico
// ("7", no "07"); en otro caso, un string.
func (w wireID) MarshalJSON() ([]byte, error) {
	s := string(w)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && strconv.FormatInt(n, 10) == s {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

// wireInt entero que puede llegar como número o como texto numérico.
type wireInt int

func (w *wireInt) UnmarshalJSON(b []byte) error {
	var id wireID
	if err := id.UnmarshalJSON(b); err != nil {
		return err
	}
	if id == "" {
		*w = 0
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(id)))
	if err != nil {
		f, ferr := strconv.ParseFloat(string(id), 64)
		if ferr != nil {
			return fmt.Errorf("entero inválido %s: %w", b, err)
		}
		n = int(f)
	}
	*w = wireInt(n)
	return nil
}

// productRecord forma del producto en el servicio. Los campos desconocidos se conservan
// para que el PUT reemplace el recurso sin perder información. El id original también se
// guarda en extra, tal como llegó, para devolverlo con el mismo tipo JSON.
type productRecord struct {
	ID          wireID  `json:"id"`
	ProductCode string  `json:"productCode"`
	ProductName string  `json:"productName"`
	ImportDate  string  `json:"importDate"`
	Quantity    wireInt `json:"quantity"`
	CategoryID  wireID  `json:"categoryId"`

	extra map[string]json.RawMessage
}

func (r *productRecord) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	type plain productRecord
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = productRecord(p)
	rawID, hasID := raw[keyID]
	for _, k := range productKeys {
		delete(raw, k)
	}
	if hasID {
		raw[keyID] = rawID
	}
	if len(raw) > 0 {
		r.extra = raw
	}
	return nil
}

func (r productRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(r.extra)+len(productKeys))
	for k, v := range r.extra {
		out[k] = v
	}
	out[keyID] = r.idJSON()
	out[keyProductCode] = r.ProductCode
	out[keyProductName] = r.ProductName
	out[keyImportDate] = r.ImportDate
	out[keyQuantity] = int(r.Quantity)
	out[keyCategoryID] = r.CategoryID
	return json.Marshal(out)
}

// idJSON el id tal como lo envió el servicio si no cambió; si no, la regla de wireID.
func (r productRecord) idJSON() any {
	if raw, ok := r.extra[keyID]; ok {
		var prev wireID
		if err := prev.UnmarshalJSON(raw); err == nil && prev == r.ID {
			return raw
		}
	}
	return r.ID
}

func (r productRecord) toEntity() entity.Product {
	return entity.Product{
		ID:          string(r.ID),
		ProductCode: r.ProductCode,
		ProductName: r.ProductName,
		ImportDate:  r.ImportDate,
		Quantity:    int(r.Quantity),
		CategoryID:  string(r.CategoryID),
		Extra:       r.extra,
	}
}

func fromEntity(p entity.Product) productRecord {
	return productRecord{
		ID:          wireID(p.ID),
		ProductCode: p.ProductCode,
		ProductName: p.ProductName,
		ImportDate:  p.ImportDate,
		Quantity:    wireInt(p.Quantity),
		CategoryID:  wireID(p.CategoryID),
		extra:       p.Extra,
	}
}

// categoryRecord forma de la categoría en el servicio.
type categoryRecord struct {
	ID           wireID `json:"id"`
	CategoryName string `json:"categoryName"`
}

func (r categoryRecord) toEntity() entity.Category {
	return entity.Category{ID: string(r.ID), Name: r.CategoryName}
}
