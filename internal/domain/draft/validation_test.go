package draft_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/draft"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

var testNow = time.Date(2025, time.June, 10, 15, 30, 0, 0, time.Local)

func validDraft() draft.Draft {
	return draft.Draft{
		ProductCode: "CAM-001",
		ProductName: "Camisa Oxford",
		ImportDate:  "2025-06-01",
		Quantity:    "12",
		CategoryID:  "2",
	}
}

func TestValidate_BorradorValido(t *testing.T) {
	v := draft.Validate(validDraft(), testNow)
	assert.True(t, v.Empty(), "no debe haber errores: %v", v)
}

func TestValidate_BorradorVacioReportaLosCincoCampos(t *testing.T) {
	v := draft.Validate(draft.Draft{}, testNow)

	require.Len(t, v, 5, "cada campo obligatorio debe reportarse a la vez")
	for _, f := range draft.Fields {
		assert.NotEmpty(t, v.Message(f), "falta el error de %s", f)
	}
}

// Escenario D: fecha de mañana → error en importDate.
func TestValidate_FechaDeMananaEsInvalida(t *testing.T) {
	d := validDraft()
	d.ImportDate = testNow.AddDate(0, 0, 1).Format(time.DateOnly)

	v := draft.Validate(d, testNow)

	assert.Len(t, v, 1)
	assert.NotEmpty(t, v.Message(draft.ImportDate))
}

func TestValidate_FechaDeHoyEsValida(t *testing.T) {
	d := validDraft()
	d.ImportDate = testNow.Format(time.DateOnly)

	lateNight := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.Local)
	assert.True(t, draft.Validate(d, testNow).Empty())
	assert.True(t, draft.Validate(d, lateNight).Empty())
}

func TestValidate_FechaMalFormada(t *testing.T) {
	d := validDraft()
	d.ImportDate = "31/12/2024"

	assert.NotEmpty(t, draft.Validate(d, testNow).Message(draft.ImportDate))
}

func TestValidate_Longitudes(t *testing.T) {
	d := validDraft()
	d.ProductCode = strings.Repeat("C", 21)
	d.ProductName = strings.Repeat("N", 101)

	v := draft.Validate(d, testNow)

	assert.Contains(t, v.Message(draft.ProductCode), "20")
	assert.Contains(t, v.Message(draft.ProductName), "100")
}

func TestValidate_CategoriaEnBlancoEsObligatoria(t *testing.T) {
	d := validDraft()
	d.CategoryID = "   "

	v := draft.Validate(d, testNow)

	require.Len(t, v, 1)
	assert.Equal(t, "La categoría es obligatoria.", v.Message(draft.CategoryID))
}

func TestValidate_Cantidad(t *testing.T) {
	for _, q := range []string{"0", "-3", "abc", "1.5", "12abc"} {
		d := validDraft()
		d.Quantity = q
		assert.NotEmpty(t, draft.Validate(d, testNow).Message(draft.Quantity), "cantidad %q", q)
	}
	d := validDraft()
	d.Quantity = " 7 "
	assert.True(t, draft.Validate(d, testNow).Empty())
}

func TestViolations_ClearSoloQuitaEseCampo(t *testing.T) {
	v := draft.Validate(draft.Draft{}, testNow)

	v.Clear(draft.ProductName)

	assert.Empty(t, v.Message(draft.ProductName))
	assert.Len(t, v, 4)
}

func TestDraft_SetModelaYNoTocaOtrosCampos(t *testing.T) {
	d := validDraft()

	s := d.Set(draft.ProductCode, "ABCDEFGHIJKLMNOPQRSTUVWXYZ", draft.SourceInput)

	assert.True(t, s.Truncated)
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRST", d.ProductCode)
	assert.Equal(t, "Camisa Oxford", d.ProductName)
}

func TestFromProduct(t *testing.T) {
	d := draft.FromProduct(entity.Product{
		ID: "9", ProductCode: "X", ProductName: "Y", ImportDate: "2024-01-01", Quantity: 4, CategoryID: "3",
	})

	assert.Equal(t, draft.Draft{ProductCode: "X", ProductName: "Y", ImportDate: "2024-01-01", Quantity: "4", CategoryID: "3"}, d)
	assert.Equal(t, "", draft.FromProduct(entity.Product{}).Quantity)
}

func TestMerge_ConservaCamposNoEditadosYConvierteTipos(t *testing.T) {
	original := entity.Product{
		ID:          "9",
		ProductCode: "OLD",
		ProductName: "Viejo",
		ImportDate:  "2020-01-01",
		Quantity:    1,
		CategoryID:  "1",
		Extra:       map[string]json.RawMessage{"supplier": json.RawMessage(`"ACME"`)},
	}
	d := validDraft()
	d.CategoryID = "02"

	out, err := d.Merge(original)
	require.NoError(t, err)

	assert.Equal(t, "9", out.ID)
	assert.Equal(t, "CAM-001", out.ProductCode)
	assert.Equal(t, 12, out.Quantity)
	assert.Equal(t, "2", out.CategoryID)
	assert.JSONEq(t, `"ACME"`, string(out.Extra["supplier"]))

	out.Extra["supplier"] = json.RawMessage(`"otro"`)
	assert.JSONEq(t, `"ACME"`, string(original.Extra["supplier"]), "el producto cargado no se modifica")
	assert.Equal(t, "OLD", original.ProductCode)
}

func TestMerge_CantidadInvalida(t *testing.T) {
	d := validDraft()
	d.Quantity = "cero"

	_, err := d.Merge(entity.Product{ID: "1"})

	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestParseField(t *testing.T) {
	f, ok := draft.ParseField("productName")
	assert.True(t, ok)
	assert.Equal(t, draft.ProductName, f)

	_, ok = draft.ParseField("price")
	assert.False(t, ok)
}
