package draft

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/inventario-web/internal/domain/catalog"
	"github.com/jhoicas/inventario-web/internal/domain/notice"
)

// SummaryNoticeDuration duración del aviso resumen cuando la validación falla.
const SummaryNoticeDuration = 3 * time.Second

// Violations errores por campo detectados al enviar. Vacío significa válido.
type Violations map[Field]string

// Empty indica que no hay errores.
func (v Violations) Empty() bool { return len(v) == 0 }

// Message devuelve el mensaje del campo, o "".
func (v Violations) Message(f Field) string { return v[f] }

// Clear quita el error de un solo campo (al editarlo).
func (v Violations) Clear(f Field) { delete(v, f) }

// Summary aviso resumen para el toast.
func (v Violations) Summary() notice.Notice {
	return notice.New(notice.Error, "Revisa la información del formulario.", SummaryNoticeDuration)
}

// Validate evalúa todas las reglas a la vez y acumula cada infracción; no se detiene en la primera.
// now define "hoy": la fecha de ingreso no puede ser posterior al final del día actual.
func Validate(d Draft, now time.Time) Violations {
	v := Violations{}

	for _, f := range []Field{ProductCode, ProductName} {
		lim, _ := LimitFor(f)
		value := d.Get(f)
		switch {
		case value == "":
			v[f] = fmt.Sprintf("%s es obligatorio.", lim.Label)
		case Length(value) > lim.Max:
			v[f] = fmt.Sprintf("%s no puede superar %d caracteres.", lim.Label, lim.Max)
		}
	}

	if d.ImportDate == "" {
		v[ImportDate] = "La fecha de ingreso es obligatoria."
	} else if date, ok := catalog.ParseISODate(d.ImportDate); !ok {
		v[ImportDate] = "La fecha de ingreso no es válida."
	} else if afterToday(date, now) {
		v[ImportDate] = "La fecha de ingreso no puede ser posterior a hoy."
	}

	if strings.TrimSpace(d.CategoryID) == "" {
		v[CategoryID] = "La categoría es obligatoria."
	}

	if d.Quantity == "" {
		v[Quantity] = "La cantidad es obligatoria."
	} else if _, err := ParseQuantity(d.Quantity); err != nil {
		v[Quantity] = "La cantidad debe ser un número entero mayor que 0."
	}

	return v
}

// ParseQuantity interpreta la cantidad como entero en base 10 estrictamente positivo.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("cantidad %d no es mayor que 0", n)
	}
	return n, nil
}

// afterToday compara contra el final del día de now, en la zona horaria de now.
// Las fechas sin hora se interpretan como el inicio de ese día en la misma zona.
func afterToday(date, now time.Time) bool {
	loc := now.Location()
	if date.Hour() == 0 && date.Minute() == 0 && date.Second() == 0 && date.Nanosecond() == 0 && date.Location() == time.UTC {
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	}
	y, m, d := now.Date()
	endOfDay := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	return date.After(endOfDay)
}
