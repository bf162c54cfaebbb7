package draft

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/inventario-web/internal/domain/notice"
)

// Duraciones de las notificaciones de modelado de entrada.
const (
	TruncateNoticeDuration = 2 * time.Second
	KeyNoticeDuration      = 1500 * time.Millisecond
)

// Source origen de un cambio de valor.
type Source string

const (
	SourceInput Source = "input" // cambio de valor o tecleo
	SourcePaste Source = "paste" // pegado desde el portapapeles
)

// Shaped resultado de modelar una entrada: valor final y aviso opcional.
// El aviso es un valor; emitirlo es responsabilidad de quien llama.
type Shaped struct {
	Value     string
	Truncated bool
	Notice    *notice.Notice
}

// Truncate corta s a max caracteres (puntos de código).
func Truncate(s string, max int) string {
	if max < 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	i := 0
	for pos := range s {
		if i == max {
			return s[:pos]
		}
		i++
	}
	return s
}

// Length longitud en caracteres, la misma unidad que usan los límites.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Shape aplica el límite del campo a un valor nuevo. Campos sin límite pasan sin cambios.
// Es idempotente: Shape(Shape(x).Value) no vuelve a truncar.
func Shape(f Field, value string, src Source) Shaped {
	lim, ok := LimitFor(f)
	if !ok || Length(value) <= lim.Max {
		return Shaped{Value: value}
	}
	msg := fmt.Sprintf("%s se recortó a %d caracteres.", lim.Label, lim.Max)
	if src == SourcePaste {
		msg = fmt.Sprintf("El texto pegado se recortó a %d caracteres.", lim.Max)
	}
	n := notice.New(notice.Warning, msg, TruncateNoticeDuration)
	return Shaped{
		Value:     Truncate(value, lim.Max),
		Truncated: true,
		Notice:    &n,
	}
}

// editingKeys teclas que siempre se permiten aunque el campo esté lleno.
var editingKeys = map[string]bool{
	"Backspace":  true,
	"Delete":     true,
	"ArrowLeft":  true,
	"ArrowRight": true,
	"ArrowUp":    true,
	"ArrowDown":  true,
	"Tab":        true,
}

// AllowKey decide si una pulsación puede extender el valor actual. Con el campo ya en el
// límite solo pasan las teclas de edición y navegación.
func AllowKey(f Field, current, key string) (bool, *notice.Notice) {
	lim, ok := LimitFor(f)
	if !ok || editingKeys[key] || Length(current) < lim.Max {
		return true, nil
	}
	n := notice.New(notice.Warning,
		fmt.Sprintf("%s alcanzó el límite de %d caracteres.", lim.Label, lim.Max),
		KeyNoticeDuration)
	return false, &n
}

// CounterLevel urgencia visual del contador de caracteres.
type CounterLevel string

const (
	LevelNormal  CounterLevel = "normal"
	LevelWarning CounterLevel = "warning"
	LevelDanger  CounterLevel = "danger"
)

// Counter contador en vivo longitud/límite.
type Counter struct {
	Length int          `json:"length"`
	Limit  int          `json:"limit"`
	Level  CounterLevel `json:"level"`
}

// CounterFor calcula el contador del campo. ok es false para campos sin límite.
func CounterFor(f Field, value string) (Counter, bool) {
	lim, ok := LimitFor(f)
	if !ok {
		return Counter{}, false
	}
	n := Length(value)
	c := Counter{Length: n, Limit: lim.Max, Level: LevelNormal}
	switch {
	case n >= lim.Danger:
		c.Level = LevelDanger
	case n >= lim.Warn:
		c.Level = LevelWarning
	}
	return c, true
}
