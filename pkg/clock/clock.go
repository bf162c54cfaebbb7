package clock

import "time"

// Clock abstrae la hora actual para poder fijar "hoy" en los tests.
type Clock interface {
	Now() time.Time
}

// Real hora local del servidor; "hoy" se evalúa en la zona horaria local.
type Real struct{}

// Now devuelve la hora local actual.
func (Real) Now() time.Time {
	return time.Now()
}

// Fixed reloj detenido en un instante.
type Fixed time.Time

// Now devuelve el instante fijo.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
