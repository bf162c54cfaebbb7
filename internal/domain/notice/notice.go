package notice

import "time"

// Level severidad de una notificación transitoria (toast).
type Level string

const (
	Info    Level = "info"
	Success Level = "success"
	Warning Level = "warning"
	Error   Level = "error"
)

// Notice notificación no bloqueante. Es puramente presentacional: no forma parte del estado.
type Notice struct {
	Level    Level         `json:"level"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"-"`
}

// DurationMS duración en milisegundos, para la vista y la API JSON.
func (n Notice) DurationMS() int64 {
	return n.Duration.Milliseconds()
}

// New construye una notificación.
func New(level Level, msg string, d time.Duration) Notice {
	return Notice{Level: level, Message: msg, Duration: d}
}

// List acumula notificaciones emitidas durante una acción.
type List []Notice

// Add agrega una notificación.
func (l *List) Add(n Notice) {
	*l = append(*l, n)
}

// AddPtr agrega la notificación si no es nil.
func (l *List) AddPtr(n *Notice) {
	if n != nil {
		*l = append(*l, *n)
	}
}
