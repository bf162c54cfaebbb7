package dto

import (
	"github.com/jhoicas/inventario-web/internal/domain/draft"
	"github.com/jhoicas/inventario-web/internal/domain/notice"
)

// ShapeRequest valor nuevo de un campo del editor.
type ShapeRequest struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Source string `json:"source"` // "input" | "paste"
}

// ShapeResponse valor a mostrar tras aplicar el límite del campo.
type ShapeResponse struct {
	Value     string         `json:"value"`
	Truncated bool           `json:"truncated"`
	Notice    *NoticeDTO     `json:"notice,omitempty"`
	Counter   *draft.Counter `json:"counter,omitempty"`
}

// KeystrokeRequest pulsación sobre un campo con su valor actual.
type KeystrokeRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
	Key   string `json:"key"`
}

// KeystrokeResponse indica si la pulsación puede aplicarse.
type KeystrokeResponse struct {
	Allowed bool       `json:"allowed"`
	Notice  *NoticeDTO `json:"notice,omitempty"`
}

// NoticeDTO notificación serializada para el contenedor de avisos.
type NoticeDTO struct {
	Level      string `json:"level"`
	Message    string `json:"message"`
	DurationMS int64  `json:"durationMs"`
}

// NoticeFrom convierte una notificación de dominio; nil si no hay aviso.
func NoticeFrom(n *notice.Notice) *NoticeDTO {
	if n == nil {
		return nil
	}
	return &NoticeDTO{Level: string(n.Level), Message: n.Message, DurationMS: n.DurationMS()}
}
