package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrLoadFailure      = errors.New("no se pudieron cargar los datos")
	ErrValidation       = errors.New("el borrador tiene errores de validación")
	ErrSubmitFailure    = errors.New("no se pudo actualizar el producto")
	ErrSubmitInProgress = errors.New("ya hay una actualización en curso para este producto")
	ErrInvalidState     = errors.New("transición de estado no permitida")
)
