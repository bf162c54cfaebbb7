package editor

import (
	"fmt"

	"github.com/jhoicas/inventario-web/internal/domain"
)

// Phase estado de la vista de edición.
type Phase string

const (
	PhaseLoading          Phase = "loading"
	PhaseLoadFailed       Phase = "load_failed" // terminal: no hay reintento
	PhaseEditing          Phase = "editing"
	PhaseValidationFailed Phase = "validation_failed"
	PhaseSubmitting       Phase = "submitting"
	PhaseSubmitFailed     Phase = "submit_failed"
	PhaseNavigatingAway   Phase = "navigating_away"
)

// transitions transiciones permitidas. Editar o reintentar desde validation_failed vuelve
// a editing o pasa directamente a submitting.
var transitions = map[Phase][]Phase{
	PhaseLoading:          {PhaseEditing, PhaseLoadFailed},
	PhaseEditing:          {PhaseEditing, PhaseValidationFailed, PhaseSubmitting, PhaseNavigatingAway},
	PhaseValidationFailed: {PhaseEditing, PhaseValidationFailed, PhaseSubmitting, PhaseNavigatingAway},
	PhaseSubmitting:       {PhaseNavigatingAway, PhaseSubmitFailed},
	PhaseSubmitFailed:     {PhaseEditing, PhaseNavigatingAway},
}

// CanTransition indica si from → to es una transición válida.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Interactive la vista acepta ediciones en esta fase.
func (p Phase) Interactive() bool {
	return p == PhaseEditing || p == PhaseValidationFailed || p == PhaseSubmitFailed
}

func transition(from, to Phase) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s → %s", domain.ErrInvalidState, from, to)
	}
	return nil
}
