package editor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/draft"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/notice"
)

// Mensajes y duraciones de las notificaciones del editor.
const (
	LoadFailedMessage = "No se pudieron cargar los datos del producto."

	savedMessage      = "Producto actualizado correctamente."
	submitFailMessage = "No se pudo actualizar el producto. Inténtalo de nuevo."
	busyMessage       = "Ya se está guardando este producto. Espera un momento."

	savedDuration      = 2 * time.Second
	submitFailDuration = 4 * time.Second
	busyDuration       = 2 * time.Second
)

// Session estado de una vista de edición: producto cargado (inmutable), borrador,
// errores por campo y notificaciones pendientes de mostrar.
type Session struct {
	ID         string
	Categories []entity.Category
	Draft      draft.Draft
	Errors     draft.Violations
	Notices    notice.List
	LoadErr    error

	phase    Phase
	original entity.Product
	uc       *UseCase
}

// Phase fase actual.
func (s *Session) Phase() Phase { return s.phase }

// Original copia del producto cargado.
func (s *Session) Original() entity.Product { return s.original.Clone() }

// NotFound indica que la carga falló porque el producto no existe.
func (s *Session) NotFound() bool {
	return s.LoadErr != nil && errors.Is(s.LoadErr, domain.ErrNotFound)
}

func (s *Session) moveTo(to Phase) error {
	if err := transition(s.phase, to); err != nil {
		return err
	}
	s.phase = to
	return nil
}

// Edit aplica el modelado al valor y lo guarda en el borrador. Solo se borra el error en
// línea de ese campo. El aviso de recorte, si lo hay, se agrega a Notices.
func (s *Session) Edit(f draft.Field, value string, src draft.Source) (draft.Shaped, error) {
	if !s.phase.Interactive() {
		return draft.Shaped{}, fmt.Errorf("%w: editar en fase %s", domain.ErrInvalidState, s.phase)
	}
	if s.phase == PhaseSubmitFailed {
		if err := s.moveTo(PhaseEditing); err != nil {
			return draft.Shaped{}, err
		}
	}
	shaped := s.Draft.Set(f, value, src)
	s.Notices.AddPtr(shaped.Notice)
	if _, had := s.Errors[f]; had {
		s.Errors.Clear(f)
		if s.Errors.Empty() && s.phase == PhaseValidationFailed {
			_ = s.moveTo(PhaseEditing)
		}
	}
	return shaped, nil
}

// ApplyForm carga en el borrador los valores enviados por el formulario. Los campos ausentes
// conservan su valor.
func (s *Session) ApplyForm(values map[string]string) error {
	for _, f := range draft.Fields {
		v, ok := values[string(f)]
		if !ok {
			continue
		}
		if _, err := s.Edit(f, v, draft.SourceInput); err != nil {
			return err
		}
	}
	return nil
}

// Submit valida el borrador y, si es válido, reemplaza el producto en el servicio.
//
//   - Validación fallida: fase validation_failed, errores por campo, aviso resumen, sin red.
//   - Envío en curso para el mismo producto: ErrSubmitInProgress, el borrador no cambia.
//   - Fallo del servicio: aviso de reintento, vuelve a editing con el borrador intacto.
//   - Éxito: aviso de confirmación y fase navigating_away.
func (s *Session) Submit(ctx context.Context) error {
	if !s.phase.Interactive() {
		return fmt.Errorf("%w: enviar en fase %s", domain.ErrInvalidState, s.phase)
	}
	if s.phase == PhaseSubmitFailed {
		if err := s.moveTo(PhaseEditing); err != nil {
			return err
		}
	}

	violations := draft.Validate(s.Draft, s.uc.clock.Now())
	if !violations.Empty() {
		s.Errors = violations
		s.Notices.Add(violations.Summary())
		if err := s.moveTo(PhaseValidationFailed); err != nil {
			return err
		}
		return domain.ErrValidation
	}
	s.Errors = draft.Violations{}

	replacement, err := s.Draft.Merge(s.original)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if !s.uc.acquire(s.ID) {
		s.Notices.Add(notice.New(notice.Warning, busyMessage, busyDuration))
		return domain.ErrSubmitInProgress
	}
	defer s.uc.release(s.ID)

	if err := s.moveTo(PhaseSubmitting); err != nil {
		return err
	}

	if err := s.uc.products.Replace(ctx, replacement); err != nil {
		s.uc.log.Error().Err(err).Str("product_id", s.ID).Msg("actualización de producto fallida")
		s.Notices.Add(notice.New(notice.Error, submitFailMessage, submitFailDuration))
		_ = s.moveTo(PhaseSubmitFailed)
		_ = s.moveTo(PhaseEditing)
		return fmt.Errorf("%w: %w", domain.ErrSubmitFailure, err)
	}

	s.uc.log.Info().Str("product_id", s.ID).Msg("producto actualizado")
	s.Notices.Add(notice.New(notice.Success, savedMessage, savedDuration))
	return s.moveTo(PhaseNavigatingAway)
}

// Cancel descarta el borrador sin condiciones y marca la salida hacia el catálogo.
func (s *Session) Cancel() error {
	if err := s.moveTo(PhaseNavigatingAway); err != nil {
		return err
	}
	s.Draft = draft.FromProduct(s.original)
	s.Errors = draft.Violations{}
	return nil
}

// Counter contador en vivo del campo en el borrador actual.
func (s *Session) Counter(f draft.Field) draft.Counter {
	c, _ := draft.CounterFor(f, s.Draft.Get(f))
	return c
}
