package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/draft"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
	"github.com/jhoicas/inventario-web/pkg/clock"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// Options parámetros del editor.
type Options struct {
	// RedirectDelay espera entre el aviso de éxito y la vuelta al catálogo.
	RedirectDelay time.Duration
}

// UseCase vista de edición: carga, sesiones de borrador y envío con candado por producto.
type UseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	clock      clock.Clock
	opts       Options
	log        *logger.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	clk clock.Clock,
	opts Options,
	log *logger.Logger,
) *UseCase {
	if clk == nil {
		clk = clock.Real{}
	}
	if opts.RedirectDelay <= 0 {
		opts.RedirectDelay = 2 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		products:   products,
		categories: categories,
		clock:      clk,
		opts:       opts,
		log:        log.Component("editor"),
		inflight:   make(map[string]struct{}),
	}
}

// Open carga el producto y las categorías en paralelo y devuelve una sesión. Si algo falla
// la sesión queda en load_failed (bloqueante); un id desconocido conserva domain.ErrNotFound
// en la causa.
func (uc *UseCase) Open(ctx context.Context, id string) *Session {
	s := &Session{ID: id, phase: PhaseLoading, uc: uc}

	var (
		product    *entity.Product
		categories []entity.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := uc.products.GetByID(gctx, id)
		if err != nil {
			return fmt.Errorf("producto %s: %w", id, err)
		}
		product = p
		return nil
	})
	g.Go(func() error {
		list, err := uc.categories.List(gctx)
		if err != nil {
			return fmt.Errorf("categorías: %w", err)
		}
		categories = list
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.log.Warn().Err(err).Str("product_id", id).Msg("carga del editor fallida")
		s.LoadErr = fmt.Errorf("%w: %w", domain.ErrLoadFailure, err)
		s.phase = PhaseLoadFailed
		return s
	}

	s.original = product.Clone()
	s.Categories = categories
	s.Draft = draft.FromProduct(*product)
	s.Errors = draft.Violations{}
	s.phase = PhaseEditing
	return s
}

// acquire toma el candado de envío del producto. false si ya hay un envío en curso.
func (uc *UseCase) acquire(id string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inflight[id]; busy {
		return false
	}
	uc.inflight[id] = struct{}{}
	return true
}

func (uc *UseCase) release(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inflight, id)
}

// RedirectDelay espera configurada antes de volver al catálogo.
func (uc *UseCase) RedirectDelay() time.Duration {
	return uc.opts.RedirectDelay
}
