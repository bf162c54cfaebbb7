package catalog

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/inventario-web/internal/domain"
	domcatalog "github.com/jhoicas/inventario-web/internal/domain/catalog"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/notice"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// Mensajes y duraciones de las notificaciones del catálogo.
const (
	loadFailedMessage = "No se pudieron cargar los datos. Verifica la conexión con el servidor."
	refreshedMessage  = "Datos actualizados."

	loadFailedDuration = 4 * time.Second
	refreshedDuration  = 2 * time.Second
)

// Options parámetros de presentación del catálogo.
type Options struct {
	PageSize   int
	DateLayout string
}

// UseCase vista de catálogo: carga concurrente de productos y categorías y proyección.
type UseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	opts       Options
	log        *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	opts Options,
	log *logger.Logger,
) *UseCase {
	if opts.PageSize <= 0 {
		opts.PageSize = domcatalog.DefaultPageSize
	}
	if opts.DateLayout == "" {
		opts.DateLayout = domcatalog.DefaultDateLayout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{
		products:   products,
		categories: categories,
		opts:       opts,
		log:        log.Component("catalog"),
	}
}

// Snapshot conjunto completo leído del servicio. Los productos ya vienen en el orden base
// (cantidad descendente, estable).
type Snapshot struct {
	Products   []entity.Product
	Categories []entity.Category
}

// Load pide productos y categorías en paralelo. Si cualquiera falla devuelve ErrLoadFailure
// envolviendo la causa; no hay resultado parcial.
func (uc *UseCase) Load(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := uc.products.List(gctx)
		if err != nil {
			return fmt.Errorf("productos: %w", err)
		}
		snap.Products = domcatalog.SortByQuantityDesc(list)
		return nil
	})
	g.Go(func() error {
		list, err := uc.categories.List(gctx)
		if err != nil {
			return fmt.Errorf("categorías: %w", err)
		}
		snap.Categories = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoadFailure, err)
	}
	return &snap, nil
}

// Project deriva la proyección de un snapshot ya cargado.
func (uc *UseCase) Project(snap *Snapshot, q domcatalog.Query) domcatalog.Projection {
	in := domcatalog.Input{Query: q, PageSize: uc.opts.PageSize, DateLayout: uc.opts.DateLayout}
	if snap != nil {
		in.Products = snap.Products
		in.Categories = snap.Categories
	}
	return domcatalog.Project(in)
}

// View carga los datos y devuelve el estado de la vista para la consulta dada, junto con
// las notificaciones a mostrar. Un fallo de carga no es fatal: la vista queda en Failed.
func (uc *UseCase) View(ctx context.Context, q domcatalog.Query) (State, notice.List) {
	var notices notice.List
	snap, err := uc.Load(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("carga del catálogo fallida")
		notices.Add(notice.New(notice.Error, loadFailedMessage, loadFailedDuration))
		return Failed{Err: err, Query: q, Projection: uc.Project(nil, q)}, notices
	}
	uc.log.Debug().
		Int("products", len(snap.Products)).
		Int("categories", len(snap.Categories)).
		Str("q", q.Name).
		Str("category", q.CategoryID).
		Int("page", q.Page).
		Msg("catálogo cargado")
	return Ready{
		Query:      q,
		Categories: snap.Categories,
		Projection: uc.Project(snap, q),
	}, notices
}

// Refresh limpia filtros, vuelve a la página 1 y recarga ambos recursos. La notificación
// refleja el resultado real de la recarga.
func (uc *UseCase) Refresh(ctx context.Context) (State, notice.List) {
	state, notices := uc.View(ctx, domcatalog.Query{}.Reset())
	if _, ok := state.(Ready); ok {
		notices.Add(notice.New(notice.Info, refreshedMessage, refreshedDuration))
	}
	return state, notices
}
