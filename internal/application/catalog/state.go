package catalog

import (
	domcatalog "github.com/jhoicas/inventario-web/internal/domain/catalog"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// State estado de la vista de catálogo: Loading, Ready o Failed.
// Solo los tipos de este paquete lo implementan.
type State interface {
	Kind() string
	isState()
}

// Loading petición en curso; solo se muestra el indicador de carga.
type Loading struct{}

// Ready datos cargados y proyectados.
type Ready struct {
	Query      domcatalog.Query
	Categories []entity.Category
	Projection domcatalog.Projection
}

// Failed la carga falló. La vista se renderiza igual, vacía, con un aviso no bloqueante.
type Failed struct {
	Err        error
	Query      domcatalog.Query
	Projection domcatalog.Projection
}

func (Loading) Kind() string { return "loading" }
func (Ready) Kind() string   { return "ready" }
func (Failed) Kind() string  { return "failed" }

func (Loading) isState() {}
func (Ready) isState()   {}
func (Failed) isState()  {}
