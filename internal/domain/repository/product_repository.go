package repository

import (
	"context"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// ProductRepository define el puerto de acceso a productos del servicio de datos (DIP).
// El cliente solo lee el conjunto completo y reemplaza un producto entero.
type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	// GetByID devuelve domain.ErrNotFound si el servicio no conoce el id.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Replace envía el registro completo (PUT).
	Replace(ctx context.Context, product entity.Product) error
}
