package repository

import (
	"context"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura de categorías (DIP).
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
}
