package dataservice

import (
	"context"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository adaptador REST de /categories.
type CategoryRepository struct {
	client *Client
}

// NewCategoryRepository construye el adaptador.
func NewCategoryRepository(client *Client) *CategoryRepository {
	return &CategoryRepository{client: client}
}

// List GET /categories.
func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	var records []categoryRecord
	if err := r.client.getJSON(ctx, resourcePath("categories"), &records); err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toEntity())
	}
	return out, nil
}
