package dataservice

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

// Verificar en tiempo de compilación que ProductRepository implementa el puerto.
var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository adaptador REST de /products.
type ProductRepository struct {
	client *Client
}

// NewProductRepository construye el adaptador.
func NewProductRepository(client *Client) *ProductRepository {
	return &ProductRepository{client: client}
}

// List GET /products.
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	var records []productRecord
	if err := r.client.getJSON(ctx, resourcePath("products"), &records); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toEntity())
	}
	return out, nil
}

// GetByID GET /products/{id}. Un 404 se traduce a domain.ErrNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var rec productRecord
	if err := r.client.getJSON(ctx, resourcePath("products", id), &rec); err != nil {
		return nil, err
	}
	p := rec.toEntity()
	if p.ID == "" {
		p.ID = id
	}
	return &p, nil
}

// Replace PUT /products/{id} con el registro completo.
func (r *ProductRepository) Replace(ctx context.Context, product entity.Product) error {
	if product.ID == "" {
		return fmt.Errorf("reemplazar producto: id vacío")
	}
	return r.client.putJSON(ctx, resourcePath("products", product.ID), fromEntity(product))
}
