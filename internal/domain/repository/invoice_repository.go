package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
// Las lecturas cargan la relación Customer; GetByID devuelve (nil, nil) si no existe.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	// Search filtra por id del cliente vinculado y por fecha de la factura.
	Search(ctx context.Context, criteria search.Criteria) (search.Page[*entity.Invoice], error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
}
