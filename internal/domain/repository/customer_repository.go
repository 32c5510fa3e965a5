package repository

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
)

// CustomerRepository define el puerto de persistencia para Customer.
// GetByID devuelve (nil, nil) cuando el cliente no existe.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	// Search filtra por id propio y por fecha de creación, y devuelve la página pedida
	// junto con el total de coincidencias (sin paginar).
	Search(ctx context.Context, criteria search.Criteria) (search.Page[*entity.Customer], error)
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete devuelve domain.ErrCustomerHasInvoices si el cliente tiene facturas.
	Delete(ctx context.Context, id string) error
}
