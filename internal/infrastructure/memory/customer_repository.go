package memory

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	s *Store
}

// Create guarda una copia del cliente.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[customer.ID]; ok {
		return domain.ErrConflict
	}
	r.s.customers[customer.ID] = cloneCustomer(customer)
	r.s.customerOrder = append(r.s.customerOrder, customer.ID)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return cloneCustomer(r.s.customers[id]), nil
}

// List devuelve los clientes en orden de inserción.
func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Customer, 0, len(r.s.customerOrder))
	for _, id := range r.s.customerOrder {
		out = append(out, cloneCustomer(r.s.customers[id]))
	}
	return out, nil
}

// Search filtra por id propio y fecha de creación y aplica la ventana.
func (r *CustomerRepo) Search(_ context.Context, criteria search.Criteria) (search.Page[*entity.Customer], error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var matches []*entity.Customer
	for _, id := range r.s.customerOrder {
		c := r.s.customers[id]
		if criteria.Match(c.CreatedAt, c.ID) {
			matches = append(matches, c)
		}
	}
	window := search.Slice(matches, criteria.Window)
	items := make([]*entity.Customer, 0, len(window))
	for _, c := range window {
		items = append(items, cloneCustomer(c))
	}
	return search.Page[*entity.Customer]{Items: items, Total: len(matches)}, nil
}

// Update reemplaza el cliente; un id inexistente no es error (igual que UPDATE sin filas).
func (r *CustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.customers[customer.ID]; ok {
		r.s.customers[customer.ID] = cloneCustomer(customer)
	}
	return nil
}

// Delete elimina el cliente si no tiene facturas.
func (r *CustomerRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, inv := range r.s.invoices {
		if inv.CustomerID == id {
			return domain.ErrCustomerHasInvoices
		}
	}
	if _, ok := r.s.customers[id]; !ok {
		return nil
	}
	delete(r.s.customers, id)
	r.s.customerOrder = removeID(r.s.customerOrder, id)
	return nil
}
