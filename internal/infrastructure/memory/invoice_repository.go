package memory

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación en memoria de InvoiceRepository.
type InvoiceRepo struct {
	s *Store
}

// Create guarda la factura; el cliente referenciado debe existir.
func (r *InvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[invoice.ID]; ok {
		return domain.ErrConflict
	}
	if _, ok := r.s.customers[invoice.CustomerID]; !ok {
		return domain.ErrCustomerNotFound
	}
	cp := *invoice
	cp.Customer = nil
	r.s.invoices[invoice.ID] = &cp
	r.s.invoiceOrder = append(r.s.invoiceOrder, invoice.ID)
	return nil
}

// GetByID devuelve la factura con su cliente, o (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return r.s.cloneInvoice(inv), nil
}

// List devuelve las facturas en orden de inserción.
func (r *InvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Invoice, 0, len(r.s.invoiceOrder))
	for _, id := range r.s.invoiceOrder {
		out = append(out, r.s.cloneInvoice(r.s.invoices[id]))
	}
	return out, nil
}

// Search filtra por cliente vinculado y fecha de la factura y aplica la ventana.
func (r *InvoiceRepo) Search(_ context.Context, criteria search.Criteria) (search.Page[*entity.Invoice], error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var matches []*entity.Invoice
	for _, id := range r.s.invoiceOrder {
		inv := r.s.invoices[id]
		if criteria.Match(inv.Date, inv.CustomerID) {
			matches = append(matches, inv)
		}
	}
	window := search.Slice(matches, criteria.Window)
	items := make([]*entity.Invoice, 0, len(window))
	for _, inv := range window {
		items = append(items, r.s.cloneInvoice(inv))
	}
	return search.Page[*entity.Invoice]{Items: items, Total: len(matches)}, nil
}

// Update reemplaza la factura; el cliente referenciado debe existir.
func (r *InvoiceRepo) Update(_ context.Context, invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[invoice.ID]; !ok {
		return nil
	}
	if _, ok := r.s.customers[invoice.CustomerID]; !ok {
		return domain.ErrCustomerNotFound
	}
	cp := *invoice
	cp.Customer = nil
	r.s.invoices[invoice.ID] = &cp
	return nil
}

// Delete elimina la factura si existe.
func (r *InvoiceRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.invoices[id]; !ok {
		return nil
	}
	delete(r.s.invoices, id)
	r.s.invoiceOrder = removeID(r.s.invoiceOrder, id)
	return nil
}
