// Package memory implementa los puertos de persistencia en memoria. Sirve para ejecutar la API
// sin base de datos (STORE_DRIVER=memory) y como almacenamiento de los tests.
//
// Conserva el orden de inserción y las mismas reglas de integridad que el esquema relacional:
// una factura exige un cliente existente y un cliente con facturas no se puede eliminar.
package memory

import (
	"slices"
	"sync"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// Store tablas en memoria compartidas por los repositorios de clientes y facturas.
type Store struct {
	mu            sync.RWMutex
	customers     map[string]*entity.Customer
	customerOrder []string
	invoices      map[string]*entity.Invoice
	invoiceOrder  []string
}

// NewStore construye un almacenamiento vacío.
func NewStore() *Store {
	return &Store{
		customers: make(map[string]*entity.Customer),
		invoices:  make(map[string]*entity.Invoice),
	}
}

// Customers devuelve el repositorio de clientes sobre este almacenamiento.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Invoices devuelve el repositorio de facturas sobre este almacenamiento.
func (s *Store) Invoices() *InvoiceRepo { return &InvoiceRepo{s: s} }

func cloneCustomer(c *entity.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// cloneInvoice copia la factura y adjunta una copia del cliente actual (relación cargada).
// Debe llamarse con s.mu tomado.
func (s *Store) cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	cp := *inv
	cp.Customer = cloneCustomer(s.customers[inv.CustomerID])
	return &cp
}

func removeID(order []string, id string) []string {
	if i := slices.Index(order, id); i >= 0 {
		return slices.Delete(order, i, i+1)
	}
	return order
}
