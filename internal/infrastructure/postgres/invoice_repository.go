package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// Las lecturas traen el cliente en la misma fila (relación cargada).
const invoiceSelect = `
		SELECT f.id, f.cliente_id, f.fecha, f.nombre_producto, f.precio, f.valor_descuento,
		       f.iva, f.valor_total, f.created_at, ` + customerColumns + `
		FROM facturas f
		JOIN clientes c ON c.id = f.cliente_id`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO facturas (id, cliente_id, fecha, nombre_producto, precio, valor_descuento, iva, valor_total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Date, invoice.ProductName,
		invoice.Price, invoice.Discount, invoice.Tax, invoice.Total, invoice.CreatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrConflict
		case isForeignKeyViolation(err):
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura con su cliente.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, invoiceSelect+` WHERE f.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List lista todas las facturas con su cliente.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, invoiceSelect+` ORDER BY f.created_at, f.id`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return collectInvoices(rows)
}

// Search filtra por cliente y fecha de la factura; el conteo usa el mismo WHERE.
func (r *InvoiceRepo) Search(ctx context.Context, criteria search.Criteria) (search.Page[*entity.Invoice], error) {
	where, args := whereClause(criteria.Predicates, invoiceFilter)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM facturas f`+where, args...).Scan(&total); err != nil {
		return search.Page[*entity.Invoice]{}, fmt.Errorf("count invoices: %w", err)
	}

	page, pageArgs := pageClause(criteria.Window, args)
	rows, err := r.q.Query(ctx, invoiceSelect+where+` ORDER BY f.created_at, f.id`+page, pageArgs...)
	if err != nil {
		return search.Page[*entity.Invoice]{}, fmt.Errorf("search invoices: %w", err)
	}
	items, err := collectInvoices(rows)
	if err != nil {
		return search.Page[*entity.Invoice]{}, err
	}
	return search.Page[*entity.Invoice]{Items: items, Total: total}, nil
}

// Update actualiza los campos editables de la factura.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE facturas
		SET cliente_id = $2, fecha = $3, nombre_producto = $4, precio = $5,
		    valor_descuento = $6, iva = $7, valor_total = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.Date, invoice.ProductName,
		invoice.Price, invoice.Discount, invoice.Tax, invoice.Total,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM facturas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var (
		inv entity.Invoice
		c   entity.Customer
	)
	err := row.Scan(
		&inv.ID, &inv.CustomerID, &inv.Date, &inv.ProductName, &inv.Price, &inv.Discount,
		&inv.Tax, &inv.Total, &inv.CreatedAt,
		&c.ID, &c.Name, &c.IDType, &c.IDNumber, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.Customer = &c
	return &inv, nil
}

func collectInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	defer rows.Close()
	list := []*entity.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}
