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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `c.id, c.nombre_cliente, c.tipo_identificacion, c.numero_identificacion,
		c.observaciones, c.created_at, c.updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO clientes (id, nombre_cliente, tipo_identificacion, numero_identificacion, observaciones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.IDType, customer.IDNumber, customer.Notes,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes c WHERE c.id = $1`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// List lista todos los clientes.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM clientes c ORDER BY c.created_at, c.id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return collectCustomers(rows)
}

// Search ejecuta la consulta filtrada y el conteo con el mismo WHERE.
func (r *CustomerRepo) Search(ctx context.Context, criteria search.Criteria) (search.Page[*entity.Customer], error) {
	where, args := whereClause(criteria.Predicates, customerFilter)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM clientes c`+where, args...).Scan(&total); err != nil {
		return search.Page[*entity.Customer]{}, fmt.Errorf("count customers: %w", err)
	}

	page, pageArgs := pageClause(criteria.Window, args)
	query := `SELECT ` + customerColumns + ` FROM clientes c` + where + ` ORDER BY c.created_at, c.id` + page
	rows, err := r.q.Query(ctx, query, pageArgs...)
	if err != nil {
		return search.Page[*entity.Customer]{}, fmt.Errorf("search customers: %w", err)
	}
	items, err := collectCustomers(rows)
	if err != nil {
		return search.Page[*entity.Customer]{}, err
	}
	return search.Page[*entity.Customer]{Items: items, Total: total}, nil
}

// Update actualiza un cliente.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE clientes
		SET nombre_cliente = $2, tipo_identificacion = $3, numero_identificacion = $4,
		    observaciones = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.Name, customer.IDType, customer.IDNumber, customer.Notes, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerHasInvoices
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.IDType, &c.IDNumber, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	defer rows.Close()
	list := []*entity.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
