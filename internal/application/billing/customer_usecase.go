package billing

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
)

const msgEmptyBody = "Falta el cuerpo de la petición"

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	criteria *search.Builder
	now      func() time.Time
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, criteria *search.Builder) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, criteria: criteria, now: time.Now}
}

// Create valida y crea un nuevo cliente.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	in = dto.CreateCustomerRequest{
		Name:     strings.TrimSpace(in.Name),
		IDType:   strings.TrimSpace(in.IDType),
		IDNumber: dto.FlexString(strings.TrimSpace(string(in.IDNumber))),
		Notes:    strings.TrimSpace(in.Notes),
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	now := uc.now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		IDType:    in.IDType,
		IDNumber:  string(in.IDNumber),
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente; ErrCustomerNotFound si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

// ListForSelection devuelve los clientes como pares {value: id, label: nombre},
// ordenados alfabéticamente con reglas del español.
func (uc *CustomerUseCase) ListForSelection(ctx context.Context) ([]dto.OptionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OptionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.OptionResponse{Value: c.ID, Label: c.Name})
	}
	col := collate.New(language.Spanish, collate.IgnoreCase)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Label, out[j].Label) < 0
	})
	return out, nil
}

// IDTypes catálogo de tipos de identificación para el formulario.
func (uc *CustomerUseCase) IDTypes() []dto.OptionResponse {
	out := make([]dto.OptionResponse, 0, len(entity.IDTypes))
	for _, t := range entity.IDTypes {
		out = append(out, dto.OptionResponse{Value: t.Code, Label: t.Label})
	}
	return out
}

// Search búsqueda paginada por id del cliente y rango de fechas de creación.
func (uc *CustomerUseCase) Search(ctx context.Context, params search.Params) (*dto.PageResponse[dto.CustomerResponse], error) {
	criteria, err := uc.criteria.Build(params)
	if err != nil {
		return nil, err
	}
	page, err := uc.repo.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CustomerResponse, 0, len(page.Items))
	for _, c := range page.Items {
		data = append(data, *toCustomerResponse(c))
	}
	return &dto.PageResponse[dto.CustomerResponse]{Data: data, Total: page.Total}, nil
}

// Update actualización parcial: los campos vacíos conservan el valor almacenado.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	in = dto.UpdateCustomerRequest{
		Name:     strings.TrimSpace(in.Name),
		IDType:   strings.TrimSpace(in.IDType),
		IDNumber: dto.FlexString(strings.TrimSpace(string(in.IDNumber))),
		Notes:    strings.TrimSpace(in.Notes),
	}
	if in.IsEmpty() {
		return nil, domain.NewValidationError(msgEmptyBody)
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	customer, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	if in.IDType != "" {
		customer.IDType = in.IDType
	}
	if in.IDNumber != "" {
		customer.IDNumber = string(in.IDNumber)
	}
	if in.Notes != "" {
		customer.Notes = in.Notes
	}
	customer.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente existente. Un id inexistente es ErrCustomerNotFound y no borra nada.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	customer, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, customer.ID)
}

func (uc *CustomerUseCase) find(ctx context.Context, id string) (*entity.Customer, error) {
	key, ok := normalizeID(id)
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	customer, err := uc.repo.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

// normalizeID devuelve el UUID en forma canónica; un id mal formado no puede existir.
func normalizeID(id string) (string, bool) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", false
	}
	return u.String(), true
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		IDType:    c.IDType,
		IDNumber:  c.IDNumber,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
