package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
)

const msgInvalidInvoiceDate = "La fecha de la factura no es válida"

// InvoiceUseCase casos de uso para facturas.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	criteria     *search.Builder
	now          func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	criteria *search.Builder,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		criteria:     criteria,
		now:          time.Now,
	}
}

// Create valida y registra una factura. valorTotal se guarda tal como lo envía el cliente.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.Date = strings.TrimSpace(in.Date)
	in.ProductName = strings.TrimSpace(in.ProductName)
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	customerID, err := customerKey(in.CustomerID)
	if err != nil {
		return nil, err
	}
	date, err := search.ParseDay(in.Date, uc.criteria.Location())
	if err != nil {
		return nil, domain.NewValidationError(msgInvalidInvoiceDate)
	}
	customer, err := uc.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	invoice := &entity.Invoice{
		ID:          uuid.New().String(),
		CustomerID:  customer.ID,
		Customer:    customer,
		Date:        date,
		ProductName: in.ProductName,
		Price:       in.Price,
		Discount:    in.Discount,
		Tax:         in.Tax,
		Total:       in.Total,
		CreatedAt:   uc.now(),
	}
	if err := uc.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GetByID obtiene una factura con su cliente; ErrInvoiceNotFound si no existe.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// List devuelve todas las facturas con su cliente.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := uc.invoiceRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInvoiceResponse(inv))
	}
	return out, nil
}

// Search búsqueda paginada por cliente vinculado y rango de fechas de la factura.
// Cada elemento reemplaza la referencia al cliente por su nombre.
func (uc *InvoiceUseCase) Search(ctx context.Context, params search.Params) (*dto.PageResponse[dto.InvoiceListItem], error) {
	criteria, err := uc.criteria.Build(params)
	if err != nil {
		return nil, err
	}
	page, err := uc.invoiceRepo.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}
	data := make([]dto.InvoiceListItem, 0, len(page.Items))
	for _, inv := range page.Items {
		data = append(data, toInvoiceListItem(inv))
	}
	return &dto.PageResponse[dto.InvoiceListItem]{Data: data, Total: page.Total}, nil
}

// Update actualización parcial. Si llega clienteId debe existir; si no llega se conserva el vínculo.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.Date = strings.TrimSpace(in.Date)
	in.ProductName = strings.TrimSpace(in.ProductName)
	if in.IsEmpty() {
		return nil, domain.NewValidationError(msgEmptyBody)
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	var customerID string
	if in.CustomerID != "" {
		key, err := customerKey(in.CustomerID)
		if err != nil {
			return nil, err
		}
		customerID = key
	}
	var date time.Time
	if in.Date != "" {
		d, err := search.ParseDay(in.Date, uc.criteria.Location())
		if err != nil {
			return nil, domain.NewValidationError(msgInvalidInvoiceDate)
		}
		date = d
	}

	invoice, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if customerID != "" {
		customer, err := uc.findCustomer(ctx, customerID)
		if err != nil {
			return nil, err
		}
		invoice.CustomerID = customer.ID
		invoice.Customer = customer
	}
	if !date.IsZero() {
		invoice.Date = date
	}
	if in.ProductName != "" {
		invoice.ProductName = in.ProductName
	}
	if in.Price != nil && !in.Price.IsZero() {
		invoice.Price = *in.Price
	}
	if in.Discount != nil {
		invoice.Discount = *in.Discount
	}
	if in.Tax != nil {
		invoice.Tax = *in.Tax
	}
	if in.Total != nil && !in.Total.IsZero() {
		invoice.Total = *in.Total
	}
	if err := uc.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Delete elimina una factura existente; ErrInvoiceNotFound si no existe.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	invoice, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	return uc.invoiceRepo.Delete(ctx, invoice.ID)
}

func (uc *InvoiceUseCase) find(ctx context.Context, id string) (*entity.Invoice, error) {
	key, ok := normalizeID(id)
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	invoice, err := uc.invoiceRepo.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrInvoiceNotFound
	}
	return invoice, nil
}

// customerKey valida el clienteId recibido en el cuerpo. Acepta cualquier forma que acepte
// uuid.Parse (mayúsculas, llaves, urn) y devuelve la canónica.
func customerKey(id string) (string, error) {
	key, ok := normalizeID(id)
	if !ok {
		return "", domain.NewValidationError(msgInvalidCustomerID)
	}
	return key, nil
}

// findCustomer busca por id canónico; ErrCustomerNotFound si no existe.
func (uc *InvoiceUseCase) findCustomer(ctx context.Context, key string) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:          inv.ID,
		CustomerID:  inv.CustomerID,
		Customer:    toCustomerResponse(inv.Customer),
		Date:        search.FormatDay(inv.Date),
		ProductName: inv.ProductName,
		Price:       inv.Price,
		Discount:    inv.Discount,
		Tax:         inv.Tax,
		Total:       inv.Total,
		CreatedAt:   inv.CreatedAt,
	}
}

func toInvoiceListItem(inv *entity.Invoice) dto.InvoiceListItem {
	return dto.InvoiceListItem{
		ID:           inv.ID,
		ProductName:  inv.ProductName,
		Price:        inv.Price,
		CustomerName: inv.CustomerName(),
		Date:         search.FormatDay(inv.Date),
		Discount:     inv.Discount,
		Tax:          inv.Tax,
		Total:        inv.Total,
	}
}
