package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /v1/facturas.
// valorTotal lo calcula el cliente y se guarda sin recalcular.
type CreateInvoiceRequest struct {
	CustomerID  string          `json:"clienteId" validate:"required" example:"123e4567-e89b-12d3-a456-426614174000"`
	Date        string          `json:"fecha" validate:"required" example:"2024-08-10"`
	ProductName string          `json:"nombreProducto" validate:"required,max=150" example:"Laptop"`
	Price       decimal.Decimal `json:"precio" validate:"required,gt=0,lte=99999999.99" swaggertype:"number" example:"1200"`
	Discount    decimal.Decimal `json:"valorDescuento" validate:"gte=0,lte=50" swaggertype:"number" example:"10"`
	Tax         decimal.Decimal `json:"iva" validate:"gte=0,lte=999.99" swaggertype:"number" example:"19"`
	Total       decimal.Decimal `json:"valorTotal" validate:"required,gt=0,lte=99999999.99" swaggertype:"number" example:"1308"`
}

// UpdateInvoiceRequest body para PUT /v1/facturas/:id. Campos ausentes conservan el valor actual;
// precio y valorTotal en cero también se consideran ausentes.
type UpdateInvoiceRequest struct {
	CustomerID  string           `json:"clienteId"`
	Date        string           `json:"fecha"`
	ProductName string           `json:"nombreProducto" validate:"omitempty,max=150"`
	Price       *decimal.Decimal `json:"precio" validate:"omitempty,gt=0,lte=99999999.99" swaggertype:"number"`
	Discount    *decimal.Decimal `json:"valorDescuento" validate:"omitempty,gte=0,lte=50" swaggertype:"number"`
	Tax         *decimal.Decimal `json:"iva" validate:"omitempty,gte=0,lte=999.99" swaggertype:"number"`
	Total       *decimal.Decimal `json:"valorTotal" validate:"omitempty,gt=0,lte=99999999.99" swaggertype:"number"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateInvoiceRequest) IsEmpty() bool {
	return r.CustomerID == "" && r.Date == "" && r.ProductName == "" &&
		isZero(r.Price) && r.Discount == nil && r.Tax == nil && isZero(r.Total)
}

func isZero(d *decimal.Decimal) bool {
	return d == nil || d.IsZero()
}

// InvoiceResponse factura completa en respuestas.
type InvoiceResponse struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"clienteId"`
	Customer    *CustomerResponse `json:"cliente,omitempty"`
	Date        string            `json:"fecha"`
	ProductName string            `json:"nombreProducto"`
	Price       decimal.Decimal   `json:"precio" swaggertype:"number"`
	Discount    decimal.Decimal   `json:"valorDescuento" swaggertype:"number"`
	Tax         decimal.Decimal   `json:"iva" swaggertype:"number"`
	Total       decimal.Decimal   `json:"valorTotal" swaggertype:"number"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// InvoiceListItem factura proyectada para la tabla paginada: el cliente se muestra por nombre.
type InvoiceListItem struct {
	ID           string          `json:"id"`
	ProductName  string          `json:"nombreProducto"`
	Price        decimal.Decimal `json:"precio" swaggertype:"number"`
	CustomerName string          `json:"nombreCliente"`
	Date         string          `json:"fecha"`
	Discount     decimal.Decimal `json:"valorDescuento" swaggertype:"number"`
	Tax          decimal.Decimal `json:"iva" swaggertype:"number"`
	Total        decimal.Decimal `json:"valorTotal" swaggertype:"number"`
}

// InvoicePage respuesta de GET /v1/facturas/paginacion.
type InvoicePage = PageResponse[InvoiceListItem]
