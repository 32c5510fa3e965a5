package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura de un único producto emitida a un cliente.
// Total lo calcula quien llama (precio - precio*descuento% + precio*iva%) y se guarda tal cual.
type Invoice struct {
	ID          string
	CustomerID  string
	Customer    *Customer // relación cargada (puede ser nil)
	Date        time.Time // día calendario, sin hora
	ProductName string
	Price       decimal.Decimal
	Discount    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
	CreatedAt   time.Time
}

// CustomerName devuelve el nombre del cliente relacionado o "" si la relación no está cargada.
func (i *Invoice) CustomerName() string {
	if i.Customer == nil {
		return ""
	}
	return i.Customer.Name
}
