package billing

import (
	"context"

	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto para generar la representación impresa de una factura.
// La implementación vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}
