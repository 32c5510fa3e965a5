package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/repository"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
)

// PDFUseCase genera la representación impresa (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, generator: generator}
}

// DownloadInvoicePDF carga la factura con su cliente y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrInvoiceNotFound  si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	key, ok := normalizeID(invoiceID)
	if !ok {
		return nil, "", domain.ErrInvoiceNotFound
	}
	inv, err := uc.invoiceRepo.GetByID(ctx, key)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrInvoiceNotFound
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	filename = fmt.Sprintf("factura-%s-%s.pdf", search.FormatDay(inv.Date), inv.ID[:8])
	return pdfBytes, filename, nil
}
