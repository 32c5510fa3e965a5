package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/entity"
)

type fakePDFGenerator struct {
	got *entity.Invoice
	err error
}

func (g *fakePDFGenerator) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice) ([]byte, error) {
	g.got = inv
	if g.err != nil {
		return nil, g.err
	}
	return []byte("%PDF-fake"), nil
}

func TestDownloadInvoicePDF(t *testing.T) {
	f := newFixture(t)
	c := f.createCustomer(t, "Juan")
	inv := f.createInvoice(t, c.ID, "2024-08-10")

	gen := &fakePDFGenerator{}
	uc := NewPDFUseCase(f.store.Invoices(), gen)

	out, filename, err := uc.DownloadInvoicePDF(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)
	assert.Equal(t, "factura-2024-08-10-"+inv.ID[:8]+".pdf", filename)
	require.NotNil(t, gen.got)
	assert.Equal(t, "Juan", gen.got.CustomerName(), "el generador recibe la factura con su cliente")
}

func TestDownloadInvoicePDF_Errores(t *testing.T) {
	f := newFixture(t)
	uc := NewPDFUseCase(f.store.Invoices(), &fakePDFGenerator{})

	_, _, err := uc.DownloadInvoicePDF(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)

	_, _, err = uc.DownloadInvoicePDF(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)

	c := f.createCustomer(t, "Juan")
	inv := f.createInvoice(t, c.ID, "2024-08-10")
	boom := errors.New("sin fuentes")
	uc = NewPDFUseCase(f.store.Invoices(), &fakePDFGenerator{err: boom})
	_, _, err = uc.DownloadInvoicePDF(context.Background(), inv.ID)
	assert.ErrorIs(t, err, boom)
}
