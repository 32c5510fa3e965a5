package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

// InvoiceHandler maneja las peticiones HTTP de facturas.
type InvoiceHandler struct {
	uc    *billing.InvoiceUseCase
	pdfUC *billing.PDFUseCase
	log   *logger.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdfUC *billing.PDFUseCase, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC, log: log}
}

// List godoc
// @Summary      Listar facturas
// @Description  Incluye el cliente relacionado.
// @Tags         facturas
// @Produce      json
// @Success      200  {array}   dto.InvoiceResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/facturas [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// Search godoc
// @Summary      Búsqueda paginada de facturas
// @Description  id filtra por el cliente vinculado; las fechas filtran por la fecha de la factura.
// @Tags         facturas
// @Produce      json
// @Param        page       query  int     false  "Página (default 1)"
// @Param        limit      query  int     false  "Tamaño de página (default 10)"
// @Param        id         query  string  false  "ID del cliente (UUID)"
// @Param        startDate  query  string  false  "Fecha inicial DD/MM/AAAA"
// @Param        endDate    query  string  false  "Fecha final DD/MM/AAAA"
// @Success      200  {object}  dto.InvoicePage
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/facturas/paginacion [get]
func (h *InvoiceHandler) Search(c *fiber.Ctx) error {
	var params search.Params
	if err := c.QueryParser(&params); err != nil {
		return badBody(c)
	}
	page, err := h.uc.Search(c.UserContext(), params)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(page)
}

// Create godoc
// @Summary      Crear factura
// @Description  valorTotal se guarda tal como llega; el servidor no lo recalcula.
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateInvoiceRequest  true  "Datos de la factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /v1/facturas [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	invoice, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         facturas
// @Produce      json
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/facturas/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	invoice, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(invoice)
}

// DownloadPDF godoc
// @Summary      Descargar factura en PDF
// @Tags         facturas
// @Produce      application/pdf
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/facturas/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.pdfUC.DownloadInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// Update godoc
// @Summary      Actualizar factura
// @Description  Actualización parcial; un clienteId nuevo debe existir.
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Param        id    path      string                    true  "ID de la factura"
// @Param        body  body      dto.UpdateInvoiceRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /v1/facturas/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	invoice, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(invoice)
}

// Delete godoc
// @Summary      Eliminar factura
// @Tags         facturas
// @Produce      json
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/facturas/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Factura eliminada"})
}
