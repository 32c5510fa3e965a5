package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc  *billing.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// ListForSelection godoc
// @Summary      Clientes para selector
// @Description  Pares {value: id, label: nombreCliente} ordenados por nombre.
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   dto.OptionResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/clientes/seleccion [get]
func (h *CustomerHandler) ListForSelection(c *fiber.Ctx) error {
	list, err := h.uc.ListForSelection(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// IDTypes godoc
// @Summary      Tipos de identificación
// @Tags         clientes
// @Produce      json
// @Success      200  {array}  dto.OptionResponse
// @Router       /v1/clientes/tipos-identificacion [get]
func (h *CustomerHandler) IDTypes(c *fiber.Ctx) error {
	return c.JSON(h.uc.IDTypes())
}

// Search godoc
// @Summary      Búsqueda paginada de clientes
// @Description  Filtra por id del cliente y por fecha de creación (DD/MM/AAAA, ambos extremos inclusivos).
// @Tags         clientes
// @Produce      json
// @Param        page       query  int     false  "Página (default 1)"
// @Param        limit      query  int     false  "Tamaño de página (default 10)"
// @Param        id         query  string  false  "ID del cliente (UUID)"
// @Param        startDate  query  string  false  "Fecha inicial DD/MM/AAAA"
// @Param        endDate    query  string  false  "Fecha final DD/MM/AAAA"
// @Success      200  {object}  dto.CustomerPage
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/clientes/paginacion [get]
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
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
// @Summary      Crear cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /v1/clientes [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/clientes/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(customer)
}

// Update godoc
// @Summary      Actualizar cliente
// @Description  Actualización parcial: los campos vacíos o ausentes conservan su valor.
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "ID del cliente"
// @Param        body  body      dto.UpdateCustomerRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CustomerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /v1/clientes/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(customer)
}

// Delete godoc
// @Summary      Eliminar cliente
// @Description  Falla con 409 si el cliente tiene facturas asociadas.
// @Tags         clientes
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /v1/clientes/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Cliente eliminado"})
}

// parseBody interpreta el cuerpo JSON; un cuerpo vacío deja in con sus valores cero para que
// el caso de uso responda con el mensaje de validación que corresponda.
func parseBody(c *fiber.Ctx, in any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(in)
}
