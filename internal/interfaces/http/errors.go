package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

// Códigos de error del cuerpo {code, message}.
const (
	codeValidation  = "VALIDATION"
	codeInvalidBody = "INVALID_BODY"
	codeNotFound    = "NOT_FOUND"
	codeConflict    = "CONFLICT"
	codeInternal    = "INTERNAL"
)

const msgInternal = "Error interno del servidor"

// respondError traduce un error de caso de uso a la respuesta HTTP. Los errores no
// reconocidos se registran y se responden como 500 sin exponer el detalle.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeValidation, Message: verr.Message})
	case errors.Is(err, domain.ErrCustomerNotFound), errors.Is(err, domain.ErrInvoiceNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: codeNotFound, Message: err.Error()})
	case errors.Is(err, domain.ErrCustomerHasInvoices), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: codeConflict, Message: err.Error()})
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: codeInternal, Message: msgInternal})
}

// badBody respuesta para cuerpos JSON que no se pudieron interpretar.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    codeInvalidBody,
		Message: "El cuerpo de la petición no es un JSON válido",
	})
}

// ErrorHandler manejador de errores de Fiber: rutas inexistentes, métodos no permitidos y
// pánicos recuperados usan el mismo cuerpo {code, message}.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			if fe.Code == fiber.StatusNotFound {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeNotFound, Message: "Ruta no encontrada"})
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: codeForStatus(fe.Code), Message: fe.Message})
		}
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", requestID(c)).
			Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: codeInternal, Message: msgInternal})
	}
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return codeInvalidBody
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	default:
		return "HTTP_ERROR"
	}
}
