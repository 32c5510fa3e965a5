package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrCustomerNotFound    = errors.New("Cliente no encontrado")
	ErrInvoiceNotFound     = errors.New("Factura no encontrada")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrCustomerHasInvoices = errors.New("El cliente tiene facturas asociadas")
)

// ValidationError describe una entrada rechazada antes de tocar el almacenamiento.
// Message es el texto que se devuelve al cliente HTTP.
type ValidationError struct {
	Message string
}

// NewValidationError construye el error con el mensaje para el usuario.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
