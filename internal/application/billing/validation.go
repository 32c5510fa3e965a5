package billing

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturacion-api/internal/domain"
)

const (
	msgMissingFields     = "Faltan campos obligatorios"
	msgInvalidCustomerID = "El ID del cliente no es válido"
)

// fieldMessages mensajes por campo JSON y regla incumplida.
var fieldMessages = map[string]string{
	"nombreCliente.max":        "El nombre del cliente es muy largo",
	"tipoIdentificacion.max":   "El tipo de identificación es muy largo",
	"numeroIdentificacion.max": "El número de identificación es muy largo",
	"observaciones.max":        "Las observaciones son muy largas",
	"nombreProducto.max":       "El nombre del producto es muy largo",
	"precio.gt":                "El precio debe ser mayor a cero",
	"precio.lte":               "El precio excede el máximo permitido",
	"valorDescuento.gte":       "El descuento debe estar entre 0 y 50",
	"valorDescuento.lte":       "El descuento debe estar entre 0 y 50",
	"iva.gte":                  "El IVA no puede ser negativo",
	"iva.lte":                  "El IVA excede el máximo permitido",
	"valorTotal.gt":            "El valor total debe ser mayor a cero",
	"valorTotal.lte":           "El valor total excede el máximo permitido",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// decimal.Decimal se valida como número para que min/max/gt/required funcionen.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	// Los errores se reportan con el nombre JSON del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct ejecuta las reglas de los tags y traduce el primer fallo a un ValidationError.
// Cualquier campo obligatorio ausente tiene prioridad sobre los errores de longitud o rango.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return domain.NewValidationError(msgMissingFields)
		}
	}
	fe := verrs[0]
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return domain.NewValidationError(msg)
	}
	return domain.NewValidationError("El campo " + fe.Field() + " no es válido")
}
