package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString texto que también acepta un número JSON (p. ej. numeroIdentificacion: 123456789).
// El número se guarda con los mismos dígitos que se enviaron.
type FlexString string

// UnmarshalJSON acepta "texto", 123 o null.
func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		return nil
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("se esperaba texto o número: %w", err)
	}
	*s = FlexString(n.String())
	return nil
}

// PageResponse cuerpo de GET .../paginacion: la página pedida y el total de coincidencias.
type PageResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// OptionResponse par valor/etiqueta para poblar selectores del front.
type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MessageResponse respuesta simple con mensaje (p. ej. tras eliminar).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
	Date   string `json:"date"`
}
