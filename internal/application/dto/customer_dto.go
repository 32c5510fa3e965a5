package dto

import "time"

// CreateCustomerRequest body para POST /v1/clientes.
type CreateCustomerRequest struct {
	Name     string     `json:"nombreCliente" validate:"required,max=100" example:"Juan Perez"`
	IDType   string     `json:"tipoIdentificacion" validate:"required,max=100" example:"CC"`
	IDNumber FlexString `json:"numeroIdentificacion" validate:"required,max=100" swaggertype:"string" example:"123456789"`
	Notes    string     `json:"observaciones" validate:"max=1000" example:"Cliente frecuente"`
}

// UpdateCustomerRequest body para PUT /v1/clientes/:id. Los campos vacíos conservan el valor actual.
type UpdateCustomerRequest struct {
	Name     string     `json:"nombreCliente" validate:"omitempty,max=100"`
	IDType   string     `json:"tipoIdentificacion" validate:"omitempty,max=100"`
	IDNumber FlexString `json:"numeroIdentificacion" validate:"omitempty,max=100" swaggertype:"string"`
	Notes    string     `json:"observaciones" validate:"omitempty,max=1000"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateCustomerRequest) IsEmpty() bool {
	return r.Name == "" && r.IDType == "" && r.IDNumber == "" && r.Notes == ""
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombreCliente"`
	IDType    string    `json:"tipoIdentificacion"`
	IDNumber  string    `json:"numeroIdentificacion"`
	Notes     string    `json:"observaciones"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerPage respuesta de GET /v1/clientes/paginacion.
type CustomerPage = PageResponse[CustomerResponse]
