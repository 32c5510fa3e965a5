package entity

import "time"

// Customer representa un cliente al que se le emiten facturas.
type Customer struct {
	ID        string
	Name      string
	IDType    string // CC, CE, NIT, TI, PP
	IDNumber  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IDType opción del catálogo de tipos de identificación (Colombia).
type IDType struct {
	Code  string
	Label string
}

// IDTypes catálogo ofrecido al formulario de clientes. El backend no restringe el campo a
// estos valores; solo acota su longitud.
var IDTypes = []IDType{
	{Code: "CC", Label: "Cédula de ciudadanía"},
	{Code: "CE", Label: "Cédula de extranjería"},
	{Code: "NIT", Label: "NIT"},
	{Code: "TI", Label: "Tarjeta de identidad"},
	{Code: "PP", Label: "Pasaporte"},
}
