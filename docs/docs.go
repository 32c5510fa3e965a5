// Package docs registra el documento OpenAPI de la API en swag.
// Se regenera con: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Estado del servicio",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.HealthResponse"
                        }
                    }
                }
            }
        },
        "/v1/clientes": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Listar clientes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.CustomerResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Crear cliente",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Cuerpo",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateCustomerRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.CustomerResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/clientes/seleccion": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Clientes para selector",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.OptionResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/clientes/tipos-identificacion": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Tipos de identificación",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.OptionResponse"
                            }
                        }
                    }
                }
            }
        },
        "/v1/clientes/paginacion": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Búsqueda paginada de clientes",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Página (default 1)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Tamaño de página (default 10)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ID del cliente (UUID)",
                        "name": "id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Fecha inicial DD/MM/AAAA",
                        "name": "startDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Fecha final DD/MM/AAAA",
                        "name": "endDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CustomerPage"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/clientes/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Obtener cliente",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CustomerResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Actualizar cliente",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Cuerpo",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateCustomerRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.CustomerResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "clientes"
                ],
                "summary": "Eliminar cliente",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/facturas": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "facturas"
                ],
                "summary": "Listar facturas",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.InvoiceResponse"
                            }
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "facturas"
                ],
                "summary": "Crear factura",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Cuerpo",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateInvoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/facturas/paginacion": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "facturas"
                ],
                "summary": "Búsqueda paginada de facturas",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Página (default 1)",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Tamaño de página (default 10)",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "ID del cliente (UUID)",
                        "name": "id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Fecha inicial DD/MM/AAAA",
                        "name": "startDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Fecha final DD/MM/AAAA",
                        "name": "endDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoicePage"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/facturas/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "facturas"
                ],
                "summary": "Obtener factura",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "facturas"
                ],
                "summary": "Actualizar factura",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Cuerpo",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateInvoiceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.InvoiceResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "facturas"
                ],
                "summary": "Eliminar factura",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/v1/facturas/{id}/pdf": {
            "get": {
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "facturas"
                ],
                "summary": "Descargar factura en PDF",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.OptionResponse": {
            "type": "object",
            "properties": {
                "value": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                }
            }
        },
        "dto.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "example": "ON"
                },
                "time": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                }
            }
        },
        "dto.CreateCustomerRequest": {
            "type": "object",
            "required": [
                "nombreCliente",
                "tipoIdentificacion",
                "numeroIdentificacion"
            ],
            "properties": {
                "nombreCliente": {
                    "type": "string",
                    "maxLength": 100,
                    "example": "Juan Perez"
                },
                "tipoIdentificacion": {
                    "type": "string",
                    "maxLength": 100,
                    "example": "CC"
                },
                "numeroIdentificacion": {
                    "type": "string",
                    "maxLength": 100,
                    "example": "123456789"
                },
                "observaciones": {
                    "type": "string",
                    "maxLength": 1000
                }
            }
        },
        "dto.UpdateCustomerRequest": {
            "type": "object",
            "properties": {
                "nombreCliente": {
                    "type": "string",
                    "maxLength": 100
                },
                "tipoIdentificacion": {
                    "type": "string",
                    "maxLength": 100
                },
                "numeroIdentificacion": {
                    "type": "string",
                    "maxLength": 100
                },
                "observaciones": {
                    "type": "string",
                    "maxLength": 1000
                }
            }
        },
        "dto.CustomerResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombreCliente": {
                    "type": "string"
                },
                "tipoIdentificacion": {
                    "type": "string"
                },
                "numeroIdentificacion": {
                    "type": "string"
                },
                "observaciones": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                }
            }
        },
        "dto.CustomerPage": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.CustomerResponse"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateInvoiceRequest": {
            "type": "object",
            "required": [
                "clienteId",
                "fecha",
                "nombreProducto",
                "precio",
                "valorTotal"
            ],
            "properties": {
                "clienteId": {
                    "type": "string",
                    "format": "uuid"
                },
                "fecha": {
                    "type": "string",
                    "example": "2024-08-10"
                },
                "nombreProducto": {
                    "type": "string",
                    "maxLength": 150,
                    "example": "Laptop"
                },
                "precio": {
                    "type": "number",
                    "example": 1200
                },
                "valorDescuento": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 50,
                    "example": 10
                },
                "iva": {
                    "type": "number",
                    "minimum": 0,
                    "example": 19
                },
                "valorTotal": {
                    "type": "number",
                    "example": 1308
                }
            }
        },
        "dto.UpdateInvoiceRequest": {
            "type": "object",
            "properties": {
                "clienteId": {
                    "type": "string",
                    "format": "uuid"
                },
                "fecha": {
                    "type": "string"
                },
                "nombreProducto": {
                    "type": "string",
                    "maxLength": 150
                },
                "precio": {
                    "type": "number"
                },
                "valorDescuento": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 50
                },
                "iva": {
                    "type": "number",
                    "minimum": 0
                },
                "valorTotal": {
                    "type": "number"
                }
            }
        },
        "dto.InvoiceResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "clienteId": {
                    "type": "string"
                },
                "cliente": {
                    "$ref": "#/definitions/dto.CustomerResponse"
                },
                "fecha": {
                    "type": "string"
                },
                "nombreProducto": {
                    "type": "string"
                },
                "precio": {
                    "type": "number"
                },
                "valorDescuento": {
                    "type": "number"
                },
                "iva": {
                    "type": "number"
                },
                "valorTotal": {
                    "type": "number"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "dto.InvoiceListItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "nombreProducto": {
                    "type": "string"
                },
                "precio": {
                    "type": "number"
                },
                "nombreCliente": {
                    "type": "string"
                },
                "fecha": {
                    "type": "string"
                },
                "valorDescuento": {
                    "type": "number"
                },
                "iva": {
                    "type": "number"
                },
                "valorTotal": {
                    "type": "number"
                }
            }
        },
        "dto.InvoicePage": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.InvoiceListItem"
                    }
                },
                "total": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo información del documento expuesto en /docs.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Facturación API",
	Description:      "API REST de clientes y facturas con búsqueda paginada.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
