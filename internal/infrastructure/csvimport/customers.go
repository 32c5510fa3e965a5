// Package csvimport lee archivos CSV de clientes exportados desde hojas de cálculo.
//
// Formato esperado (separador ';' o ','), con encabezado opcional:
//
//	nombreCliente;tipoIdentificacion;numeroIdentificacion;observaciones
//
// Excel en configuración regional española guarda los CSV en Windows-1252; con Latin1 = true
// el contenido se convierte a UTF-8 antes de interpretarlo. "CSV UTF-8" de Excel antepone un
// BOM, que se descarta haya o no encabezado.
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/facturacion-api/internal/application/dto"
)

// Options opciones de lectura.
type Options struct {
	Comma  rune // 0 equivale a ';'
	Latin1 bool // decodificar Windows-1252
}

// Row fila leída, con su número de línea para reportar errores.
type Row struct {
	Line     int
	Customer dto.CreateCustomerRequest
}

var header = []string{"nombrecliente", "tipoidentificacion", "numeroidentificacion", "observaciones"}

// ReadCustomers lee todas las filas. Las filas vacías se omiten; una fila con menos de tres
// columnas es un error de formato.
func ReadCustomers(r io.Reader, opts Options) ([]Row, error) {
	// Un BOM al inicio manda sobre la opción: se descarta y el resto se lee en esa codificación.
	var fallback transform.Transformer = transform.Nop
	if opts.Latin1 {
		fallback = charmap.Windows1252.NewDecoder()
	}
	r = transform.NewReader(r, unicode.BOMOverride(fallback))
	cr := csv.NewReader(r)
	cr.Comma = ';'
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(rec) {
			continue
		}
		if len(rows) == 0 && isHeader(rec) {
			continue
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("línea %d: se esperaban al menos 3 columnas, hay %d", line, len(rec))
		}
		c := dto.CreateCustomerRequest{
			Name:     strings.TrimSpace(rec[0]),
			IDType:   strings.TrimSpace(rec[1]),
			IDNumber: dto.FlexString(strings.TrimSpace(rec[2])),
		}
		if len(rec) > 3 {
			c.Notes = strings.TrimSpace(rec[3])
		}
		rows = append(rows, Row{Line: line, Customer: c})
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func isHeader(rec []string) bool {
	if len(rec) < 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if strings.ToLower(strings.TrimSpace(rec[i])) != header[i] {
			return false
		}
	}
	return true
}
