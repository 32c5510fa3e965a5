package search

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/facturacion-api/internal/domain"
)

// Valores por defecto de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params parámetros crudos de GET .../paginacion, tal como llegan en la query string.
type Params struct {
	Page      string `query:"page"`
	Limit     string `query:"limit"`
	ID        string `query:"id"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// Predicate es uno de DateRange, DateFrom, DateTo o ExactID.
type Predicate interface {
	predicate()
}

// DateRange fecha dentro de [From, To], ambos inclusivos.
type DateRange struct {
	From time.Time
	To   time.Time
}

// DateFrom fecha >= From.
type DateFrom struct {
	From time.Time
}

// DateTo fecha <= To.
type DateTo struct {
	To time.Time
}

// ExactID coincidencia exacta de id. En clientes es el id propio; en facturas, el del cliente.
type ExactID struct {
	ID string
}

func (DateRange) predicate() {}
func (DateFrom) predicate()  {}
func (DateTo) predicate()    {}
func (ExactID) predicate()   {}

// Window ventana de paginación (página 1-based).
type Window struct {
	Page  int
	Limit int
}

// Offset devuelve (Page-1)*Limit, saturado en math.MaxInt.
func (w Window) Offset() int {
	if w.Page <= 1 || w.Limit <= 0 {
		return 0
	}
	if w.Page-1 > math.MaxInt/w.Limit {
		return math.MaxInt
	}
	return (w.Page - 1) * w.Limit
}

// Criteria predicados a aplicar más la ventana de paginación.
type Criteria struct {
	Predicates []Predicate
	Window     Window
}

// Match evalúa los predicados en memoria contra la fecha y el id de un registro.
func (c Criteria) Match(date time.Time, id string) bool {
	for _, pred := range c.Predicates {
		switch p := pred.(type) {
		case DateRange:
			if date.Before(p.From) || date.After(p.To) {
				return false
			}
		case DateFrom:
			if date.Before(p.From) {
				return false
			}
		case DateTo:
			if date.After(p.To) {
				return false
			}
		case ExactID:
			if !strings.EqualFold(id, p.ID) {
				return false
			}
		}
	}
	return true
}

// Page resultado de una búsqueda paginada: los elementos de la ventana y el total de coincidencias.
type Page[T any] struct {
	Items []T
	Total int
}

// Slice aplica la ventana a una lista ya filtrada y ordenada.
func Slice[T any](items []T, w Window) []T {
	off := w.Offset()
	if off >= len(items) {
		return []T{}
	}
	end := len(items)
	if w.Limit < end-off {
		end = off + w.Limit
	}
	return items[off:end]
}

// Builder convierte Params en Criteria interpretando las fechas en una zona horaria de negocio.
type Builder struct {
	loc *time.Location
}

// NewBuilder construye el builder. loc nil equivale a UTC.
func NewBuilder(loc *time.Location) *Builder {
	if loc == nil {
		loc = time.UTC
	}
	return &Builder{loc: loc}
}

// Location zona horaria con la que se interpretan las fechas.
func (b *Builder) Location() *time.Location { return b.loc }

// Build valida los parámetros y compone los predicados. page y limit inválidos no son error:
// vuelven a sus valores por defecto. Fechas o id mal formados sí lo son.
func (b *Builder) Build(p Params) (Criteria, error) {
	c := Criteria{
		Window: Window{
			Page:  parsePositive(p.Page, DefaultPage),
			Limit: parsePositive(p.Limit, DefaultLimit),
		},
	}

	var start, end time.Time
	hasStart := strings.TrimSpace(p.StartDate) != ""
	hasEnd := strings.TrimSpace(p.EndDate) != ""
	if hasStart {
		t, err := ParseDay(p.StartDate, b.loc)
		if err != nil {
			return Criteria{}, domain.NewValidationError("La fecha inicial no es válida, use DD/MM/AAAA")
		}
		start = t
	}
	if hasEnd {
		t, err := ParseDay(p.EndDate, b.loc)
		if err != nil {
			return Criteria{}, domain.NewValidationError("La fecha final no es válida, use DD/MM/AAAA")
		}
		end = EndOfDay(t)
	}

	switch {
	case hasStart && hasEnd:
		if start.After(end) {
			return Criteria{}, domain.NewValidationError("La fecha inicial no puede ser posterior a la fecha final")
		}
		c.Predicates = append(c.Predicates, DateRange{From: start, To: end})
	case hasStart:
		c.Predicates = append(c.Predicates, DateFrom{From: start})
	case hasEnd:
		c.Predicates = append(c.Predicates, DateTo{To: end})
	}

	if id := strings.TrimSpace(p.ID); id != "" {
		u, err := uuid.Parse(id)
		if err != nil {
			return Criteria{}, domain.NewValidationError("El ID de búsqueda no es válido")
		}
		c.Predicates = append(c.Predicates, ExactID{ID: u.String()})
	}
	return c, nil
}

// parsePositive interpreta s como entero >= 1; cualquier otro caso devuelve def.
func parsePositive(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}
