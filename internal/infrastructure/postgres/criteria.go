package postgres

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/facturacion-api/internal/domain/search"
)

// filterColumns columnas sobre las que se aplican los predicados de una tabla.
type filterColumns struct {
	date      string
	dateIsDay bool // columna DATE: se compara por día calendario
	id        string
}

var (
	customerFilter = filterColumns{date: "c.created_at", id: "c.id"}
	invoiceFilter  = filterColumns{date: "f.fecha", dateIsDay: true, id: "f.cliente_id"}
)

// whereClause traduce los predicados a una cláusula WHERE con placeholders numerados
// a partir de $1. Devuelve "" si no hay predicados.
func whereClause(preds []search.Predicate, cols filterColumns) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	dateArg := func(t time.Time) string {
		if cols.dateIsDay {
			return arg(t) + "::date"
		}
		return arg(t)
	}
	for _, pred := range preds {
		switch p := pred.(type) {
		case search.DateRange:
			conds = append(conds, fmt.Sprintf("%s BETWEEN %s AND %s", cols.date, dateArg(p.From), dateArg(p.To)))
		case search.DateFrom:
			conds = append(conds, fmt.Sprintf("%s >= %s", cols.date, dateArg(p.From)))
		case search.DateTo:
			conds = append(conds, fmt.Sprintf("%s <= %s", cols.date, dateArg(p.To)))
		case search.ExactID:
			conds = append(conds, fmt.Sprintf("%s = %s", cols.id, arg(p.ID)))
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// pageClause añade LIMIT/OFFSET con los siguientes placeholders.
func pageClause(w search.Window, args []any) (string, []any) {
	args = append(args, w.Limit, w.Offset())
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}
