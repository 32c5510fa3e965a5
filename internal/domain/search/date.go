package search

import (
	"errors"
	"strings"
	"time"
)

// DayLayout formato ISO de día calendario.
const DayLayout = "2006-01-02"

// dayLayouts formatos aceptados, en orden. "2/1/2006" acepta 09/08/2024 y 9/8/2024 (es-ES).
var dayLayouts = []string{
	"2/1/2006",
	DayLayout,
}

// timestampLayouts formatos con hora; se reducen al día en la zona de negocio.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

var errInvalidDate = errors.New("fecha inválida")

// ParseDay interpreta s como día calendario en loc y devuelve la medianoche de ese día.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errInvalidDate
	}
	for _, layout := range dayLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return StartOfDay(t), nil
		}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return StartOfDay(t.In(loc)), nil
		}
	}
	return time.Time{}, errInvalidDate
}

// StartOfDay devuelve t a las 00:00:00.000 en su propia zona.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay devuelve t a las 23:59:59.999 en su propia zona (cota superior inclusiva).
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// FormatDay formatea t como YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(DayLayout)
}
