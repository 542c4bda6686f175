// Package finance contiene el agregador de métricas financieras: funciones puras
// que reciben filas ya consultadas (ventas, gastos, inversiones, productos) y
// derivan COGS, utilidad neta, punto de equilibrio, ROI y valor de inventario.
//
// Ninguna función de este paquete hace I/O, formatea moneda ni guarda estado.
package finance

import (
	"fmt"
	"time"
)

// DayLayout formato de las claves de los buckets diarios.
const DayLayout = "2006-01-02"

// MonthLayout formato de las claves de los buckets mensuales.
const MonthLayout = "2006-01"

// DateRange rango de días calendario [From, To] en una zona horaria.
// From es el inicio del primer día y To el último nanosegundo del último día.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange construye el rango que cubre los días calendario de from y to en loc.
func NewDateRange(from, to time.Time, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.Local
	}
	start := startOfDay(from.In(loc))
	end := startOfDay(to.In(loc)).AddDate(0, 0, 1).Add(-time.Nanosecond)
	if start.After(end) {
		return DateRange{}, fmt.Errorf("la fecha inicial %s es posterior a la final %s",
			start.Format(DayLayout), end.Format(DayLayout))
	}
	return DateRange{From: start, To: end}, nil
}

// MustDateRange igual que NewDateRange pero entra en pánico si el rango es inválido.
func MustDateRange(from, to time.Time, loc *time.Location) DateRange {
	r, err := NewDateRange(from, to, loc)
	if err != nil {
		panic(err)
	}
	return r
}

// Location zona horaria en la que se calculan los buckets.
func (r DateRange) Location() *time.Location { return r.From.Location() }

// Contains indica si t cae dentro del rango (extremos incluidos).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// Days número de días calendario transcurridos en el rango, ambos extremos incluidos.
func (r DateRange) Days() int {
	a := civil(r.From)
	b := civil(r.To)
	return int(b.Sub(a).Hours()/24) + 1
}

// DayKey clave del bucket diario de t en la zona horaria del rango.
func (r DateRange) DayKey(t time.Time) string {
	return t.In(r.Location()).Format(DayLayout)
}

// MonthKey clave del bucket mensual de t en la zona horaria del rango.
func (r DateRange) MonthKey(t time.Time) string {
	return t.In(r.Location()).Format(MonthLayout)
}

// EachDay claves de todos los días del rango, en orden.
func (r DateRange) EachDay() []string {
	days := make([]string, 0, r.Days())
	for d := r.From; !d.After(r.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayLayout))
	}
	return days
}

// Month bucket mensual recortado a los límites del rango.
type Month struct {
	Key   string
	Range DateRange
}

// Months particiona el rango en meses calendario. El primer y el último mes
// se recortan a From y To respectivamente.
func (r DateRange) Months() []Month {
	var months []Month
	loc := r.Location()
	cursor := time.Date(r.From.Year(), r.From.Month(), 1, 0, 0, 0, 0, loc)
	for !cursor.After(r.To) {
		next := cursor.AddDate(0, 1, 0)
		start := cursor
		if start.Before(r.From) {
			start = r.From
		}
		end := next.Add(-time.Nanosecond)
		if end.After(r.To) {
			end = r.To
		}
		months = append(months, Month{
			Key:   cursor.Format(MonthLayout),
			Range: DateRange{From: start, To: end},
		})
		cursor = next
	}
	return months
}

// EndDate fecha (sin hora) del último día del rango.
func (r DateRange) EndDate() time.Time { return startOfDay(r.To) }

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// civil descarta la zona horaria para contar días sin que el horario de verano afecte.
func civil(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
