// Package reports contiene los casos de uso de los reportes financieros:
// consultan la fuente de datos en paralelo, delegan el cálculo en el agregador
// puro (domain/finance) y arman los DTOs de respuesta o los archivos de exportación.
package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"

	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
	"github.com/jhoicas/retail-analytics-api/pkg/export"
)

// Options parámetros de ejecución de los reportes.
type Options struct {
	Location        *time.Location   // calendario de los buckets diarios y mensuales
	DefaultCurrency string           // si la fila de settings no define moneda
	Now             func() time.Time // reloj; time.Now si es nil
	MaxRangeDays    int              // días máximos de un rango pedido; DefaultMaxRangeDays si es 0
}

// DefaultMaxRangeDays tope de días de un rango pedido (unos diez años).
const DefaultMaxRangeDays = 3660

// UseCase genera los reportes financieros. No guarda estado entre solicitudes.
type UseCase struct {
	source    repository.ReportDataSource
	opts      Options
	renderers map[string]TableRenderer
}

// NewUseCase construye el caso de uso. El renderer CSV siempre está registrado.
func NewUseCase(source repository.ReportDataSource, opts Options, renderers ...TableRenderer) *UseCase {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = "COP"
	}
	if opts.MaxRangeDays <= 0 {
		opts.MaxRangeDays = DefaultMaxRangeDays
	}
	uc := &UseCase{
		source:    source,
		opts:      opts,
		renderers: map[string]TableRenderer{"csv": export.CSVRenderer{}},
	}
	for _, r := range renderers {
		uc.renderers[r.Format()] = r
	}
	return uc
}

func (uc *UseCase) now() time.Time { return uc.opts.Now().In(uc.opts.Location) }

// parseRange interpreta start/end (YYYY-MM-DD) en la zona configurada.
// Por defecto: primer día del mes actual → hoy.
func (uc *UseCase) parseRange(startStr, endStr string) (finance.DateRange, error) {
	loc := uc.opts.Location
	now := uc.now()

	end := now
	if endStr != "" {
		t, err := time.ParseInLocation(finance.DayLayout, endStr, loc)
		if err != nil {
			return finance.DateRange{}, fmt.Errorf("%w: end_date inválido: %v", domain.ErrInvalidInput, err)
		}
		end = t
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	if startStr != "" {
		t, err := time.ParseInLocation(finance.DayLayout, startStr, loc)
		if err != nil {
			return finance.DateRange{}, fmt.Errorf("%w: start_date inválido: %v", domain.ErrInvalidInput, err)
		}
		start = t
	} else if endStr != "" && end.Before(start) {
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, loc)
	}

	r, err := finance.NewDateRange(start, end, loc)
	if err != nil {
		return finance.DateRange{}, fmt.Errorf("%w: %w", domain.ErrInvalidRange, err)
	}
	if days := r.Days(); days > uc.opts.MaxRangeDays {
		return finance.DateRange{}, fmt.Errorf("%w: el rango abarca %d días, el máximo es %d",
			domain.ErrInvalidRange, days, uc.opts.MaxRangeDays)
	}
	return r, nil
}

// ── Carga en paralelo ─────────────────────────────────────────────────────────

type need uint8

const (
	needItems need = 1 << iota
	needExpenses
	needInvestments
	needProducts
)

// query qué cargar y con qué filtros. Las inversiones usan su propio período:
// el ROI y el equilibrio consideran todo el capital invertido hasta el fin del rango.
type query struct {
	needs       need
	period      repository.Period
	investments repository.Period
}

// dataset filas ya normalizadas para el agregador.
type dataset struct {
	currency    string
	items       []entity.SaleItem
	expenses    []entity.Expense
	investments []entity.InitialInvestment
	products    []entity.Product
}

type result[T any] struct {
	val T
	err error
}

// async ejecuta fn en una goroutine; el canal tiene buffer para que la goroutine
// nunca quede bloqueada si el llamador retorna antes de leer.
func async[T any](ctx context.Context, fn func(context.Context) (T, error)) <-chan result[T] {
	ch := make(chan result[T], 1)
	go func() {
		v, err := fn(ctx)
		ch <- result[T]{val: v, err: err}
	}()
	return ch
}

// load lanza todas las consultas pedidas a la vez y espera a que terminen.
func (uc *UseCase) load(ctx context.Context, q query) (*dataset, error) {
	currencyCh := async(ctx, uc.currency)

	var (
		itemsCh       <-chan result[[]entity.SaleItem]
		expensesCh    <-chan result[[]entity.Expense]
		investmentsCh <-chan result[[]entity.InitialInvestment]
		productsCh    <-chan result[[]entity.Product]
	)
	if q.needs&needItems != 0 {
		itemsCh = async(ctx, func(ctx context.Context) ([]entity.SaleItem, error) {
			return uc.source.ListSaleItems(ctx, q.period)
		})
	}
	if q.needs&needExpenses != 0 {
		expensesCh = async(ctx, func(ctx context.Context) ([]entity.Expense, error) {
			return uc.source.ListExpenses(ctx, q.period)
		})
	}
	if q.needs&needInvestments != 0 {
		investmentsCh = async(ctx, func(ctx context.Context) ([]entity.InitialInvestment, error) {
			return uc.source.ListInvestments(ctx, q.investments)
		})
	}
	if q.needs&needProducts != 0 {
		productsCh = async(ctx, uc.source.ListProducts)
	}

	ds := &dataset{}
	cur := <-currencyCh
	if cur.err != nil {
		return nil, uc.fetchError(ctx, "configuración", cur.err)
	}
	ds.currency = cur.val
	if itemsCh != nil {
		r := <-itemsCh
		if r.err != nil {
			return nil, uc.fetchError(ctx, "ventas", r.err)
		}
		ds.items = r.val
	}
	if expensesCh != nil {
		r := <-expensesCh
		if r.err != nil {
			return nil, uc.fetchError(ctx, "gastos", r.err)
		}
		ds.expenses = r.val
	}
	if investmentsCh != nil {
		r := <-investmentsCh
		if r.err != nil {
			return nil, uc.fetchError(ctx, "inversiones", r.err)
		}
		ds.investments = r.val
	}
	if productsCh != nil {
		r := <-productsCh
		if r.err != nil {
			return nil, uc.fetchError(ctx, "productos", r.err)
		}
		ds.products = r.val
	}
	return ds, nil
}

// fetchError distingue una solicitud reemplazada de una falla real de la fuente.
func (uc *UseCase) fetchError(ctx context.Context, what string, err error) error {
	if ctx.Err() != nil {
		return interrupted(ctx)
	}
	return fmt.Errorf("%s: %w: %w", what, domain.ErrUnavailable, err)
}

// interrupted devuelve la causa de cancelación (domain.ErrSuperseded si otra
// solicitud tomó su lugar).
func interrupted(ctx context.Context) error {
	if cause := context.Cause(ctx); cause != nil {
		return cause
	}
	return ctx.Err()
}

// currency moneda del negocio: fila de settings o la moneda por defecto.
// Un código que no es ISO 4217 se ignora.
func (uc *UseCase) currency(ctx context.Context) (string, error) {
	s, err := uc.source.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	if s == nil {
		return uc.opts.DefaultCurrency, nil
	}
	unit, err := currency.ParseISO(strings.TrimSpace(s.Currency))
	if err != nil {
		return uc.opts.DefaultCurrency, nil
	}
	return unit.String(), nil
}

func periodOf(r finance.DateRange) repository.Period {
	return repository.Period{From: r.From, To: r.To}
}

// upTo período abierto hacia atrás que termina con el rango.
func upTo(r finance.DateRange) repository.Period {
	return repository.Period{To: r.To}
}
