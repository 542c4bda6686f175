package reports_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/retail-analytics-api/internal/application/reports"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

// stubSource implementación en memoria de repository.ReportDataSource que filtra
// por período igual que la consulta SQL.
type stubSource struct {
	mu          sync.Mutex
	items       []entity.SaleItem
	expenses    []entity.Expense
	investments []entity.InitialInvestment
	products    []entity.Product
	settings    *entity.Settings
	err         error
	calls       map[string]int
}

var _ repository.ReportDataSource = (*stubSource)(nil)

func (s *stubSource) track(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = map[string]int{}
	}
	s.calls[name]++
}

func (s *stubSource) called(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

func inPeriod(t time.Time, p repository.Period) bool {
	if !p.From.IsZero() && t.Before(p.From) {
		return false
	}
	if !p.To.IsZero() && t.After(p.To) {
		return false
	}
	return true
}

func (s *stubSource) ListSaleItems(ctx context.Context, p repository.Period) ([]entity.SaleItem, error) {
	s.track("items")
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.SaleItem
	for _, it := range s.items {
		if inPeriod(it.SoldAt, p) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *stubSource) ListExpenses(ctx context.Context, p repository.Period) ([]entity.Expense, error) {
	s.track("expenses")
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.Expense
	for _, e := range s.expenses {
		if inPeriod(e.PaymentDate, p) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubSource) ListInvestments(ctx context.Context, p repository.Period) ([]entity.InitialInvestment, error) {
	s.track("investments")
	if s.err != nil {
		return nil, s.err
	}
	var out []entity.InitialInvestment
	for _, inv := range s.investments {
		if inPeriod(inv.InvestmentDate, p) {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (s *stubSource) ListProducts(ctx context.Context) ([]entity.Product, error) {
	s.track("products")
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubSource) GetSettings(ctx context.Context) (*entity.Settings, error) {
	s.track("settings")
	return s.settings, nil
}

// ── fixtures ──────────────────────────────────────────────────────────────────

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func at(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 14, 0, 0, 0, time.UTC) }

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func newUseCase(src *stubSource, now time.Time, renderers ...reports.TableRenderer) *reports.UseCase {
	return reports.NewUseCase(src, reports.Options{
		Location:        time.UTC,
		DefaultCurrency: "COP",
		Now:             fixedClock(now),
	}, renderers...)
}

// coffeeShop venta del 2024-01-10 (costo 5, precio 10, cantidad 2) y gasto de 5 el 11.
func coffeeShop() *stubSource {
	drinks := &entity.Category{ID: "c1", Name: "Bebidas"}
	coffee := entity.Product{
		ID: "p1", Name: "Café", Price: dec("10"),
		PurchasePrice: decimal.NewNullDecimal(dec("5")),
		Stock:         3, MinStock: 5, CategoryID: "c1", Category: drinks, HasSales: true,
	}
	candle := entity.Product{ID: "p2", Name: "Vela", Price: dec("4"), Stock: 10}
	return &stubSource{
		items: []entity.SaleItem{{
			ID: "i1", SaleID: "s1", ProductID: "p1", Quantity: 2,
			UnitPrice: dec("10"), DiscountPercent: decimal.Zero,
			SoldAt: at(2024, 1, 10), Product: &coffee,
		}},
		expenses: []entity.Expense{{
			ID: "e1", Amount: dec("5"), Description: "Servicios", PaymentDate: at(2024, 1, 11),
		}},
		investments: []entity.InitialInvestment{
			{ID: "inv1", Amount: dec("100"), Description: "Local", InvestmentDate: at(2023, 12, 15)},
			{ID: "inv2", Amount: dec("900"), Description: "Local", InvestmentDate: at(2024, 6, 1)},
		},
		products: []entity.Product{coffee, candle},
		settings: &entity.Settings{Currency: "usd"},
	}
}

func assertDec(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual),
		append([]interface{}{"esperado %s, obtenido %s", expected, actual.String()}, msgAndArgs...)...)
}
