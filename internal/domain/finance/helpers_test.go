package finance_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
)

// dec atajo para literales decimales en los tests.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func rangeUTC(from, to time.Time) finance.DateRange {
	return finance.MustDateRange(from, to, time.UTC)
}

func january2024() finance.DateRange {
	return rangeUTC(day(2024, 1, 1), day(2024, 1, 31))
}

func product(id, name, price, cost string, cat *entity.Category) *entity.Product {
	p := &entity.Product{ID: id, Name: name, Price: dec(price), Category: cat}
	if cost != "" {
		p.PurchasePrice = decimal.NewNullDecimal(dec(cost))
	}
	if cat != nil {
		p.CategoryID = cat.ID
	}
	return p
}

func item(saleID string, p *entity.Product, qty int, price, discount string, at time.Time) entity.SaleItem {
	it := entity.SaleItem{
		ID:              saleID + "-" + price,
		SaleID:          saleID,
		Quantity:        qty,
		UnitPrice:       dec(price),
		DiscountPercent: dec(discount),
		SoldAt:          at,
		Product:         p,
	}
	if p != nil {
		it.ProductID = p.ID
	}
	return it
}

func expense(id, amount string, cat *entity.Category, at time.Time) entity.Expense {
	return entity.Expense{ID: id, Amount: dec(amount), Description: "gasto " + id, Category: cat, PaymentDate: at}
}

func investment(id, amount, desc string, at time.Time) entity.InitialInvestment {
	return entity.InitialInvestment{ID: id, Amount: dec(amount), Description: desc, InvestmentDate: at}
}

// assertDec compara por valor, ignorando la escala interna del decimal.
func assertDec(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual),
		append([]interface{}{"esperado %s, obtenido %s", expected, actual.String()}, msgAndArgs...)...)
}
