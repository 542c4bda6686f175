package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
)

// Escenario 1: una venta el 2024-01-10, costo 5, precio 10, cantidad 2, sin descuento.
func TestComputeCOGS_VentaUnica(t *testing.T) {
	p := product("p1", "Café 500g", "10", "5", &entity.Category{ID: "c1", Name: "Bebidas"})
	items := []entity.SaleItem{item("s1", p, 2, "10", "0", day(2024, 1, 10))}

	rep := finance.ComputeCOGS(items, january2024())

	assertDec(t, "10", rep.TotalCOGS)
	assertDec(t, "20", rep.TotalRevenue)
	assertDec(t, "10", rep.GrossProfit)
	assertDec(t, "50", rep.GrossMargin)
	assert.Equal(t, 2, rep.ItemsSold)
	assert.Equal(t, 1, rep.SalesCount)

	require.Contains(t, rep.ByProduct, "p1")
	assert.Equal(t, "Café 500g", rep.ByProduct["p1"].Name)
	assertDec(t, "50", rep.ByProduct["p1"].Margin)
	assertDec(t, "10", rep.ByCategory["Bebidas"])

	require.Len(t, rep.Daily, 31)
	assert.Equal(t, "2024-01-10", rep.Daily[9].Date)
	assertDec(t, "20", rep.Daily[9].Revenue)
	assertDec(t, "0", rep.Daily[0].Revenue)
}

func TestComputeCOGS_DescuentoYCostoNulo(t *testing.T) {
	withCost := product("p1", "Arroz", "10", "4", nil)
	noCost := product("p2", "Pan", "3", "", nil)
	items := []entity.SaleItem{
		item("s1", withCost, 3, "10", "15", day(2024, 1, 5)),
		item("s1", noCost, 2, "3", "0", day(2024, 1, 5)),
	}

	rep := finance.ComputeCOGS(items, january2024())

	// 10 × 3 × 0.85 = 25.5 más 6 del pan
	assertDec(t, "31.5", rep.TotalRevenue)
	assertDec(t, "12", rep.TotalCOGS)
	assertDec(t, "6", rep.ByProduct["p2"].Profit)
	assert.Equal(t, 1, rep.SalesCount, "dos líneas de la misma venta cuentan una venta")
}

func TestComputeCOGS_RelacionesFaltantesNoSeDescartan(t *testing.T) {
	orphan := entity.SaleItem{
		ID: "i1", SaleID: "s1", ProductID: "borrado", Quantity: 1,
		UnitPrice: dec("7"), DiscountPercent: decimal.Zero, SoldAt: day(2024, 1, 3),
	}
	noCategory := product("p1", "Sal", "2", "1", nil)
	items := []entity.SaleItem{orphan, item("s2", noCategory, 1, "2", "0", day(2024, 1, 3))}

	rep := finance.ComputeCOGS(items, january2024())

	assertDec(t, "9", rep.TotalRevenue)
	require.Contains(t, rep.ByProduct, "borrado")
	assert.Equal(t, finance.UnknownProduct, rep.ByProduct["borrado"].Name)
	assert.Equal(t, finance.Uncategorized, rep.ByProduct["borrado"].Category)
	assertDec(t, "1", rep.ByCategory[finance.Uncategorized])
}

func TestComputeCOGS_IgnoraFueraDeRango(t *testing.T) {
	p := product("p1", "Té", "5", "2", nil)
	items := []entity.SaleItem{
		item("s1", p, 1, "5", "0", day(2023, 12, 31)),
		item("s2", p, 1, "5", "0", day(2024, 2, 1)),
	}
	rep := finance.ComputeCOGS(items, january2024())
	assert.True(t, rep.TotalRevenue.IsZero())
	assert.Empty(t, rep.ByProduct)
}

// La utilidad es ingreso menos costo en toda granularidad.
func TestComputeCOGS_IdentidadUtilidad(t *testing.T) {
	cats := []*entity.Category{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, nil}
	var items []entity.SaleItem
	for i := 0; i < 30; i++ {
		p := product(
			string(rune('a'+i%7)), "Producto", "13.37", "7.11", cats[i%3])
		items = append(items, item(
			string(rune('A'+i%11)), p, 1+i%4, "13.37", []string{"0", "10", "33.33"}[i%3], day(2024, 1, 1+i)))
	}

	rep := finance.ComputeCOGS(items, january2024())

	assert.True(t, rep.GrossProfit.Equal(rep.TotalRevenue.Sub(rep.TotalCOGS)))
	for _, p := range rep.ByProduct {
		assert.True(t, p.Profit.Equal(p.Revenue.Sub(p.Cost)), p.ProductID)
	}
	var revenue, cogs, profit decimal.Decimal
	for _, d := range rep.Daily {
		assert.True(t, d.Profit.Equal(d.Revenue.Sub(d.COGS)), d.Date)
		revenue = revenue.Add(d.Revenue)
		cogs = cogs.Add(d.COGS)
		profit = profit.Add(d.Profit)
	}
	assert.True(t, revenue.Equal(rep.TotalRevenue))
	assert.True(t, cogs.Equal(rep.TotalCOGS))
	assert.True(t, profit.Equal(rep.GrossProfit))
}

// Escenario 6: sin ingresos los márgenes son cero.
func TestComputeCOGS_RangoVacio(t *testing.T) {
	rep := finance.ComputeCOGS(nil, january2024())
	assert.True(t, rep.GrossMargin.IsZero())
	assert.Equal(t, 0, rep.SalesCount)
	assert.Len(t, rep.Daily, 31)
}
