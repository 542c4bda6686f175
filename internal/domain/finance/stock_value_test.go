package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
)

func catalog() []entity.Product {
	drinks := &entity.Category{ID: "c1", Name: "Bebidas"}
	snacks := &entity.Category{ID: "c2", Name: "Snacks"}

	coffee := product("p1", "Café", "10", "6", drinks)
	coffee.Stock, coffee.HasSales = 5, true
	tea := product("p2", "Té", "8", "3", drinks)
	tea.Stock = 4
	chips := product("p3", "Papas", "2.5", "1", snacks)
	chips.Stock, chips.HasSales = 20, true
	loose := product("p4", "Granel", "1", "", nil)
	loose.Stock = 7

	return []entity.Product{*coffee, *tea, *chips, *loose}
}

func TestComputeStockValue_Totales(t *testing.T) {
	rep := finance.ComputeStockValue(catalog())

	// 50 + 32 + 50 + 7
	assertDec(t, "139", rep.TotalRetailValue)
	// 30 + 12 + 20 + 0
	assertDec(t, "62", rep.TotalCostValue)
	assertDec(t, "77", rep.TotalPotentialProfit)
	assertDec(t, "100", rep.ActiveInventoryValue)
	assertDec(t, "39", rep.InactiveInventoryValue)
	assertDec(t, "50", rep.ActiveCostValue)
	assert.Equal(t, 2, rep.ActiveProducts)
	assert.Equal(t, 2, rep.InactiveProducts)

	require.Len(t, rep.Products, 4)
	for _, p := range rep.Products {
		assert.True(t, p.PotentialProfit.Equal(p.RetailValue.Sub(p.CostValue)), p.Name)
	}
}

// Escenario 5: un producto sin ventas aporta todo su valor al lado inactivo.
func TestComputeStockValue_ProductoSinVentasEsInactivo(t *testing.T) {
	p := product("p1", "Vela", "4", "2", nil)
	p.Stock = 10

	rep := finance.ComputeStockValue([]entity.Product{*p})

	assertDec(t, "40", rep.InactiveInventoryValue)
	assert.True(t, rep.ActiveInventoryValue.IsZero())
	require.Len(t, rep.Categories, 1)
	assert.Equal(t, finance.Uncategorized, rep.Categories[0].Category)
	assert.True(t, rep.Categories[0].ActiveTotalValue.IsZero())
}

func TestComputeStockValue_RollupCategoriaCuadraConPortafolio(t *testing.T) {
	rep := finance.ComputeStockValue(catalog())

	var active, inactive, total decimal.Decimal
	count := 0
	for _, c := range rep.Categories {
		active = active.Add(c.ActiveTotalValue)
		inactive = inactive.Add(c.InactiveTotalValue)
		total = total.Add(c.TotalValue)
		count += c.ProductCount
		assert.Equal(t, c.ProductCount, c.ActiveCount+c.InactiveCount, c.Category)
	}
	assert.True(t, active.Equal(rep.ActiveInventoryValue))
	assert.True(t, inactive.Equal(rep.InactiveInventoryValue))
	assert.True(t, total.Equal(rep.TotalRetailValue))
	assert.Equal(t, rep.ActiveProducts+rep.InactiveProducts, count)

	require.Len(t, rep.Categories, 3)
	assert.Equal(t, "Bebidas", rep.Categories[0].Category)
	assertDec(t, "50", rep.Categories[0].ActiveTotalValue)
	assertDec(t, "32", rep.Categories[0].InactiveTotalValue)
}

func TestComputeStockValue_CatalogoVacio(t *testing.T) {
	rep := finance.ComputeStockValue(nil)
	assert.True(t, rep.MarginPotential.IsZero())
	assert.Empty(t, rep.Categories)
}
