package finance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// ProductStockValue valorización de un producto en inventario.
type ProductStockValue struct {
	ProductID       string
	Name            string
	Category        string
	Stock           int
	Price           decimal.Decimal
	PurchasePrice   decimal.Decimal
	RetailValue     decimal.Decimal // price × stock
	CostValue       decimal.Decimal // purchase_price × stock
	PotentialProfit decimal.Decimal // RetailValue − CostValue
	MarginPotential decimal.Decimal // PotentialProfit / RetailValue × 100
	HasSales        bool
}

// CategoryStockValue rollup por categoría con el mismo corte activo/inactivo del portafolio.
type CategoryStockValue struct {
	Category           string
	ProductCount       int
	ActiveCount        int
	InactiveCount      int
	TotalValue         decimal.Decimal
	ActiveTotalValue   decimal.Decimal
	InactiveTotalValue decimal.Decimal
	TotalCostValue     decimal.Decimal
}

// StockValueReport resultado del agregador de valor de inventario.
// Activo = el producto tiene al menos una venta histórica; la partición es estricta.
type StockValueReport struct {
	Products               []ProductStockValue
	Categories             []CategoryStockValue
	TotalRetailValue       decimal.Decimal
	TotalCostValue         decimal.Decimal
	TotalPotentialProfit   decimal.Decimal
	MarginPotential        decimal.Decimal
	ActiveInventoryValue   decimal.Decimal
	InactiveInventoryValue decimal.Decimal
	ActiveCostValue        decimal.Decimal
	InactiveCostValue      decimal.Decimal
	ActiveProducts         int
	InactiveProducts       int
}

// ComputeStockValue valoriza el catálogo completo. Los totales del portafolio y los
// rollups por categoría salen del mismo recorrido, de modo que la suma de
// ActiveTotalValue de las categorías es igual a ActiveInventoryValue.
func ComputeStockValue(products []entity.Product) StockValueReport {
	rep := StockValueReport{Products: make([]ProductStockValue, 0, len(products))}
	byCategory := make(map[string]*CategoryStockValue)

	for i := range products {
		p := &products[i]
		stock := decimal.NewFromInt(int64(p.Stock))
		cost := p.UnitCost()
		row := ProductStockValue{
			ProductID:     p.ID,
			Name:          p.Name,
			Category:      categoryName(p.Category),
			Stock:         p.Stock,
			Price:         p.Price,
			PurchasePrice: cost,
			RetailValue:   p.Price.Mul(stock),
			CostValue:     cost.Mul(stock),
			HasSales:      p.HasSales,
		}
		row.PotentialProfit = row.RetailValue.Sub(row.CostValue)
		row.MarginPotential = percentOf(row.PotentialProfit, row.RetailValue)
		rep.Products = append(rep.Products, row)

		cat, ok := byCategory[row.Category]
		if !ok {
			cat = &CategoryStockValue{Category: row.Category}
			byCategory[row.Category] = cat
		}
		cat.ProductCount++
		cat.TotalValue = cat.TotalValue.Add(row.RetailValue)
		cat.TotalCostValue = cat.TotalCostValue.Add(row.CostValue)

		rep.TotalRetailValue = rep.TotalRetailValue.Add(row.RetailValue)
		rep.TotalCostValue = rep.TotalCostValue.Add(row.CostValue)

		if row.HasSales {
			rep.ActiveProducts++
			rep.ActiveInventoryValue = rep.ActiveInventoryValue.Add(row.RetailValue)
			rep.ActiveCostValue = rep.ActiveCostValue.Add(row.CostValue)
			cat.ActiveCount++
			cat.ActiveTotalValue = cat.ActiveTotalValue.Add(row.RetailValue)
		} else {
			rep.InactiveProducts++
			rep.InactiveInventoryValue = rep.InactiveInventoryValue.Add(row.RetailValue)
			rep.InactiveCostValue = rep.InactiveCostValue.Add(row.CostValue)
			cat.InactiveCount++
			cat.InactiveTotalValue = cat.InactiveTotalValue.Add(row.RetailValue)
		}
	}

	rep.TotalPotentialProfit = rep.TotalRetailValue.Sub(rep.TotalCostValue)
	rep.MarginPotential = percentOf(rep.TotalPotentialProfit, rep.TotalRetailValue)

	rep.Categories = make([]CategoryStockValue, 0, len(byCategory))
	for _, c := range byCategory {
		rep.Categories = append(rep.Categories, *c)
	}
	sort.Slice(rep.Categories, func(i, j int) bool {
		return rep.Categories[i].Category < rep.Categories[j].Category
	})
	sort.SliceStable(rep.Products, func(i, j int) bool {
		return rep.Products[i].RetailValue.GreaterThan(rep.Products[j].RetailValue)
	})
	return rep
}
