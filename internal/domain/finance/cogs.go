package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// ProductCOGS acumulado de costo e ingreso de un producto en el rango.
type ProductCOGS struct {
	ProductID string
	Name      string
	Category  string
	Quantity  int
	Cost      decimal.Decimal
	Revenue   decimal.Decimal
	Profit    decimal.Decimal
	Margin    decimal.Decimal // Profit / Revenue × 100
}

// DailyCOGS bucket diario del reporte de COGS.
type DailyCOGS struct {
	Date    string
	COGS    decimal.Decimal
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// COGSReport resultado del agregador de costo de ventas.
type COGSReport struct {
	Range        DateRange
	TotalCOGS    decimal.Decimal
	TotalRevenue decimal.Decimal
	GrossProfit  decimal.Decimal
	GrossMargin  decimal.Decimal // GrossProfit / TotalRevenue × 100; cero sin ingresos
	ItemsSold    int
	SalesCount   int
	ByProduct    map[string]*ProductCOGS
	ByCategory   map[string]decimal.Decimal // costo por nombre de categoría
	Daily        []DailyCOGS                // un bucket por día del rango, sin huecos
}

// ComputeCOGS recorre una sola vez las líneas de venta del rango y acumula
// simultáneamente por producto, por categoría y por día.
// Las líneas fuera del rango se ignoran; las que no tienen producto o categoría
// se agrupan bajo UnknownProduct / Uncategorized.
func ComputeCOGS(items []entity.SaleItem, r DateRange) COGSReport {
	rep := COGSReport{
		Range:      r,
		ByProduct:  make(map[string]*ProductCOGS),
		ByCategory: make(map[string]decimal.Decimal),
	}

	days := r.EachDay()
	rep.Daily = make([]DailyCOGS, len(days))
	dayIndex := make(map[string]int, len(days))
	for i, d := range days {
		rep.Daily[i] = DailyCOGS{Date: d}
		dayIndex[d] = i
	}

	sales := make(map[string]struct{})
	for _, item := range items {
		if !r.Contains(item.SoldAt) {
			continue
		}
		line := ComputeLine(item)

		rep.TotalRevenue = rep.TotalRevenue.Add(line.Revenue)
		rep.TotalCOGS = rep.TotalCOGS.Add(line.COGS)
		rep.ItemsSold += item.Quantity
		sales[item.SaleID] = struct{}{}

		key := productKey(item)
		p, ok := rep.ByProduct[key]
		if !ok {
			p = &ProductCOGS{
				ProductID: key,
				Name:      productName(item),
				Category:  productCategory(item.Product),
			}
			rep.ByProduct[key] = p
		}
		p.Quantity += item.Quantity
		p.Cost = p.Cost.Add(line.COGS)
		p.Revenue = p.Revenue.Add(line.Revenue)
		p.Profit = p.Profit.Add(line.Profit)

		cat := productCategory(item.Product)
		rep.ByCategory[cat] = rep.ByCategory[cat].Add(line.COGS)

		if i, ok := dayIndex[r.DayKey(item.SoldAt)]; ok {
			d := &rep.Daily[i]
			d.COGS = d.COGS.Add(line.COGS)
			d.Revenue = d.Revenue.Add(line.Revenue)
			d.Profit = d.Profit.Add(line.Profit)
		}
	}

	rep.GrossProfit = rep.TotalRevenue.Sub(rep.TotalCOGS)
	rep.GrossMargin = percentOf(rep.GrossProfit, rep.TotalRevenue)
	rep.SalesCount = len(sales)
	for _, p := range rep.ByProduct {
		p.Margin = percentOf(p.Profit, p.Revenue)
	}
	return rep
}
