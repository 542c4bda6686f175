package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
)

// idealStockFactor el stock ideal es 1.5 veces el mínimo configurado.
var idealStockFactor = decimal.RequireFromString("1.5")

// Suggestion sugerencia de reposición para un producto en o bajo su stock mínimo.
type Suggestion struct {
	ProductID      string
	Name           string
	Category       string
	Stock          int
	MinStock       int
	IdealStock     int
	SuggestedQty   int
	UnitCost       decimal.Decimal
	EstimatedCost  decimal.Decimal
	GrossMarginPct decimal.Decimal
	UnitsSold      int
	Priority       int // 1 = más urgente
}

// LowStock devuelve los productos con stock <= stock mínimo (solo los que tienen
// un mínimo configurado) y la cantidad sugerida para llevarlos al stock ideal.
//
// sold es el acumulado de ventas del periodo de referencia por producto; se usa
// para priorizar: primero mayor margen histórico, luego mayor volumen y por último
// mayor déficit. Sin historial el margen se estima con precio y costo.
func LowStock(products []entity.Product, sold map[string]*finance.ProductCOGS) []Suggestion {
	hundred := decimal.NewFromInt(100)
	suggestions := make([]Suggestion, 0)

	for i := range products {
		p := &products[i]
		if p.MinStock <= 0 || p.Stock > p.MinStock {
			continue
		}
		ideal := int(decimal.NewFromInt(int64(p.MinStock)).Mul(idealStockFactor).Ceil().IntPart())
		qty := ideal - p.Stock
		if qty < 0 {
			qty = 0
		}
		cost := p.UnitCost()

		s := Suggestion{
			ProductID:     p.ID,
			Name:          p.Name,
			Category:      categoryName(p),
			Stock:         p.Stock,
			MinStock:      p.MinStock,
			IdealStock:    ideal,
			SuggestedQty:  qty,
			UnitCost:      cost,
			EstimatedCost: cost.Mul(decimal.NewFromInt(int64(qty))),
		}
		if m, ok := sold[p.ID]; ok && m.Revenue.IsPositive() {
			s.UnitsSold = m.Quantity
			s.GrossMarginPct = m.Profit.Div(m.Revenue).Mul(hundred).Round(2)
		} else if p.Price.IsPositive() {
			s.GrossMarginPct = p.Price.Sub(cost).Div(p.Price).Mul(hundred).Round(2)
		}
		suggestions = append(suggestions, s)
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if !a.GrossMarginPct.Equal(b.GrossMarginPct) {
			return a.GrossMarginPct.GreaterThan(b.GrossMarginPct)
		}
		if a.UnitsSold != b.UnitsSold {
			return a.UnitsSold > b.UnitsSold
		}
		return a.MinStock-a.Stock > b.MinStock-b.Stock
	})
	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions
}

func categoryName(p *entity.Product) string {
	if p.Category == nil || p.Category.Name == "" {
		return finance.Uncategorized
	}
	return p.Category.Name
}
