package finance

import (
	"sort"

	"github.com/shopspring/decimal"
)

// paretoThreshold principio de Pareto: ~20% de los productos genera ~80% del ingreso.
var paretoThreshold = decimal.NewFromInt(80)

// ProductRank posición de un producto en el ranking de rentabilidad.
type ProductRank struct {
	Rank            int
	Product         ProductCOGS
	RevenueShare    decimal.Decimal // participación % en el ingreso total
	CumulativeShare decimal.Decimal // participación acumulada hasta esta posición
	IsTopPareto     bool
}

// RankProducts ordena los productos por utilidad bruta descendente y marca los que
// caen dentro del primer 80% de ingresos acumulados. limit <= 0 devuelve todos.
func RankProducts(byProduct map[string]*ProductCOGS, limit int) []ProductRank {
	products := sortedProducts(byProduct, func(a, b *ProductCOGS) bool {
		if !a.Profit.Equal(b.Profit) {
			return a.Profit.GreaterThan(b.Profit)
		}
		return a.Revenue.GreaterThan(b.Revenue)
	})

	var total decimal.Decimal
	for _, p := range products {
		total = total.Add(p.Revenue)
	}

	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	ranking := make([]ProductRank, 0, len(products))
	var cumulative decimal.Decimal
	for i, p := range products {
		share := percentOf(p.Revenue, total)
		cumulative = cumulative.Add(share)
		ranking = append(ranking, ProductRank{
			Rank:            i + 1,
			Product:         *p,
			RevenueShare:    share,
			CumulativeShare: cumulative,
			// se incluye el producto que cruza el umbral; el 80/20 es aproximado
			IsTopPareto: cumulative.LessThanOrEqual(paretoThreshold) || i == 0,
		})
	}
	return ranking
}

// TopByRevenue devuelve los n productos con mayor ingreso.
func TopByRevenue(byProduct map[string]*ProductCOGS, n int) []ProductCOGS {
	products := sortedProducts(byProduct, func(a, b *ProductCOGS) bool {
		return a.Revenue.GreaterThan(b.Revenue)
	})
	if n > 0 && len(products) > n {
		products = products[:n]
	}
	out := make([]ProductCOGS, 0, len(products))
	for _, p := range products {
		out = append(out, *p)
	}
	return out
}

// sortedProducts ordena con desempate por nombre e ID para que el resultado sea determinista.
func sortedProducts(byProduct map[string]*ProductCOGS, less func(a, b *ProductCOGS) bool) []*ProductCOGS {
	products := make([]*ProductCOGS, 0, len(byProduct))
	for _, p := range byProduct {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ProductID < b.ProductID
	})
	return products
}
