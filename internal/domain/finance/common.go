package finance

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

const (
	// Uncategorized clave literal para registros sin categoría; nunca se descartan.
	Uncategorized = "Uncategorized"
	// UnknownProduct nombre para líneas cuyo producto ya no existe.
	UnknownProduct = "Unknown Product"
)

var hundred = decimal.NewFromInt(100)

// percentOf devuelve part / whole × 100, o cero si whole es cero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// ratio devuelve a / b, o cero si b es cero.
func ratio(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

// LineFigures cifras derivadas de una línea de venta.
type LineFigures struct {
	Revenue decimal.Decimal
	COGS    decimal.Decimal
	Profit  decimal.Decimal
}

// ComputeLine calcula ingreso, costo y utilidad de una línea:
//
//	revenue = unit_price × (1 − discount/100) × quantity
//	cogs    = purchase_price × quantity (cero si no hay costo)
//	profit  = revenue − cogs
func ComputeLine(item entity.SaleItem) LineFigures {
	qty := decimal.NewFromInt(int64(item.Quantity))
	// (100 − d) / 100 evita el redondeo de 1 − d/100 con descuentos periódicos.
	revenue := item.UnitPrice.Mul(qty).Mul(hundred.Sub(item.DiscountPercent)).Div(hundred)
	cogs := item.Product.UnitCost().Mul(qty)
	return LineFigures{Revenue: revenue, COGS: cogs, Profit: revenue.Sub(cogs)}
}

func productName(item entity.SaleItem) string {
	if item.Product == nil || strings.TrimSpace(item.Product.Name) == "" {
		return UnknownProduct
	}
	return item.Product.Name
}

func productKey(item entity.SaleItem) string {
	if item.ProductID != "" {
		return item.ProductID
	}
	if item.Product != nil && item.Product.ID != "" {
		return item.Product.ID
	}
	return UnknownProduct
}

func categoryName(c *entity.Category) string {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return Uncategorized
	}
	return c.Name
}

func productCategory(p *entity.Product) string {
	if p == nil {
		return Uncategorized
	}
	return categoryName(p.Category)
}
