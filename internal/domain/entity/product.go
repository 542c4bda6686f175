package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo tal como lo entrega la fuente de datos.
// PurchasePrice es nulo cuando el producto nunca registró costo de compra.
type Product struct {
	ID            string
	Name          string
	Price         decimal.Decimal     // precio de venta vigente
	PurchasePrice decimal.NullDecimal // costo base (nullable)
	Stock         int
	MinStock      int
	CategoryID    string    // vacío si no tiene categoría
	Category      *Category // nil si no tiene categoría o fue eliminada
	HasSales      bool      // true si aparece en al menos un sale_item (histórico completo)
}

// UnitCost devuelve el costo de compra o cero si es nulo.
func (p *Product) UnitCost() decimal.Decimal {
	if p == nil || !p.PurchasePrice.Valid {
		return decimal.Zero
	}
	return p.PurchasePrice.Decimal
}
