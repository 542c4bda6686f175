package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de venta ya normalizada por el adaptador de la fuente de datos:
// la fecha viene de la venta padre (sales.created_at) y el producto es un registro único opcional.
type SaleItem struct {
	ID              string
	SaleID          string
	ProductID       string
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal // 0–100
	SoldAt          time.Time
	Product         *Product // nil si el producto fue eliminado
}
