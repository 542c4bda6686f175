package repository

import (
	"context"
	"time"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// Period rango inclusivo [From, To] para filtrar consultas.
// Un extremo en cero significa "sin límite" por ese lado.
type Period struct {
	From time.Time
	To   time.Time
}

// All devuelve un período sin límites (todo el histórico).
func All() Period { return Period{} }

// ReportDataSource define las consultas de lectura que alimentan los reportes financieros.
// Las implementaciones son read-only y deben entregar las relaciones ya normalizadas:
// un registro relacionado opcional (puntero), nunca un arreglo.
type ReportDataSource interface {
	// ListSaleItems devuelve las líneas de venta cuya venta padre cae en el período,
	// con el producto y su categoría resueltos.
	ListSaleItems(ctx context.Context, period Period) ([]entity.SaleItem, error)

	// ListExpenses devuelve los gastos operativos con payment_date dentro del período.
	ListExpenses(ctx context.Context, period Period) ([]entity.Expense, error)

	// ListInvestments devuelve las inversiones con investment_date dentro del período.
	ListInvestments(ctx context.Context, period Period) ([]entity.InitialInvestment, error)

	// ListProducts devuelve el catálogo completo con el flag HasSales calculado
	// sobre todo el histórico de ventas.
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetSettings devuelve la fila de configuración global o nil si no existe.
	GetSettings(ctx context.Context) (*entity.Settings, error)
}
