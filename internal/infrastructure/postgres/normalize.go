package postgres

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// Filas planas del LEFT JOIN. Las columnas del lado opcional son punteros o
// NullDecimal; normalize* las convierte en un registro relacionado opcional
// (nil si no existe), nunca en un arreglo.

type saleItemRow struct {
	ID              string              `db:"id"`
	SaleID          string              `db:"sale_id"`
	ProductID       *string             `db:"product_id"`
	Quantity        int                 `db:"quantity"`
	UnitPrice       decimal.Decimal     `db:"unit_price"`
	DiscountPercent decimal.NullDecimal `db:"discount_percent"`
	SoldAt          time.Time           `db:"sold_at"`
	JoinedProductID *string             `db:"joined_product_id"`
	ProductName     *string             `db:"product_name"`
	ProductPrice    decimal.NullDecimal `db:"product_price"`
	PurchasePrice   decimal.NullDecimal `db:"purchase_price"`
	Stock           *int                `db:"stock"`
	MinStock        *int                `db:"min_stock"`
	CategoryID      *string             `db:"category_id"`
	CategoryName    *string             `db:"category_name"`
}

type productRow struct {
	ID            string              `db:"id"`
	Name          string              `db:"name"`
	Price         decimal.Decimal     `db:"price"`
	PurchasePrice decimal.NullDecimal `db:"purchase_price"`
	Stock         int                 `db:"stock"`
	MinStock      int                 `db:"min_stock"`
	CategoryID    *string             `db:"category_id"`
	CategoryName  *string             `db:"category_name"`
	HasSales      bool                `db:"has_sales"`
}

type expenseRow struct {
	ID           string          `db:"id"`
	Amount       decimal.Decimal `db:"amount"`
	Description  *string         `db:"description"`
	CategoryID   *string         `db:"category_id"`
	CategoryName *string         `db:"category_name"`
	PaymentDate  time.Time       `db:"payment_date"`
}

type investmentRow struct {
	ID             string          `db:"id"`
	Amount         decimal.Decimal `db:"amount"`
	Description    *string         `db:"description"`
	InvestmentDate time.Time       `db:"investment_date"`
}

type settingsRow struct {
	Currency *string `db:"currency"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// joinedCategory nil si el registro no tiene categoría o la categoría fue eliminada.
func joinedCategory(id, name *string) *entity.Category {
	if id == nil {
		return nil
	}
	return &entity.Category{ID: *id, Name: deref(name)}
}

// civilDate ubica una columna DATE (que pgx entrega a medianoche UTC) en el
// mismo día calendario de la zona de los reportes.
func civilDate(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func normalizeSaleItem(r saleItemRow) entity.SaleItem {
	item := entity.SaleItem{
		ID:              r.ID,
		SaleID:          r.SaleID,
		ProductID:       deref(r.ProductID),
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		DiscountPercent: decimal.Zero,
		SoldAt:          r.SoldAt,
	}
	if r.DiscountPercent.Valid {
		item.DiscountPercent = r.DiscountPercent.Decimal
	}
	if r.JoinedProductID != nil {
		item.Product = &entity.Product{
			ID:            *r.JoinedProductID,
			Name:          deref(r.ProductName),
			Price:         r.ProductPrice.Decimal,
			PurchasePrice: r.PurchasePrice,
			Stock:         derefInt(r.Stock),
			MinStock:      derefInt(r.MinStock),
			CategoryID:    deref(r.CategoryID),
			Category:      joinedCategory(r.CategoryID, r.CategoryName),
		}
	}
	return item
}

func normalizeProduct(r productRow) entity.Product {
	return entity.Product{
		ID:            r.ID,
		Name:          r.Name,
		Price:         r.Price,
		PurchasePrice: r.PurchasePrice,
		Stock:         r.Stock,
		MinStock:      r.MinStock,
		CategoryID:    deref(r.CategoryID),
		Category:      joinedCategory(r.CategoryID, r.CategoryName),
		HasSales:      r.HasSales,
	}
}

func normalizeExpense(r expenseRow, loc *time.Location) entity.Expense {
	return entity.Expense{
		ID:          r.ID,
		Amount:      r.Amount,
		Description: deref(r.Description),
		CategoryID:  deref(r.CategoryID),
		Category:    joinedCategory(r.CategoryID, r.CategoryName),
		PaymentDate: civilDate(r.PaymentDate, loc),
	}
}

func normalizeInvestment(r investmentRow, loc *time.Location) entity.InitialInvestment {
	return entity.InitialInvestment{
		ID:             r.ID,
		Amount:         r.Amount,
		Description:    deref(r.Description),
		InvestmentDate: civilDate(r.InvestmentDate, loc),
	}
}
