package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	"github.com/jhoicas/retail-analytics-api/internal/domain/repository"
)

var _ repository.ReportDataSource = (*ReportDataSource)(nil)

// ReportDataSource consultas de solo lectura que alimentan los reportes financieros.
// Cada método es una sola consulta; el caso de uso las lanza en paralelo sobre el pool.
type ReportDataSource struct {
	q       Querier
	builder squirrel.StatementBuilderType
	loc     *time.Location
}

// NewReportDataSource construye el adaptador. loc es la zona de los reportes:
// las columnas DATE se interpretan como días calendario en esa zona.
func NewReportDataSource(q Querier, loc *time.Location) *ReportDataSource {
	if loc == nil {
		loc = time.Local
	}
	return &ReportDataSource{
		q:       q,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		loc:     loc,
	}
}

// ── Builders ──────────────────────────────────────────────────────────────────

// withTimestampPeriod filtra una columna timestamptz; un extremo en cero no filtra.
func withTimestampPeriod(q squirrel.SelectBuilder, column string, p repository.Period) squirrel.SelectBuilder {
	if !p.From.IsZero() {
		q = q.Where(squirrel.GtOrEq{column: p.From})
	}
	if !p.To.IsZero() {
		q = q.Where(squirrel.LtOrEq{column: p.To})
	}
	return q
}

// withDatePeriod filtra una columna DATE por día calendario en la zona de reportes.
func (r *ReportDataSource) withDatePeriod(q squirrel.SelectBuilder, column string, p repository.Period) squirrel.SelectBuilder {
	day := func(t time.Time) string { return t.In(r.loc).Format("2006-01-02") }
	if !p.From.IsZero() {
		q = q.Where(squirrel.Expr(column+" >= ?::date", day(p.From)))
	}
	if !p.To.IsZero() {
		q = q.Where(squirrel.Expr(column+" <= ?::date", day(p.To)))
	}
	return q
}

func (r *ReportDataSource) saleItemsQuery(p repository.Period) squirrel.SelectBuilder {
	q := r.builder.
		Select(
			"si.id::text AS id",
			"si.sale_id::text AS sale_id",
			"si.product_id::text AS product_id",
			"si.quantity",
			"si.unit_price",
			"si.discount_percent",
			"s.created_at AS sold_at",
			"p.id::text AS joined_product_id",
			"p.name AS product_name",
			"p.price AS product_price",
			"p.purchase_price",
			"p.stock",
			"p.min_stock",
			"c.id::text AS category_id",
			"c.name AS category_name",
		).
		From("sale_items si").
		Join("sales s ON s.id = si.sale_id").
		LeftJoin("products p ON p.id = si.product_id").
		LeftJoin("categories c ON c.id = p.category_id").
		OrderBy("s.created_at", "si.id")
	return withTimestampPeriod(q, "s.created_at", p)
}

func (r *ReportDataSource) expensesQuery(p repository.Period) squirrel.SelectBuilder {
	q := r.builder.
		Select(
			"e.id::text AS id",
			"e.amount",
			"e.description",
			"c.id::text AS category_id",
			"c.name AS category_name",
			"e.payment_date",
		).
		From("expenses e").
		LeftJoin("categories c ON c.id = e.category_id").
		OrderBy("e.payment_date", "e.id")
	return r.withDatePeriod(q, "e.payment_date", p)
}

func (r *ReportDataSource) investmentsQuery(p repository.Period) squirrel.SelectBuilder {
	q := r.builder.
		Select("i.id::text AS id", "i.amount", "i.description", "i.investment_date").
		From("initial_investments i").
		OrderBy("i.investment_date", "i.id")
	return r.withDatePeriod(q, "i.investment_date", p)
}

func (r *ReportDataSource) productsQuery() squirrel.SelectBuilder {
	return r.builder.
		Select(
			"p.id::text AS id",
			"p.name",
			"p.price",
			"p.purchase_price",
			"p.stock",
			"p.min_stock",
			"c.id::text AS category_id",
			"c.name AS category_name",
			"EXISTS (SELECT 1 FROM sale_items si WHERE si.product_id = p.id) AS has_sales",
		).
		From("products p").
		LeftJoin("categories c ON c.id = p.category_id").
		OrderBy("p.name", "p.id")
}

// ── Queries ───────────────────────────────────────────────────────────────────

func (r *ReportDataSource) selectRows(ctx context.Context, op string, dst any, q squirrel.SelectBuilder) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%s: build query: %w", op, err)
	}
	if err := pgxscan.Select(ctx, r.q, dst, sql, args...); err != nil {
		if isQueryCanceled(err) && ctx.Err() != nil {
			return fmt.Errorf("%s: %w", op, ctx.Err())
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListSaleItems líneas de venta cuya venta padre cae en el período, con producto y categoría.
func (r *ReportDataSource) ListSaleItems(ctx context.Context, p repository.Period) ([]entity.SaleItem, error) {
	var rows []saleItemRow
	if err := r.selectRows(ctx, "reports.ListSaleItems", &rows, r.saleItemsQuery(p)); err != nil {
		return nil, err
	}
	items := make([]entity.SaleItem, 0, len(rows))
	for _, row := range rows {
		item := normalizeSaleItem(row)
		item.SoldAt = item.SoldAt.In(r.loc)
		items = append(items, item)
	}
	return items, nil
}

// ListExpenses gastos operativos con payment_date en el período.
func (r *ReportDataSource) ListExpenses(ctx context.Context, p repository.Period) ([]entity.Expense, error) {
	var rows []expenseRow
	if err := r.selectRows(ctx, "reports.ListExpenses", &rows, r.expensesQuery(p)); err != nil {
		return nil, err
	}
	out := make([]entity.Expense, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalizeExpense(row, r.loc))
	}
	return out, nil
}

// ListInvestments inversiones con investment_date en el período.
func (r *ReportDataSource) ListInvestments(ctx context.Context, p repository.Period) ([]entity.InitialInvestment, error) {
	var rows []investmentRow
	if err := r.selectRows(ctx, "reports.ListInvestments", &rows, r.investmentsQuery(p)); err != nil {
		return nil, err
	}
	out := make([]entity.InitialInvestment, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalizeInvestment(row, r.loc))
	}
	return out, nil
}

// ListProducts catálogo completo; has_sales se calcula sobre todo el histórico.
func (r *ReportDataSource) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var rows []productRow
	if err := r.selectRows(ctx, "reports.ListProducts", &rows, r.productsQuery()); err != nil {
		return nil, err
	}
	out := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, normalizeProduct(row))
	}
	return out, nil
}

// GetSettings fila única de configuración; nil si no existe la fila o la tabla.
func (r *ReportDataSource) GetSettings(ctx context.Context) (*entity.Settings, error) {
	sql, args, err := r.builder.Select("currency").From("settings").Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("reports.GetSettings: build query: %w", err)
	}
	var row settingsRow
	if err := pgxscan.Get(ctx, r.q, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) || isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reports.GetSettings: %w", err)
	}
	return &entity.Settings{Currency: deref(row.Currency)}, nil
}
