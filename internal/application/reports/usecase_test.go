package reports_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-analytics-api/internal/application/dto"
	"github.com/jhoicas/retail-analytics-api/internal/application/reports"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/retail-analytics-api/internal/infrastructure/pdf"
)

var endOfJanuary = time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC)

func TestCOGS_RangoPorDefectoEsElMesActual(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	rep, err := uc.COGS(context.Background(), dto.RangeRequest{})

	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", rep.Period.StartDate)
	assert.Equal(t, "2024-01-31", rep.Period.EndDate)
	assert.Equal(t, 31, rep.Period.Days)
	assert.Equal(t, "USD", rep.Currency)
	assertDec(t, "10", rep.TotalCOGS)
	assertDec(t, "20", rep.TotalRevenue)
	assertDec(t, "10", rep.GrossProfit)
	assertDec(t, "50", rep.GrossMargin)
	require.Contains(t, rep.COGSByProduct, "p1")
	assert.Equal(t, "Café", rep.COGSByProduct["p1"].Name)
	assertDec(t, "10", rep.COGSByCategory["Bebidas"])
	assert.Len(t, rep.DailyData, 31)
}

func TestCOGS_MonedaPorDefectoSinSettings(t *testing.T) {
	src := coffeeShop()
	src.settings = nil
	uc := newUseCase(src, endOfJanuary)

	rep, err := uc.COGS(context.Background(), dto.RangeRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	require.NoError(t, err)
	assert.Equal(t, "COP", rep.Currency)
}

func TestCOGS_FechasInvalidas(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	_, err := uc.COGS(context.Background(), dto.RangeRequest{StartDate: "2024-13-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.COGS(context.Background(), dto.RangeRequest{StartDate: "2024-01-20", EndDate: "2024-01-10"})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestCOGS_FallaDeLaFuente(t *testing.T) {
	src := coffeeShop()
	src.err = errors.New("connection refused")
	uc := newUseCase(src, endOfJanuary)

	_, err := uc.COGS(context.Background(), dto.RangeRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

// Escenario 6 a través del caso de uso: rango sin ventas.
func TestCOGS_RangoVacioMargenCero(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	rep, err := uc.NetProfit(context.Background(), dto.RangeRequest{StartDate: "2024-01-20", EndDate: "2024-01-25"})

	require.NoError(t, err)
	assert.True(t, rep.GrossMargin.IsZero())
	assert.True(t, rep.NetMargin.IsZero())
}

func TestNetProfit_VentaYGasto(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	rep, err := uc.NetProfit(context.Background(), dto.RangeRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	require.NoError(t, err)
	assertDec(t, "5", rep.NetProfit)
	assertDec(t, "25", rep.NetMargin)
	require.Len(t, rep.OperatingExpenses, 1)
	assert.Equal(t, "2024-01-11", rep.OperatingExpenses[0].PaymentDate)
	assertDec(t, "5", rep.OperatingExpensesByCategory["Uncategorized"])

	sum := decimal.Zero
	for _, d := range rep.DailyData {
		sum = sum.Add(d.NetProfit)
	}
	assertDec(t, "5", sum)
}

func TestBreakEven_TodoElHistorico(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	rep, err := uc.BreakEven(context.Background(), dto.BreakEvenRequest{All: true})

	require.NoError(t, err)
	// desde la primera inversión (2023-12-15) hasta hoy; la de junio aún no existe para "hoy"
	assert.Equal(t, "2023-12-15", rep.Period.StartDate)
	assert.Equal(t, "2024-01-31", rep.Period.EndDate)
	assertDec(t, "100", rep.TotalInvestment)
	assertDec(t, "5", rep.CumulativeProfit)
	assertDec(t, "5", rep.BreakEvenPercentage)
	require.NotNil(t, rep.BreakEvenUnits)
	assertDec(t, "1", *rep.BreakEvenUnits)
	require.NotNil(t, rep.DaysToBreakEven)
	require.NotNil(t, rep.ProjectedBreakEvenDate)
}

func TestBreakEven_RangoFiltraInversionesPosteriores(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	rep, err := uc.BreakEven(context.Background(), dto.BreakEvenRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	require.NoError(t, err)
	assertDec(t, "100", rep.TotalInvestment)
	assertDec(t, "5", rep.FixedCosts)
}

func TestScenarios_PredeterminadosYPersonalizados(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)
	ctx := context.Background()

	rep, err := uc.Scenarios(ctx, dto.ScenariosRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	require.NoError(t, err)
	require.Len(t, rep.Scenarios, 3)
	assert.Equal(t, "base", rep.Scenarios[0].Name)
	assert.True(t, rep.Base.ContributionMargin.Equal(rep.Scenarios[0].ContributionMargin))
	require.NotNil(t, rep.Scenarios[0].BreakEvenUnits)
	assertDec(t, "1", *rep.Scenarios[0].BreakEvenUnits)

	half := dec("0.5")
	rep, err = uc.Scenarios(ctx, dto.ScenariosRequest{
		StartDate: "2024-01-01", EndDate: "2024-01-31",
		Scenarios: []dto.ScenarioDTO{{Name: "mitad de precio", RevenueMultiplier: &half}},
	})
	require.NoError(t, err)
	require.Len(t, rep.Scenarios, 1)
	assertDec(t, "1", rep.Scenarios[0].FixedCostsMultiplier, "un multiplicador omitido vale 1")
	assertDec(t, "0", rep.Scenarios[0].ContributionMargin)
	assert.Nil(t, rep.Scenarios[0].BreakEvenUnits)
}

func TestScenarios_MultiplicadorNegativo(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)
	neg := dec("-1")

	_, err := uc.Scenarios(context.Background(), dto.ScenariosRequest{
		Scenarios: []dto.ScenarioDTO{{Name: "x", FixedCostsMultiplier: &neg}},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestROI_SoloInversionesHastaElFinDelRango(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	rep, err := uc.ROI(context.Background(), dto.RangeRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	require.NoError(t, err)
	assertDec(t, "100", rep.TotalInvestment)
	assertDec(t, "5", rep.ROI)
	require.NotNil(t, rep.ProfitabilityIndex)
	assertDec(t, "1.05", *rep.ProfitabilityIndex)
	require.Len(t, rep.MonthlyData, 1)
	assertDec(t, "100", rep.MonthlyData[0].Investment)
	assert.Nil(t, rep.BreakEvenPoint)
}

func TestStockValue(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	rep, err := uc.StockValue(context.Background())

	require.NoError(t, err)
	assertDec(t, "30", rep.ActiveInventoryValue)
	assertDec(t, "40", rep.InactiveInventoryValue)
	assert.Equal(t, 1, rep.ActiveProducts)
	assert.Equal(t, 1, rep.InactiveProducts)

	active := decimal.Zero
	for _, c := range rep.Categories {
		active = active.Add(c.ActiveTotalValue)
	}
	assert.True(t, active.Equal(rep.ActiveInventoryValue))
}

func TestDashboard(t *testing.T) {
	src := coffeeShop()
	src.items = append(src.items, entity.SaleItem{
		ID: "i2", SaleID: "s2", ProductID: "p2", Quantity: 1,
		UnitPrice: dec("4"), DiscountPercent: decimal.Zero,
		SoldAt: at(2024, 1, 31), Product: &src.products[1],
	})
	uc := newUseCase(src, endOfJanuary)

	rep, err := uc.Dashboard(context.Background())

	require.NoError(t, err)
	assertDec(t, "4", rep.TodaySales)
	assertDec(t, "24", rep.MonthlySales)
	assertDec(t, "14", rep.MonthlyGrossProfit)
	assertDec(t, "9", rep.MonthlyNetProfit)
	assert.Equal(t, "Enero 2024", rep.DateLabel)
	require.Len(t, rep.TopProducts, 2)
	assert.Equal(t, "p1", rep.TopProducts[0].ProductID)
}

func TestProductRanking(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	rep, err := uc.ProductRanking(context.Background(), dto.RankingRequest{TopN: 5})

	require.NoError(t, err)
	require.Len(t, rep.Ranking, 1)
	assert.Equal(t, 1, rep.Ranking[0].Rank)
	assert.True(t, rep.Ranking[0].IsTopPareto)
	assertDec(t, "100", rep.Ranking[0].CumulativeRevPct)
	assert.Len(t, rep.ParetoProducts, 1)
}

func TestLowStock(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	rep, err := uc.LowStock(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 90, rep.Period.Days)
	require.Len(t, rep.Items, 1)
	item := rep.Items[0]
	assert.Equal(t, "p1", item.ProductID)
	assert.Equal(t, 8, item.IdealStock)
	assert.Equal(t, 5, item.SuggestedOrderQty)
	assertDec(t, "25", item.EstimatedOrderCost)
	assert.Equal(t, 2, item.UnitsSold)
}

func TestReporte_SolicitudReemplazada(t *testing.T) {
	src := coffeeShop()
	uc := newUseCase(src, endOfJanuary)
	sup := reports.NewSuperseder()

	stale, doneStale := sup.Begin(context.Background(), "u1:cogs")
	defer doneStale()
	fresh, doneFresh := sup.Begin(context.Background(), "u1:cogs")
	defer doneFresh()

	_, err := uc.COGS(stale, dto.RangeRequest{})
	assert.ErrorIs(t, err, domain.ErrSuperseded)

	rep, err := uc.COGS(fresh, dto.RangeRequest{})
	require.NoError(t, err)
	assertDec(t, "20", rep.TotalRevenue)
}

func TestExport_CSV(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	file, err := uc.Export(context.Background(), reports.ExportCOGS, dto.ExportRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	require.NoError(t, err)
	assert.Equal(t, "cogs_2024-01-01_2024-01-31.csv", file.Filename)
	assert.Contains(t, file.ContentType, "text/csv")
	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 32)
	assert.Equal(t, "date,cogs,revenue,profit", lines[0])
	assert.Equal(t, "2024-01-10,10,20,10", lines[10])
}

func TestExport_StockValueYNetProfit(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)
	ctx := context.Background()

	file, err := uc.Export(ctx, reports.ExportStockValue, dto.ExportRequest{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(file.Data), "name,category,stock,price,purchasePrice,retailValue,costValue,potentialProfit,marginPotential,active\n"))

	file, err = uc.Export(ctx, reports.ExportNetProfit, dto.ExportRequest{StartDate: "2024-01-10", EndDate: "2024-01-11"})
	require.NoError(t, err)
	assert.Equal(t,
		"date,revenue,cogs,grossProfit,operatingExpenses,netProfit\n"+
			"2024-01-10,20,10,10,0,10\n"+
			"2024-01-11,0,0,0,5,-5\n",
		string(file.Data))
}

func TestExport_Errores(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)
	ctx := context.Background()

	_, err := uc.Export(ctx, "inventario-magico", dto.ExportRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Export(ctx, reports.ExportROI, dto.ExportRequest{Format: "docx"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// discountedSales tres ventas de 0.99 con 33% de descuento (ingreso 0.6633 cada una).
func discountedSales() *stubSource {
	bread := entity.Product{ID: "p9", Name: "Pan", Price: dec("0.99"), PurchasePrice: decimal.NewNullDecimal(dec("0.41"))}
	src := &stubSource{settings: &entity.Settings{Currency: "COP"}, products: []entity.Product{bread}}
	for d := 1; d <= 3; d++ {
		src.items = append(src.items, entity.SaleItem{
			ID: fmt.Sprintf("i%d", d), SaleID: fmt.Sprintf("s%d", d), ProductID: "p9", Quantity: 1,
			UnitPrice: dec("0.99"), DiscountPercent: dec("33"),
			SoldAt: at(2024, 1, d), Product: &bread,
		})
	}
	src.expenses = []entity.Expense{{ID: "e1", Amount: dec("0.333"), PaymentDate: at(2024, 1, 2)}}
	return src
}

func TestNetProfit_RespuestaCuadraConCentavosFraccionarios(t *testing.T) {
	uc := newUseCase(discountedSales(), endOfJanuary)

	rep, err := uc.NetProfit(context.Background(), dto.RangeRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	require.NoError(t, err)
	var net, revenue, cogs decimal.Decimal
	for _, d := range rep.DailyData {
		net = net.Add(d.NetProfit)
		revenue = revenue.Add(d.Revenue)
		cogs = cogs.Add(d.COGS)
		assert.True(t, d.GrossProfit.Equal(d.Revenue.Sub(d.COGS)), "día %s", d.Date)
	}
	assertDec(t, "1.9899", rep.TotalRevenue)
	assert.True(t, net.Equal(rep.NetProfit), "suma diaria %s vs total %s", net, rep.NetProfit)
	assert.True(t, revenue.Equal(rep.TotalRevenue))
	assert.True(t, cogs.Equal(rep.TotalCOGS))
	assert.True(t, rep.GrossProfit.Equal(rep.TotalRevenue.Sub(rep.TotalCOGS)))
	assert.True(t, rep.NetProfit.Equal(rep.GrossProfit.Sub(rep.TotalOperatingExpenses)))
}

func TestCOGS_RespuestaCuadraConCentavosFraccionarios(t *testing.T) {
	uc := newUseCase(discountedSales(), endOfJanuary)

	rep, err := uc.COGS(context.Background(), dto.RangeRequest{StartDate: "2024-01-01", EndDate: "2024-01-03"})

	require.NoError(t, err)
	var profit decimal.Decimal
	for _, d := range rep.DailyData {
		profit = profit.Add(d.Profit)
	}
	assert.True(t, profit.Equal(rep.GrossProfit))
	assert.True(t, rep.GrossProfit.Equal(rep.TotalRevenue.Sub(rep.TotalCOGS)))
	assert.True(t, rep.COGSByProduct["p9"].Cost.Equal(rep.TotalCOGS))
}

func TestRango_SuperaElMaximo(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)

	_, err := uc.ROI(context.Background(), dto.RangeRequest{StartDate: "1000-01-01", EndDate: "9999-12-31"})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	_, err = uc.Export(context.Background(), reports.ExportNetProfit, dto.ExportRequest{StartDate: "1900-01-01", EndDate: "2024-01-31"})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestRango_MaximoConfigurable(t *testing.T) {
	uc := reports.NewUseCase(coffeeShop(), reports.Options{
		Location:     time.UTC,
		Now:          fixedClock(endOfJanuary),
		MaxRangeDays: 31,
	})
	ctx := context.Background()

	_, err := uc.COGS(ctx, dto.RangeRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	assert.NoError(t, err, "31 días está dentro del máximo")

	_, err = uc.COGS(ctx, dto.RangeRequest{StartDate: "2024-01-01", EndDate: "2024-02-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestMoneda_CodigoNoISOUsaLaMonedaPorDefecto(t *testing.T) {
	src := coffeeShop()
	src.settings = &entity.Settings{Currency: "Bs"}
	uc := newUseCase(src, endOfJanuary, infrapdf.NewReportRenderer("es-CO"))
	ctx := context.Background()

	rep, err := uc.COGS(ctx, dto.RangeRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})
	require.NoError(t, err)
	assert.Equal(t, "COP", rep.Currency)

	file, err := uc.Export(ctx, reports.ExportCOGS, dto.ExportRequest{StartDate: "2024-01-01", EndDate: "2024-01-31", Format: "pdf"})
	require.NoError(t, err, "una moneda mal configurada no debe romper la exportación")
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestExport_BreakEven(t *testing.T) {
	uc := newUseCase(coffeeShop(), endOfJanuary)
	ctx := context.Background()

	file, err := uc.Export(ctx, reports.ExportBreakEven, dto.ExportRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	require.NoError(t, err)
	assert.Equal(t, "break-even_2024-01-01_2024-01-31.csv", file.Filename)
	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 2, "una fila de encabezado y una fila resumen")
	assert.Equal(t,
		"fixedCosts,variableCostsPerUnit,revenuePerUnit,contributionMargin,contributionMarginRatio,"+
			"breakEvenUnits,breakEvenSales,totalInvestment,cumulativeProfit,breakEvenPoint,"+
			"breakEvenPercentage,averageDailyProfit,daysToBreakEven,projectedBreakEvenDate",
		lines[0])
	cells := strings.Split(lines[1], ",")
	require.Len(t, cells, 14)
	assert.Equal(t, "5", cells[0])
	assert.Equal(t, "5", cells[1])
	assert.Equal(t, "10", cells[2])
	assert.Equal(t, "1", cells[5])
	assert.Equal(t, "100", cells[7])
	assert.Equal(t, "5", cells[8])

	file, err = uc.Export(ctx, reports.ExportBreakEven, dto.ExportRequest{All: true})
	require.NoError(t, err)
	assert.Equal(t, "break-even_2023-12-15_2024-01-31.csv", file.Filename)
}

func TestExport_BreakEvenSinEquilibrioDejaCeldasVacias(t *testing.T) {
	src := coffeeShop()
	src.items = nil
	uc := newUseCase(src, endOfJanuary)

	file, err := uc.Export(context.Background(), reports.ExportBreakEven, dto.ExportRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 2)
	cells := strings.Split(lines[1], ",")
	require.Len(t, cells, 14)
	assert.Empty(t, cells[5], "breakEvenUnits indefinido")
	assert.Empty(t, cells[9], "breakEvenPoint indefinido")
	assert.Empty(t, cells[12], "sin proyección de días")
	assert.Empty(t, cells[13], "sin fecha proyectada")
}
