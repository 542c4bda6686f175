package finance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
)

func sampleByProduct() map[string]*finance.ProductCOGS {
	return map[string]*finance.ProductCOGS{
		"a": {ProductID: "a", Name: "A", Revenue: dec("100"), Profit: dec("50")},
		"b": {ProductID: "b", Name: "B", Revenue: dec("60"), Profit: dec("30")},
		"c": {ProductID: "c", Name: "C", Revenue: dec("40"), Profit: dec("10")},
	}
}

func TestRankProducts_Pareto(t *testing.T) {
	ranking := finance.RankProducts(sampleByProduct(), 0)
	require.Len(t, ranking, 3)

	assert.Equal(t, "a", ranking[0].Product.ProductID)
	assert.Equal(t, 1, ranking[0].Rank)
	assertDec(t, "50", ranking[0].RevenueShare)
	assertDec(t, "80", ranking[1].CumulativeShare)
	assertDec(t, "100", ranking[2].CumulativeShare)

	assert.True(t, ranking[0].IsTopPareto)
	assert.True(t, ranking[1].IsTopPareto)
	assert.False(t, ranking[2].IsTopPareto)
}

func TestRankProducts_LimiteConservaParticipacionTotal(t *testing.T) {
	ranking := finance.RankProducts(sampleByProduct(), 1)
	require.Len(t, ranking, 1)
	assertDec(t, "50", ranking[0].RevenueShare)
}

func TestRankProducts_PrimeroSiempreEsPareto(t *testing.T) {
	ranking := finance.RankProducts(map[string]*finance.ProductCOGS{
		"x": {ProductID: "x", Name: "X", Revenue: dec("95"), Profit: dec("10")},
		"y": {ProductID: "y", Name: "Y", Revenue: dec("5"), Profit: dec("1")},
	}, 0)
	assert.True(t, ranking[0].IsTopPareto)
	assert.False(t, ranking[1].IsTopPareto)
}

func TestTopByRevenue(t *testing.T) {
	top := finance.TopByRevenue(sampleByProduct(), 2)
	require.Len(t, top, 2)
	assert.Equal(t, "a", top[0].ProductID)
	assert.Equal(t, "b", top[1].ProductID)
	assert.Empty(t, finance.TopByRevenue(nil, 5))
}
