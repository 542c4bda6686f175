package finance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-analytics-api/internal/domain/finance"
)

func TestNewDateRange_CubreDiasCompletos(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	r, err := finance.NewDateRange(
		time.Date(2024, 1, 10, 15, 30, 0, 0, bogota),
		time.Date(2024, 1, 12, 8, 0, 0, 0, bogota),
		bogota,
	)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, bogota), r.From)
	assert.True(t, r.Contains(time.Date(2024, 1, 12, 23, 59, 59, 0, bogota)))
	assert.False(t, r.Contains(time.Date(2024, 1, 13, 0, 0, 0, 0, bogota)))
	// 2024-01-13 03:00 UTC sigue siendo el 12 en Bogotá
	assert.True(t, r.Contains(time.Date(2024, 1, 13, 3, 0, 0, 0, time.UTC)))
	assert.Equal(t, 3, r.Days())
	assert.Equal(t, []string{"2024-01-10", "2024-01-11", "2024-01-12"}, r.EachDay())
}

func TestNewDateRange_Invertido(t *testing.T) {
	_, err := finance.NewDateRange(day(2024, 2, 1), day(2024, 1, 1), time.UTC)
	assert.Error(t, err)
}

func TestDateRange_UnSoloDia(t *testing.T) {
	r := rangeUTC(day(2024, 3, 5), day(2024, 3, 5))
	assert.Equal(t, 1, r.Days())
	assert.Equal(t, []string{"2024-03-05"}, r.EachDay())
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), r.EndDate())
}

func TestDateRange_MonthsRecortaExtremos(t *testing.T) {
	r := rangeUTC(day(2024, 1, 15), day(2024, 3, 10))
	months := r.Months()
	require.Len(t, months, 3)

	assert.Equal(t, "2024-01", months[0].Key)
	assert.Equal(t, r.From, months[0].Range.From)
	assert.Equal(t, 17, months[0].Range.Days())

	assert.Equal(t, "2024-02", months[1].Key)
	assert.Equal(t, 29, months[1].Range.Days())

	assert.Equal(t, "2024-03", months[2].Key)
	assert.Equal(t, r.To, months[2].Range.To)
	assert.Equal(t, 10, months[2].Range.Days())
}
