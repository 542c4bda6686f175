package reports_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-analytics-api/internal/application/reports"
	"github.com/jhoicas/retail-analytics-api/internal/domain"
)

func TestSuperseder_CancelaLaSolicitudAnterior(t *testing.T) {
	s := reports.NewSuperseder()

	first, doneFirst := s.Begin(context.Background(), "u1:cogs")
	second, doneSecond := s.Begin(context.Background(), "u1:cogs")

	require.Error(t, first.Err())
	assert.True(t, errors.Is(context.Cause(first), domain.ErrSuperseded))
	assert.NoError(t, second.Err())

	// terminar la vieja no libera la clave de la nueva
	doneFirst()
	assert.Equal(t, 1, s.InFlight())
	assert.NoError(t, second.Err())

	doneSecond()
	assert.Equal(t, 0, s.InFlight())
}

func TestSuperseder_ClavesIndependientes(t *testing.T) {
	s := reports.NewSuperseder()

	a, doneA := s.Begin(context.Background(), "u1:cogs")
	defer doneA()
	b, doneB := s.Begin(context.Background(), "u1:roi")
	defer doneB()
	c, doneC := s.Begin(context.Background(), "u2:cogs")
	defer doneC()

	assert.NoError(t, a.Err())
	assert.NoError(t, b.Err())
	assert.NoError(t, c.Err())
	assert.Equal(t, 3, s.InFlight())
}

func TestSuperseder_DoneCancelaSuPropioContexto(t *testing.T) {
	s := reports.NewSuperseder()
	ctx, done := s.Begin(context.Background(), "k")
	done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.False(t, errors.Is(context.Cause(ctx), domain.ErrSuperseded))
}
