package momentum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

func TestStochFBounds(t *testing.T) {
	cfg := config.DefaultSettings()
	high := []float64{3, 4, 5, 6, 7, 8}
	low := []float64{1, 2, 3, 4, 5, 6}
	p := StochFParams{FastKPeriod: 3, FastDPeriod: 3}

	top, err := StochF(cfg, high, low, high, p)
	require.NoError(t, err)
	assert.Equal(t, 4, top.Begin)
	assert.InDeltaSlice(t, []float64{100, 100}, top.K[4:], eps)
	assert.InDeltaSlice(t, []float64{100, 100}, top.D[4:], eps)
	assert.Zero(t, top.K[3])

	// The window's lowest low sits two bars back, so a close on the current
	// low lands half way up the range.
	mid, err := StochF(cfg, high, low, low, p)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{50, 50}, mid.K[4:], eps)

	fallHigh := []float64{8, 7, 6, 5, 4, 3}
	fallLow := []float64{6, 5, 4, 3, 2, 1}
	bottom, err := StochF(cfg, fallHigh, fallLow, fallLow, p)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0}, bottom.K[4:], eps)
	assert.InDeltaSlice(t, []float64{0, 0}, bottom.D[4:], eps)
}

func TestStochFlatWindowIsZero(t *testing.T) {
	flat := constant(20, 4)
	r, err := Stoch(config.DefaultSettings(), flat, flat, flat, DefaultStochParams())
	require.NoError(t, err)
	assert.Equal(t, 8, r.Begin)
	for i := r.Begin; i < 20; i++ {
		assert.Zero(t, r.K[i])
		assert.Zero(t, r.D[i])
	}
}

func TestStochRandomStaysInRange(t *testing.T) {
	cfg := config.DefaultSettings()
	_, high, low, close := randOHLC(200)
	for _, mt := range []core.MAType{core.SMA, core.EMA, core.WMA, core.TRIMA} {
		p := DefaultStochParams()
		p.SlowKMA, p.SlowDMA = mt, mt
		r, err := Stoch(cfg, high, low, close, p)
		require.NoError(t, err)
		assert.Equal(t, StochLookback(cfg, p), r.Begin)
		assert.True(t, inRange(r.K[r.Begin:], 0, 100), mt.String())
		assert.True(t, inRange(r.D[r.Begin:], 0, 100), mt.String())
	}
}

func TestStochRSI(t *testing.T) {
	cfg := config.DefaultSettings()
	in := randVals(120)
	r, err := StochRSI(cfg, in, DefaultStochRSIParams())
	require.NoError(t, err)
	assert.Equal(t, 20, r.Begin)
	assert.True(t, inRange(r.K[r.Begin:], 0, 100))
	assert.True(t, inRange(r.D[r.Begin:], 0, 100))
	for i := 0; i < r.Begin; i++ {
		assert.Zero(t, r.K[i])
	}

	cfg = cfg.WithUnstable(config.UnstStochRSI, 5)
	r, err = StochRSI(cfg, in, DefaultStochRSIParams())
	require.NoError(t, err)
	assert.Equal(t, 25, r.Begin)
}

func TestWillR(t *testing.T) {
	high := []float64{3, 4, 5, 6}
	low := []float64{1, 2, 3, 4}
	r, err := WillR(high, low, high, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Begin)
	assert.InDeltaSlice(t, []float64{0, 0}, r.Valid(), eps)

	r, err = WillR(high, low, low, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-50, -50}, r.Valid(), eps)

	fallHigh := []float64{6, 5, 4, 3}
	fallLow := []float64{4, 3, 2, 1}
	r, err = WillR(fallHigh, fallLow, fallLow, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-100, -100}, r.Valid(), eps)
}
