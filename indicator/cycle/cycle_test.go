package cycle

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

// wave is a 20 bar sine riding on a slow drift.
func wave(n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 100 + 0.05*float64(i) + 5*math.Sin(2*math.Pi*float64(i)/20)
	}
	return vals
}

func TestLookbacks(t *testing.T) {
	cfg := config.DefaultSettings()
	assert.Equal(t, 32, DCPeriodLookback(cfg))
	assert.Equal(t, 32, PhasorLookback(cfg))
	assert.Equal(t, 63, DCPhaseLookback(cfg))
	assert.Equal(t, 63, SineLookback(cfg))
	assert.Equal(t, 63, TrendModeLookback(cfg))

	cfg = cfg.WithUnstable(config.UnstHTSine, 7)
	assert.Equal(t, 70, SineLookback(cfg))
	assert.Equal(t, 63, DCPhaseLookback(cfg))
}

func TestDCPeriodTracksCycle(t *testing.T) {
	in := wave(300)
	r, err := DCPeriod(config.DefaultSettings(), in)
	require.NoError(t, err)
	assert.Equal(t, 32, r.Begin)
	for _, v := range r.Valid() {
		assert.GreaterOrEqual(t, v, 6.0)
		assert.LessOrEqual(t, v, 50.0)
	}
	// Well after warm-up the measured period settles near 20 bars.
	assert.InDelta(t, 20, r.Values[len(in)-1], 4)
}

func TestSineIsBounded(t *testing.T) {
	r, err := Sine(config.DefaultSettings(), wave(200))
	require.NoError(t, err)
	assert.Equal(t, 63, r.Begin)
	for i := r.Begin; i < 200; i++ {
		assert.LessOrEqual(t, math.Abs(r.Sine[i]), 1.0)
		assert.LessOrEqual(t, math.Abs(r.LeadSine[i]), 1.0)
	}
}

func TestPhasorAndPhase(t *testing.T) {
	cfg := config.DefaultSettings()
	in := wave(150)
	p, err := Phasor(cfg, in)
	require.NoError(t, err)
	assert.Equal(t, 32, p.Begin)
	assert.Len(t, p.InPhase, 150)
	assert.Len(t, p.Quadrature, 150)

	ph, err := DCPhase(cfg, in)
	require.NoError(t, err)
	assert.Equal(t, 63, ph.Begin)
	for _, v := range ph.Valid() {
		assert.False(t, math.IsNaN(v))
		assert.GreaterOrEqual(t, v, -45.0)
		assert.LessOrEqual(t, v, 315.0)
	}
}

func TestTrendModeValues(t *testing.T) {
	cfg := config.DefaultSettings()
	r, err := TrendMode(cfg, wave(250))
	require.NoError(t, err)
	assert.Equal(t, 63, r.Begin)
	for _, v := range r.Valid() {
		assert.Contains(t, []int{0, 1}, v)
	}

}

func TestShortInputRejected(t *testing.T) {
	_, err := DCPhase(config.DefaultSettings(), wave(63))
	assert.True(t, errors.Is(err, core.ErrBadParam))
	_, err = DCPeriod(config.DefaultSettings(), wave(33))
	assert.NoError(t, err)
}
