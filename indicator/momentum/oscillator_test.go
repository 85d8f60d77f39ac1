package momentum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

func TestAroon(t *testing.T) {
	bars := []float64{1, 2, 3, 2, 1}
	r, err := Aroon(bars, bars, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Begin)
	assert.InDeltaSlice(t, []float64{100, 50, 0}, r.Up[2:], eps)
	assert.InDeltaSlice(t, []float64{0, 100, 100}, r.Down[2:], eps)

	osc, err := AroonOsc(bars, bars, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{100, -50, -100}, osc.Valid(), eps)
}

func TestRateOfChange(t *testing.T) {
	in := []float64{10, 11, 0, 9}
	cases := []struct {
		name string
		fn   func([]float64, int) (core.Result, error)
		want []float64
	}{
		{"MOM", MOM, []float64{1, -11, 9}},
		{"ROC", ROC, []float64{10, -100, 0}},
		{"ROCP", ROCP, []float64{0.1, -1, 0}},
		{"ROCR", ROCR, []float64{1.1, 0, 0}},
		{"ROCR100", ROCR100, []float64{110, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.fn(in, 1)
			require.NoError(t, err)
			assert.Equal(t, 1, r.Begin)
			assert.InDeltaSlice(t, tc.want, r.Valid(), 1e-12)
		})
	}
	_, err := MOM(in, 0)
	assert.ErrorIs(t, err, core.ErrBadParam)
}

func TestBOP(t *testing.T) {
	open := []float64{1, 5, 3}
	high := []float64{4, 6, 3}
	low := []float64{0, 1, 3}
	close := []float64{3, 2, 3}
	r, err := BOP(open, high, low, close)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Begin)
	assert.InDeltaSlice(t, []float64{0.5, -0.6, 0}, r.Values, eps)
}

func TestCCI(t *testing.T) {
	flat := constant(30, 7)
	r, err := CCI(flat, flat, flat, DefaultCCIPeriod)
	require.NoError(t, err)
	assert.Equal(t, 13, r.Begin)
	for _, v := range r.Valid() {
		assert.Zero(t, v)
	}

	// Typical prices 1,2,3: mean 2, mean deviation 2/3.
	tp := []float64{1, 2, 3}
	r, err = CCI(tp, tp, tp, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1/(0.015*(2.0/3)), r.Values[2], 1e-9)
}

func TestTRIX(t *testing.T) {
	cfg := config.DefaultSettings()
	r, err := TRIX(cfg, constant(120, 5), DefaultTRIXPeriod)
	require.NoError(t, err)
	assert.Equal(t, 88, r.Begin)
	for _, v := range r.Valid() {
		assert.InDelta(t, 0, v, eps)
	}
	rising := make([]float64, 120)
	for i := range rising {
		rising[i] = 100 + float64(i)
	}
	r, err = TRIX(cfg, rising, 10)
	require.NoError(t, err)
	for _, v := range r.Valid() {
		assert.Greater(t, v, 0.0)
	}
}

func TestULTOSC(t *testing.T) {
	high, low, _ := uptrend(60)
	r, err := ULTOSC(high, low, high, DefaultULTOSCPeriod1, DefaultULTOSCPeriod2, DefaultULTOSCPeriod3)
	require.NoError(t, err)
	assert.Equal(t, 28, r.Begin)
	for _, v := range r.Valid() {
		assert.InDelta(t, 100, v, 1e-9)
	}

	_, high, low, close := randOHLC(100)
	a, err := ULTOSC(high, low, close, 7, 14, 28)
	require.NoError(t, err)
	b, err := ULTOSC(high, low, close, 28, 7, 14)
	require.NoError(t, err)
	assert.Equal(t, a.Values, b.Values)
	assert.True(t, inRange(a.Valid(), 0, 100))
}
