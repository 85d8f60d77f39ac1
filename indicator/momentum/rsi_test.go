package momentum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

func TestRSISaturatesOnRisingInput(t *testing.T) {
	in := make([]float64, 40)
	for i := range in {
		in[i] = float64(i)
	}
	r, err := RSI(config.DefaultSettings(), in, DefaultRSIPeriod)
	require.NoError(t, err)
	assert.Equal(t, 14, r.Begin)
	for i, v := range r.Valid() {
		if !approxEqual(v, 100) {
			t.Fatalf("index %d: got %v, want 100", r.Begin+i, v)
		}
	}
}

func TestFlatInputIsZero(t *testing.T) {
	cfg := config.DefaultSettings()
	flat := constant(30, 5)
	for _, c := range []struct {
		name string
		fn   func(config.Settings, []float64, int) (core.Result, error)
	}{
		{"RSI", RSI},
		{"CMO", CMO},
	} {
		for _, compat := range []config.Compat{config.CompatDefault, config.CompatMetastock} {
			r, err := c.fn(cfg.WithCompat(compat), flat, 14)
			require.NoError(t, err, c.name)
			require.NotEmpty(t, r.Valid(), c.name)
			for i, v := range r.Valid() {
				assert.Zero(t, v, "%s %s index %d", c.name, compat, r.Begin+i)
			}
		}
	}

	// A single rise after the flat stretch is all gain.
	rising := append(constant(20, 5), 6)
	r, err := RSI(cfg, rising, 14)
	require.NoError(t, err)
	assert.InDelta(t, 100, r.Values[20], eps)
}

func TestRSIAndCMOHandComputed(t *testing.T) {
	in := []float64{1, 2, 1, 2, 1}
	cfg := config.DefaultSettings()

	rsi, err := RSI(cfg, in, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, rsi.Begin)
	assert.InDeltaSlice(t, []float64{50, 75, 37.5}, rsi.Valid(), eps)

	cmo, err := CMO(cfg, in, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 50, -25}, cmo.Valid(), eps)
}

func TestRSIMetastock(t *testing.T) {
	cfg := config.DefaultSettings().WithCompat(config.CompatMetastock)
	in := []float64{1, 2, 1, 2, 1}
	r, err := RSI(cfg, in, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Begin)
	// The leading value sees a zero change then +1.
	assert.InDelta(t, 100, r.Values[1], eps)
	assert.InDeltaSlice(t, []float64{50, 75, 37.5}, r.Values[2:], eps)

	r, err = RSI(cfg, in[:2], 2)
	require.NoError(t, err)
	assert.InDelta(t, 100, r.Values[1], eps)
}

func TestRSIUnstablePeriod(t *testing.T) {
	in := randVals(200)
	base, err := RSI(config.DefaultSettings(), in, 14)
	require.NoError(t, err)
	cfg := config.DefaultSettings().WithUnstable(config.UnstRSI, 50)
	r, err := RSI(cfg, in, 14)
	require.NoError(t, err)
	assert.Equal(t, 64, r.Begin)
	assert.Equal(t, base.Values[64:], r.Values[64:])
	assert.True(t, inRange(r.Valid(), 0, 100))
}

func TestRSIRejectsShortInput(t *testing.T) {
	_, err := RSI(config.DefaultSettings(), randVals(14), 14)
	assert.ErrorIs(t, err, core.ErrBadParam)
	_, err = CMO(config.DefaultSettings(), randVals(30), 1)
	assert.ErrorIs(t, err, core.ErrBadParam)
}
