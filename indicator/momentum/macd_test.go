package momentum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/trend"
)

func TestMACDConstantInput(t *testing.T) {
	r, err := MACD(config.DefaultSettings(), constant(60, 10), DefaultMACDParams())
	require.NoError(t, err)
	assert.Equal(t, 33, r.Begin)
	for i := r.Begin; i < 60; i++ {
		assert.InDelta(t, 0, r.MACD[i], eps)
		assert.InDelta(t, 0, r.Signal[i], eps)
		assert.InDelta(t, 0, r.Hist[i], eps)
	}
}

func TestMACDExtWithEMAsMatchesMACD(t *testing.T) {
	cfg := config.DefaultSettings()
	in := randVals(150)
	want, err := MACD(cfg, in, DefaultMACDParams())
	require.NoError(t, err)

	p := DefaultMACDParams()
	p.FastMA, p.SlowMA, p.SignalMA = core.EMA, core.EMA, core.EMA
	got, err := MACDExt(cfg, in, p)
	require.NoError(t, err)
	assert.Equal(t, want.Begin, got.Begin)
	assert.InDeltaSlice(t, want.MACD, got.MACD, 1e-12)
	assert.InDeltaSlice(t, want.Signal, got.Signal, 1e-12)
	assert.InDeltaSlice(t, want.Hist, got.Hist, 1e-12)
}

func TestMACDSwapsPeriods(t *testing.T) {
	cfg := config.DefaultSettings()
	in := randVals(100)
	a, err := MACD(cfg, in, MACDParams{FastPeriod: 26, SlowPeriod: 12, SignalPeriod: 9})
	require.NoError(t, err)
	b, err := MACD(cfg, in, DefaultMACDParams())
	require.NoError(t, err)
	assert.Equal(t, b.MACD, a.MACD)
}

func TestMACDFix(t *testing.T) {
	cfg := config.DefaultSettings()
	in := randVals(100)
	r, err := MACDFix(cfg, in, DefaultSignalPeriod)
	require.NoError(t, err)
	assert.Equal(t, MACDFixLookback(cfg, 9), r.Begin)
	for i := r.Begin; i < len(in); i++ {
		assert.InDelta(t, r.MACD[i]-r.Signal[i], r.Hist[i], eps)
	}
	_, err = MACDFix(cfg, in, 0)
	assert.ErrorIs(t, err, core.ErrBadParam)
}

func TestMACDExtLookbackUsesLargestLine(t *testing.T) {
	cfg := config.DefaultSettings()
	p := MACDParams{FastPeriod: 12, FastMA: core.T3, SlowPeriod: 26, SlowMA: core.SMA, SignalPeriod: 9, SignalMA: core.WMA}
	// T3(12) looks back 66 bars, more than SMA(26).
	assert.Equal(t, 66+8, MACDExtLookback(cfg, p))
	r, err := MACDExt(cfg, randVals(200), p)
	require.NoError(t, err)
	assert.Equal(t, 74, r.Begin)
}

func TestAPOAndPPO(t *testing.T) {
	cfg := config.DefaultSettings()
	in := randVals(80)
	apo, err := APO(cfg, in, DefaultPriceOscParams())
	require.NoError(t, err)
	assert.Equal(t, 25, apo.Begin)
	fast, err := trend.SMA(in, 12)
	require.NoError(t, err)
	slow, err := trend.SMA(in, 26)
	require.NoError(t, err)
	for i := apo.Begin; i < len(in); i++ {
		assert.InDelta(t, fast.Values[i]-slow.Values[i], apo.Values[i], 1e-9)
	}

	ppo, err := PPO(cfg, constant(40, 3), DefaultPriceOscParams())
	require.NoError(t, err)
	for _, v := range ppo.Valid() {
		assert.InDelta(t, 0, v, eps)
	}

	_, err = APO(cfg, in, PriceOscParams{FastPeriod: 12, SlowPeriod: 26, MA: core.MAType(42)})
	assert.ErrorIs(t, err, core.ErrBadParam)
}
