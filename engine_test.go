package gota

import (
	"bytes"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

func randOHLCV(n int) (open, high, low, close, volume []float64) {
	r := rand.New(rand.NewSource(17))
	open = make([]float64, n)
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)
	volume = make([]float64, n)
	price := 100.0
	for i := 0; i < n; i++ {
		open[i] = price
		price += r.Float64()*4 - 2
		close[i] = price
		high[i] = math.Max(open[i], close[i]) + r.Float64()
		low[i] = math.Min(open[i], close[i]) - r.Float64()
		volume[i] = 1000 + r.Float64()*500
	}
	return open, high, low, close, volume
}

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	require.NoError(t, err)
	return e
}

func TestEnginesHaveIndependentRegistries(t *testing.T) {
	_, _, _, c, _ := randOHLCV(100)
	a, b := newEngine(t), newEngine(t)
	require.NoError(t, a.SetUnstablePeriod(config.UnstRSI, 20))

	ra, err := a.RSI(c, 14)
	require.NoError(t, err)
	rb, err := b.RSI(c, 14)
	require.NoError(t, err)
	assert.Equal(t, 34, ra.Begin)
	assert.Equal(t, 14, rb.Begin)

	p, err := b.UnstablePeriod(config.UnstRSI)
	require.NoError(t, err)
	assert.Zero(t, p)
}

func TestErrnoTracksLastCall(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, core.Success, e.Errno())

	_, err := e.SMA([]float64{1, 2}, 5)
	require.Error(t, err)
	assert.Equal(t, core.BadParam, e.Errno())

	_, err = e.SMA([]float64{1, 2, 3, 4, 5}, 5)
	require.NoError(t, err)
	assert.Equal(t, core.Success, e.Errno())

	_, err = e.UnstablePeriod(config.UnstAll)
	assert.True(t, errors.Is(err, core.ErrUnknownFunction))
	assert.Equal(t, core.FuncNotFound, e.Errno())

	_, err = e.CDL(Pattern(0), nil, nil, nil, nil)
	assert.Equal(t, core.FuncNotFound, core.CodeOf(err))
}

func TestUnequalLengthsAreRejected(t *testing.T) {
	e := newEngine(t)
	o, h, l, c, v := randOHLCV(60)
	short := c[:59]

	calls := map[string]func() error{
		"ADX":    func() error { _, err := e.ADX(h, l, short, 14); return err },
		"ATR":    func() error { _, err := e.ATR(h, short, c, 14); return err },
		"MFI":    func() error { _, err := e.MFI(h, l, c, v[:59], 14); return err },
		"BOP":    func() error { _, err := e.BOP(o[:59], h, l, c); return err },
		"CORREL": func() error { _, err := e.Correl(c, short, 10); return err },
		"STOCH":  func() error { _, err := e.Stoch(h, l, short, DefaultStochParams()); return err },
		"SAR":    func() error { _, err := e.SAR(h, l[:59], 0.02, 0.2); return err },
		"CDL":    func() error { _, err := e.CDL(CDLDoji, o, h, l, short); return err },
		"ADD":    func() error { _, err := e.Add(c, short); return err },
	}
	for name, f := range calls {
		t.Run(name, func(t *testing.T) {
			err := f()
			assert.True(t, errors.Is(err, core.ErrBadParam), "%v", err)
			assert.Equal(t, core.BadParam, e.Errno())
		})
	}
}

func TestUnstablePeriodGrowsBeginMonotonically(t *testing.T) {
	_, h, l, c, _ := randOHLCV(200)
	e := newEngine(t)
	prevRSI, prevADX := -1, -1
	for _, u := range []int{0, 1, 5, 20, 50} {
		require.NoError(t, e.SetUnstablePeriod(config.UnstAll, u))
		rsi, err := e.RSI(c, 14)
		require.NoError(t, err)
		adx, err := e.ADX(h, l, c, 14)
		require.NoError(t, err)
		assert.Greater(t, rsi.Begin, prevRSI)
		assert.Greater(t, adx.Begin, prevADX)
		prevRSI, prevADX = rsi.Begin, adx.Begin
	}
}

func TestCompatChangesEMASeeding(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5, 6}
	e := newEngine(t)
	std, err := e.EMA(in, 3)
	require.NoError(t, err)

	require.NoError(t, e.SetCompat(CompatMetastock))
	assert.Equal(t, CompatMetastock, e.Compat())
	ms, err := e.EMA(in, 3)
	require.NoError(t, err)
	assert.NotEqual(t, std.Values, ms.Values)

	assert.Error(t, e.SetCompat(Compat(7)))
	assert.Equal(t, core.BadParam, e.Errno())
	assert.Equal(t, CompatMetastock, e.Compat())
}

func TestWithSettings(t *testing.T) {
	s := config.DefaultSettings().WithUnstable(config.UnstATR, 3)
	e := newEngine(t, WithSettings(s))
	p, err := e.UnstablePeriod(config.UnstATR)
	require.NoError(t, err)
	assert.Equal(t, 3, p)

	bad := config.DefaultSettings()
	bad.Unstable[config.UnstATR] = -1
	_, err = New(WithSettings(bad))
	assert.Error(t, err)
}

func TestLoggerRecordsRejectionsAndChanges(t *testing.T) {
	var buf bytes.Buffer
	e := newEngine(t, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	_, err := e.WMA([]float64{1}, 3)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"op":"WMA"`)
	assert.Contains(t, buf.String(), `"component":"gota"`)
	assert.Contains(t, buf.String(), "call rejected")

	buf.Reset()
	require.NoError(t, e.SetUnstablePeriod(config.UnstEMA, 4))
	assert.Contains(t, buf.String(), "unstable period changed")
	assert.Contains(t, buf.String(), `"function":"ema"`)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := newEngine(t, WithMetrics(reg))

	in := []float64{1, 2, 3, 4, 5}
	_, err := e.SMA(in, 3)
	require.NoError(t, err)
	_, err = e.SMA(in, 30)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(e.metrics.calls.WithLabelValues("SMA")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.errors.WithLabelValues("SMA", core.BadParam.String())))

	// A second engine cannot register the same collectors.
	_, err = New(WithMetrics(reg))
	assert.Error(t, err)
}

func TestMetricsBoundPatternLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := newEngine(t, WithMetrics(reg))
	o, h, l, c, _ := randOHLCV(60)

	_, err := e.CDL(CDLDoji, o, h, l, c)
	require.NoError(t, err)
	for _, p := range []Pattern{0, -5, 999, 1 << 20} {
		_, err = e.CDL(p, o, h, l, c)
		assert.Equal(t, core.FuncNotFound, core.CodeOf(err))
	}
	_, err = e.CDLPenetration(Pattern(1000), 0.3, o, h, l, c)
	assert.Equal(t, core.FuncNotFound, core.CodeOf(err))

	assert.Equal(t, 2, testutil.CollectAndCount(e.metrics.calls))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.metrics.calls.WithLabelValues("CDLDOJI")))
	assert.Equal(t, 5.0, testutil.ToFloat64(e.metrics.calls.WithLabelValues("CDL_UNKNOWN")))
	assert.Equal(t, 1, testutil.CollectAndCount(e.metrics.errors))
}

func TestCandleSettingsOption(t *testing.T) {
	s := DefaultCandleSettings()
	s[0].Period = -1
	_, err := New(WithCandleSettings(s))
	assert.Error(t, err)

	o, h, l, c, _ := randOHLCV(60)
	e := newEngine(t)
	r, err := e.CDLPenetration(CDLMorningStar, 0.4, o, h, l, c)
	require.NoError(t, err)
	assert.Equal(t, 12, r.Begin)
}

func TestDefaultEngineWrappers(t *testing.T) {
	require.NoError(t, SetUnstablePeriod(config.UnstKAMA, 2))
	p, err := GetUnstablePeriod(config.UnstKAMA)
	require.NoError(t, err)
	assert.Equal(t, 2, p)
	assert.Equal(t, core.Success, Errno())
	require.NoError(t, SetUnstablePeriod(config.UnstKAMA, 0))
	assert.Equal(t, CompatDefault, GetCompat())
}
