package trend

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

var allMATypes = []core.MAType{
	core.SMA, core.EMA, core.WMA, core.DEMA, core.TEMA,
	core.TRIMA, core.KAMA, core.MAMA, core.T3,
}

func TestSMAGroundTruth(t *testing.T) {
	r, err := SMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Begin)
	assert.Equal(t, []float64{2, 3, 4}, r.Valid())
}

func TestEMASeeding(t *testing.T) {
	cfg := config.DefaultSettings()

	r, err := EMA(cfg, constant(6, 1), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Begin)
	for i, v := range r.Valid() {
		if !approxEqual(v, 1) {
			t.Fatalf("index %d: got %v, want 1", i, v)
		}
	}

	r, err = EMA(cfg, ramp(10), 3)
	require.NoError(t, err)
	for i := r.Begin; i < 10; i++ {
		if !approxEqual(r.Values[i], float64(i)) {
			t.Fatalf("index %d: got %v, want %d", i, r.Values[i], i)
		}
	}
}

func TestEMAMetastockSeedsWithFirstValue(t *testing.T) {
	cfg := config.DefaultSettings().WithCompat(config.CompatMetastock)
	r, err := EMA(cfg, ramp(10), 3)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Begin)
	assert.InDelta(t, 2.25, r.Values[2], eps)
	assert.InDelta(t, 3.125, r.Values[3], eps)
}

func TestWMA(t *testing.T) {
	r, err := WMA([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	want := []float64{14.0 / 6, 20.0 / 6, 26.0 / 6}
	assert.InDeltaSlice(t, want, r.Valid(), eps)
}

func TestTRIMAMatchesTriangularWeights(t *testing.T) {
	in := randVals(60)
	for _, period := range []int{2, 3, 4, 5, 10, 11} {
		r, err := TRIMA(in, period)
		require.NoError(t, err)
		require.Equal(t, period-1, r.Begin)
		for i := r.Begin; i < len(in); i++ {
			var num, den float64
			for j := 0; j < period; j++ {
				w := math.Min(float64(j+1), float64(period-j))
				num += w * in[i-period+1+j]
				den += w
			}
			if math.Abs(r.Values[i]-num/den) > 1e-8 {
				t.Fatalf("period %d index %d: got %v, want %v", period, i, r.Values[i], num/den)
			}
		}
	}
}

func TestConstantInputIsFixedPoint(t *testing.T) {
	cfg := config.DefaultSettings()
	in := constant(200, 42)
	for _, mt := range allMATypes {
		if mt == core.MAMA {
			continue
		}
		r, err := MA(cfg, in, 5, mt)
		require.NoError(t, err, mt.String())
		for i := r.Begin; i < len(in); i++ {
			if math.Abs(r.Values[i]-42) > 1e-9 {
				t.Fatalf("%s index %d: got %v", mt, i, r.Values[i])
			}
		}
	}
}

func TestMABeginMatchesLookback(t *testing.T) {
	in := randVals(400)
	settings := []config.Settings{
		config.DefaultSettings(),
		config.DefaultSettings().WithUnstable(config.UnstAll, 7),
		config.DefaultSettings().WithCompat(config.CompatMetastock),
	}
	for _, cfg := range settings {
		for _, mt := range allMATypes {
			for _, period := range []int{1, 2, 9, 30} {
				r, err := MA(cfg, in, period, mt)
				require.NoError(t, err)
				assert.Equal(t, MALookback(cfg, period, mt), r.Begin, "%s/%d", mt, period)
				assert.Len(t, r.Values, len(in))
				for i, v := range r.Valid() {
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Fatalf("%s/%d: non-finite value at %d", mt, period, r.Begin+i)
					}
				}
			}
		}
	}
}

func TestMAPeriodOneIsIdentity(t *testing.T) {
	in := randVals(20)
	r, err := MA(config.DefaultSettings(), in, 1, core.EMA)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Begin)
	assert.Equal(t, in, r.Values)
}

func TestMARejectsBadParams(t *testing.T) {
	cfg := config.DefaultSettings()
	cases := []struct {
		name   string
		in     []float64
		period int
		mt     core.MAType
	}{
		{"period zero", randVals(10), 0, core.SMA},
		{"period too large", randVals(10), core.MaxPeriod + 1, core.SMA},
		{"unknown type", randVals(10), 3, core.MAType(9)},
		{"too short", randVals(3), 5, core.SMA},
		{"empty", nil, 3, core.SMA},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := MA(cfg, tc.in, tc.period, tc.mt)
			require.Error(t, err)
			assert.True(t, errors.Is(err, core.ErrBadParam))
		})
	}
}

func TestUnstablePeriodOnlyGrowsBegin(t *testing.T) {
	in := randVals(300)
	prev := -1
	for _, u := range []int{0, 1, 5, 20} {
		cfg := config.DefaultSettings().WithUnstable(config.UnstEMA, u)
		r, err := EMA(cfg, in, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.Begin, prev)
		prev = r.Begin
	}
}

func TestUnstablePeriodConvergesToSameTail(t *testing.T) {
	in := randVals(500)
	a, err := EMA(config.DefaultSettings(), in, 10)
	require.NoError(t, err)
	b, err := EMA(config.DefaultSettings().WithUnstable(config.UnstEMA, 100), in, 10)
	require.NoError(t, err)
	// Both seed from different windows but converge well before the end.
	assert.InDelta(t, a.Values[499], b.Values[499], 1e-6)
}

func TestDEMAAndTEMAOnRamp(t *testing.T) {
	cfg := config.DefaultSettings()
	in := ramp(60)
	d, err := DEMA(cfg, in, 5)
	require.NoError(t, err)
	assert.Equal(t, 8, d.Begin)
	tm, err := TEMA(cfg, in, 5)
	require.NoError(t, err)
	assert.Equal(t, 12, tm.Begin)
	// Both remove the lag of a plain EMA on a linear trend.
	for i := tm.Begin; i < len(in); i++ {
		assert.InDelta(t, in[i], d.Values[i], 1e-9)
		assert.InDelta(t, in[i], tm.Values[i], 1e-9)
	}
}

func TestKAMALookbackAndTrend(t *testing.T) {
	cfg := config.DefaultSettings()
	r, err := KAMA(cfg, ramp(40), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, r.Begin)
	for i := r.Begin + 1; i < 40; i++ {
		assert.Greater(t, r.Values[i], r.Values[i-1])
	}
}

func TestT3Params(t *testing.T) {
	cfg := config.DefaultSettings()
	_, err := T3(cfg, randVals(100), 5, 1.5)
	assert.ErrorIs(t, err, core.ErrBadParam)
	r, err := T3(cfg, randVals(100), 5, DefaultT3VFactor)
	require.NoError(t, err)
	assert.Equal(t, 24, r.Begin)
}

func TestMAMA(t *testing.T) {
	cfg := config.DefaultSettings()
	in := randVals(200)
	r, err := MAMA(cfg, in, DefaultMAMAFast, DefaultMAMASlow)
	require.NoError(t, err)
	assert.Equal(t, 32, r.Begin)
	for i := r.Begin; i < len(in); i++ {
		assert.False(t, math.IsNaN(r.MAMA[i]) || math.IsNaN(r.FAMA[i]))
		assert.True(t, r.MAMA[i] > 0 && r.FAMA[i] > 0)
	}

	_, err = MAMA(cfg, in, 1.2, DefaultMAMASlow)
	assert.ErrorIs(t, err, core.ErrBadParam)

	viaMA, err := MA(cfg, in, 30, core.MAMA)
	require.NoError(t, err)
	assert.Equal(t, r.MAMA, viaMA.Values)
}

func TestMAVPSinglePeriodMatchesMA(t *testing.T) {
	cfg := config.DefaultSettings()
	in := randVals(80)
	periods := constant(80, 5)
	r, err := MAVP(cfg, in, periods, 2, 10, core.SMA)
	require.NoError(t, err)
	assert.Equal(t, 9, r.Begin)
	sma, err := SMA(in, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, sma.Values[9:], r.Values[9:], 1e-9)

	_, err = MAVP(cfg, in, periods[:10], 2, 10, core.SMA)
	assert.ErrorIs(t, err, core.ErrBadParam)
}

func TestMAVPClampsPeriods(t *testing.T) {
	cfg := config.DefaultSettings()
	in := randVals(50)
	periods := make([]float64, 50)
	for i := range periods {
		periods[i] = float64(i % 20)
	}
	r, err := MAVP(cfg, in, periods, 3, 8, core.SMA)
	require.NoError(t, err)
	for i := r.Begin; i < len(in); i++ {
		p := int(core.Clamp(periods[i], 3, 8))
		var sum float64
		for j := i - p + 1; j <= i; j++ {
			sum += in[j]
		}
		assert.InDelta(t, sum/float64(p), r.Values[i], 1e-9, "index %d", i)
	}
}
