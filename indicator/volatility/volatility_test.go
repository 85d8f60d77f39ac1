package volatility

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

const eps = 1e-9

func approxEqual(a, b float64) bool { return math.Abs(a-b) <= eps }

// uptrend has every bar two points wide and closing one point higher.
func uptrend(n int) (high, low, close []float64) {
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)
	for i := 0; i < n; i++ {
		high[i] = float64(i) + 12
		low[i] = float64(i) + 10
		close[i] = float64(i) + 11
	}
	return high, low, close
}

func TestTRange(t *testing.T) {
	high := []float64{2, 3, 5}
	low := []float64{1, 2, 4}
	close := []float64{1.5, 2.5, 4.5}
	r, err := TRange(high, low, close)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Begin)
	assert.True(t, approxEqual(r.Values[1], 1.5))
	assert.True(t, approxEqual(r.Values[2], 2.5))
}

func TestATRConstantRange(t *testing.T) {
	cfg := config.DefaultSettings()
	h, l, c := uptrend(40)
	r, err := ATR(cfg, h, l, c, DefaultATRPeriod)
	require.NoError(t, err)
	assert.Equal(t, 14, r.Begin)
	for i, v := range r.Valid() {
		if !approxEqual(v, 2) {
			t.Fatalf("index %d: got %v, want 2", r.Begin+i, v)
		}
	}

	nr, err := NATR(cfg, h, l, c, DefaultATRPeriod)
	require.NoError(t, err)
	for i := nr.Begin; i < len(c); i++ {
		assert.True(t, approxEqual(nr.Values[i], 200/c[i]))
	}
}

func TestATRPeriodOneIsTrueRange(t *testing.T) {
	cfg := config.DefaultSettings()
	h, l, c := uptrend(10)
	a, err := ATR(cfg, h, l, c, 1)
	require.NoError(t, err)
	tr, err := TRange(h, l, c)
	require.NoError(t, err)
	assert.Equal(t, tr, a)
}

func TestATRUnstablePeriod(t *testing.T) {
	h, l, c := uptrend(40)
	cfg := config.DefaultSettings().WithUnstable(config.UnstATR, 10)
	r, err := ATR(cfg, h, l, c, 14)
	require.NoError(t, err)
	assert.Equal(t, 24, r.Begin)

	_, err = ATR(cfg, h[:24], l[:24], c[:24], 14)
	assert.True(t, errors.Is(err, core.ErrBadParam))
}

func TestBBandsHandComputed(t *testing.T) {
	cfg := config.DefaultSettings()
	in := []float64{1, 2, 3, 4, 5}
	r, err := BBands(cfg, in, DefaultBBandsParams())
	require.NoError(t, err)
	assert.Equal(t, 4, r.Begin)
	assert.True(t, approxEqual(r.Middle[4], 3))
	assert.True(t, approxEqual(r.Upper[4], 3+2*math.Sqrt2))
	assert.True(t, approxEqual(r.Lower[4], 3-2*math.Sqrt2))

	// An EMA seeded with the SMA gives the same first band.
	p := DefaultBBandsParams()
	p.MA = core.EMA
	e, err := BBands(cfg, in, p)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Begin)
	assert.True(t, approxEqual(e.Upper[4], r.Upper[4]))
}

func TestBBandsOrdering(t *testing.T) {
	cfg := config.DefaultSettings()
	_, _, c := uptrend(50)
	for i := range c {
		c[i] += math.Sin(float64(i))
	}
	for _, ma := range []core.MAType{core.SMA, core.EMA, core.WMA, core.KAMA} {
		p := BBandsParams{Period: 10, NbDevUp: 2, NbDevDn: 1, MA: ma}
		r, err := BBands(cfg, c, p)
		require.NoError(t, err)
		assert.Equal(t, BBandsLookback(cfg, p), r.Begin)
		for i := r.Begin; i < len(c); i++ {
			assert.GreaterOrEqual(t, r.Upper[i], r.Middle[i])
			assert.LessOrEqual(t, r.Lower[i], r.Middle[i])
		}
	}
}

func TestBBandsRejectsBadParams(t *testing.T) {
	cfg := config.DefaultSettings()
	_, _, c := uptrend(20)
	_, err := BBands(cfg, c, BBandsParams{Period: 1, NbDevUp: 2, NbDevDn: 2})
	assert.True(t, errors.Is(err, core.ErrBadParam))
	_, err = BBands(cfg, c, BBandsParams{Period: 5, NbDevUp: math.NaN(), NbDevDn: 2})
	assert.True(t, errors.Is(err, core.ErrBadParam))
	_, err = BBands(cfg, c, BBandsParams{Period: 5, NbDevUp: 2, NbDevDn: 2, MA: core.MAType(42)})
	assert.True(t, errors.Is(err, core.ErrBadParam))
}
