package trend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

func TestMidPoint(t *testing.T) {
	r, err := MidPoint([]float64{1, 3, 2, 5, 4}, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Begin)
	assert.Equal(t, []float64{2, 3.5, 3.5}, r.Valid())
}

func TestMidPrice(t *testing.T) {
	high := []float64{5, 6, 4, 8}
	low := []float64{1, 2, 3, 2}
	r, err := MidPrice(high, low, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, 4, 5}, r.Valid())

	_, err = MidPrice(high, low[:3], 2)
	assert.ErrorIs(t, err, core.ErrBadParam)
}

func TestHTTrendline(t *testing.T) {
	cfg := config.DefaultSettings()
	in := randVals(150)
	r, err := HTTrendline(cfg, in)
	require.NoError(t, err)
	assert.Equal(t, 63, r.Begin)
	for i := r.Begin; i < len(in); i++ {
		if math.IsNaN(r.Values[i]) || r.Values[i] < 50 || r.Values[i] > 150 {
			t.Fatalf("index %d out of input range: %v", i, r.Values[i])
		}
	}

	cfg = cfg.WithUnstable(config.UnstHTTrendline, 10)
	r, err = HTTrendline(cfg, in)
	require.NoError(t, err)
	assert.Equal(t, 73, r.Begin)

	_, err = HTTrendline(cfg, in[:73])
	assert.ErrorIs(t, err, core.ErrBadParam)
}
