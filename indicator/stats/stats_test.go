package stats

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/indicator/core"
)

const eps = 1e-9

func approxEqual(a, b float64) bool { return math.Abs(a-b) <= eps }

func ramp(n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i)
	}
	return vals
}

func randVals(n int) []float64 {
	r := rand.New(rand.NewSource(3))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 50 + r.Float64()*100
	}
	return vals
}

func TestVarAndStdDev(t *testing.T) {
	in := []float64{1, 2, 3, 4, 5}
	v, err := Var(in, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, v.Begin)
	assert.True(t, approxEqual(v.Values[4], 2))

	v, err = Var(in, 5, 2)
	require.NoError(t, err)
	assert.True(t, approxEqual(v.Values[4], 4))

	sd, err := StdDev(in, 5, 1)
	require.NoError(t, err)
	assert.True(t, approxEqual(sd.Values[4], math.Sqrt2))

	sd, err = StdDev([]float64{3, 3, 3}, 3, 1)
	require.NoError(t, err)
	assert.Zero(t, sd.Values[2])

	_, err = StdDev(in, 1, 1)
	assert.True(t, errors.Is(err, core.ErrBadParam))
}

func TestCorrel(t *testing.T) {
	x := ramp(20)
	up := make([]float64, 20)
	down := make([]float64, 20)
	for i, v := range x {
		up[i] = 2*v + 1
		down[i] = -v
	}
	tests := []struct {
		name string
		y    []float64
		want float64
	}{
		{"linear", up, 1},
		{"inverse", down, -1},
		{"flat", make([]float64, 20), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Correl(x, tt.y, 10)
			require.NoError(t, err)
			assert.Equal(t, 9, r.Begin)
			for _, v := range r.Valid() {
				assert.InDelta(t, tt.want, v, 1e-7)
			}
		})
	}
}

func TestBetaOfSeriesWithItself(t *testing.T) {
	x := randVals(60)
	r, err := Beta(x, x, DefaultBetaPeriod)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Begin)
	for _, v := range r.Valid() {
		assert.InDelta(t, 1, v, 1e-7)
	}

	_, err = Beta(x, x[:59], 5)
	assert.True(t, errors.Is(err, core.ErrBadParam))
}

func TestLinearRegressionOnRamp(t *testing.T) {
	in := ramp(30)
	const p = DefaultLinearRegPeriod
	lr, err := LinearReg(in, p)
	require.NoError(t, err)
	slope, err := LinearRegSlope(in, p)
	require.NoError(t, err)
	icpt, err := LinearRegIntercept(in, p)
	require.NoError(t, err)
	angle, err := LinearRegAngle(in, p)
	require.NoError(t, err)
	tsf, err := TSF(in, p)
	require.NoError(t, err)

	assert.Equal(t, 13, lr.Begin)
	for i := lr.Begin; i < len(in); i++ {
		x := float64(i)
		assert.InDelta(t, x, lr.Values[i], 1e-9)
		assert.InDelta(t, 1, slope.Values[i], 1e-9)
		assert.InDelta(t, x-13, icpt.Values[i], 1e-9)
		assert.InDelta(t, 45, angle.Values[i], 1e-9)
		assert.InDelta(t, x+1, tsf.Values[i], 1e-9)
	}
}

func TestSum(t *testing.T) {
	r, err := Sum([]float64{1, 2, 3, 4, 5}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 6, 9, 12}, r.Values)
}

func TestWindowExtremes(t *testing.T) {
	in := []float64{1, 3, 3, 2, 1}
	mx, err := MaxIndex(in, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1, 2}, mx.Values)

	mn, err := MinIndex(in, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 3, 4}, mn.Values)

	mm, err := MinMax(in, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 3, 3, 3}, mm.Max)
	assert.Equal(t, []float64{0, 0, 1, 2, 1}, mm.Min)

	// A new bar equal to the current extreme takes over.
	mx, err = MaxIndex([]float64{1, 3, 2, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, mx.Values[3])
}

func TestWindowMatchesBruteForce(t *testing.T) {
	in := randVals(200)
	const p = 7
	mx, err := Max(in, p)
	require.NoError(t, err)
	mn, err := Min(in, p)
	require.NoError(t, err)
	idx, err := MinMaxIndex(in, p)
	require.NoError(t, err)
	for i := p - 1; i < len(in); i++ {
		hi, lo := in[i], in[i]
		for j := i - p + 1; j <= i; j++ {
			hi = math.Max(hi, in[j])
			lo = math.Min(lo, in[j])
		}
		assert.Equal(t, hi, mx.Values[i])
		assert.Equal(t, lo, mn.Values[i])
		assert.Equal(t, hi, in[idx.Max[i]])
		assert.Equal(t, lo, in[idx.Min[i]])
	}
}
