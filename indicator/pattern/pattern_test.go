package pattern

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evdnx/gota/indicator/core"
)

type bars struct{ o, h, l, c []float64 }

func (b *bars) add(o, h, l, c float64) {
	b.o = append(b.o, o)
	b.h = append(b.h, h)
	b.l = append(b.l, l)
	b.c = append(b.c, c)
}

// base appends n white candles with a unit body and a two point range.
func base(n int) *bars {
	b := &bars{}
	for i := 0; i < n; i++ {
		b.add(10, 11.5, 9.5, 11)
	}
	return b
}

func randBars(n int) *bars {
	r := rand.New(rand.NewSource(5))
	b := &bars{}
	price := 100.0
	for i := 0; i < n; i++ {
		o := price
		price += r.Float64()*4 - 2
		b.add(o, math.Max(o, price)+r.Float64(), math.Min(o, price)-r.Float64(), price)
	}
	return b
}

func TestRegistryIsComplete(t *testing.T) {
	all := All()
	require.Len(t, all, 61)
	names := map[string]bool{}
	for i, p := range all {
		assert.Equal(t, ID(i+1), p.ID)
		assert.False(t, names[p.Name], "duplicate %s", p.Name)
		names[p.Name] = true
		assert.NotEmpty(t, p.Signals)
	}
	p, ok := ByName("CDLDOJI")
	require.True(t, ok)
	assert.Equal(t, Doji, p.ID)
	assert.Equal(t, "CDLENGULFING", Engulfing.String())
}

func TestLookbacks(t *testing.T) {
	r := NewRecognizer()
	cases := map[ID]int{
		Doji:                 10,
		Engulfing:            2,
		ThreeOutside:         3,
		ThreeBlackCrows:      13,
		MatHold:              14,
		Hammer:               11,
		Hikkake:              5,
		HikkakeMod:           10,
		XSideGapThreeMethods: 2,
	}
	for id, want := range cases {
		got, err := r.Lookback(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, id.String())
	}
}

func TestDoji(t *testing.T) {
	b := base(10)
	b.add(10, 11, 9, 10.05)
	res, err := Detect(Doji, b.o, b.h, b.l, b.c)
	require.NoError(t, err)
	assert.Equal(t, 10, res.Begin)
	assert.Equal(t, 100, res.Values[10])
}

func TestMarubozu(t *testing.T) {
	b := base(10)
	b.add(10, 12, 10, 12)
	b.add(12, 12, 10, 10)
	res, err := Detect(Marubozu, b.o, b.h, b.l, b.c)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Values[10])
	assert.Equal(t, -100, res.Values[11])
}

func TestEngulfing(t *testing.T) {
	b := &bars{}
	b.add(10, 11, 9, 10)
	b.add(11, 11.2, 9.8, 10)
	b.add(9.5, 11.8, 9.4, 11.5)
	b.add(11.6, 11.8, 9, 9.2)
	res, err := Detect(Engulfing, b.o, b.h, b.l, b.c)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 100, -100}, res.Values)
}

func TestHikkakeConfirmation(t *testing.T) {
	b := &bars{}
	for k := 0; k < 4; k++ {
		h, l := 10+float64(k), 5+float64(k)
		b.add((h+l)/2, h, l, (h+l)/2)
	}
	b.add(10.5, 15, 6, 10.5)   // mother bar
	b.add(10.5, 14, 7, 10.5)   // inside bar
	b.add(9.75, 13, 6.5, 9.75) // false breakout lower
	b.add(14, 16, 12, 15)      // close above the inside bar high
	res, err := Detect(Hikkake, b.o, b.h, b.l, b.c)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 100, 200}, res.Values)
}

func TestSignalsStayInDomain(t *testing.T) {
	b := randBars(400)
	r := NewRecognizer()
	for _, p := range All() {
		res, err := r.Detect(p.ID, b.o, b.h, b.l, b.c)
		require.NoError(t, err, p.Name)
		require.Len(t, res.Values, 400)
		allowed := map[int]bool{}
		for _, s := range p.Signals {
			allowed[s] = true
		}
		for i, v := range res.Values {
			if i < res.Begin {
				require.Zero(t, v, "%s index %d", p.Name, i)
				continue
			}
			require.True(t, allowed[v], "%s index %d: unexpected signal %d", p.Name, i, v)
		}
	}
}

func TestPenetration(t *testing.T) {
	b := randBars(50)
	r := NewRecognizer()
	_, err := r.DetectPenetration(MorningStar, 0.5, b.o, b.h, b.l, b.c)
	require.NoError(t, err)

	_, err = r.DetectPenetration(MorningStar, -1, b.o, b.h, b.l, b.c)
	assert.True(t, errors.Is(err, core.ErrBadParam))

	_, err = r.DetectPenetration(Doji, 0.5, b.o, b.h, b.l, b.c)
	assert.True(t, errors.Is(err, core.ErrBadParam))
}

func TestDetectErrors(t *testing.T) {
	b := base(5)
	_, err := Detect(Doji, b.o, b.h, b.l, b.c)
	assert.True(t, errors.Is(err, core.ErrBadParam))

	_, err = Detect(ID(999), b.o, b.h, b.l, b.c)
	assert.True(t, errors.Is(err, core.ErrUnknownFunction))

	b = base(20)
	_, err = Detect(Doji, b.o, b.h[:19], b.l, b.c)
	assert.True(t, errors.Is(err, core.ErrBadParam))

	bad := NewRecognizer()
	bad.Settings[Near].Period = -1
	_, err = bad.Detect(Doji, b.o, b.h, b.l, b.c)
	assert.True(t, errors.Is(err, core.ErrBadParam))
}
