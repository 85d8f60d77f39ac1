package pattern

import "math"

// candles wraps aligned OHLC series with shape helpers and prefix sums of
// each range type, so threshold averages cost O(1).
type candles struct {
	o, h, l, c []float64
	settings   CandleSettings
	prefix     [3][]float64
}

func newCandles(open, high, low, close []float64, s CandleSettings) *candles {
	cd := &candles{o: open, h: high, l: low, c: close, settings: s}
	n := len(close)
	for rt := range cd.prefix {
		p := make([]float64, n+1)
		for i := 0; i < n; i++ {
			p[i+1] = p[i] + cd.rangeOf(RangeType(rt), i)
		}
		cd.prefix[rt] = p
	}
	return cd
}

func (cd *candles) body(i int) float64   { return math.Abs(cd.c[i] - cd.o[i]) }
func (cd *candles) hl(i int) float64     { return cd.h[i] - cd.l[i] }
func (cd *candles) top(i int) float64    { return math.Max(cd.c[i], cd.o[i]) }
func (cd *candles) bottom(i int) float64 { return math.Min(cd.c[i], cd.o[i]) }
func (cd *candles) upper(i int) float64  { return cd.h[i] - cd.top(i) }
func (cd *candles) lower(i int) float64  { return cd.bottom(i) - cd.l[i] }

// color is 1 for a white (rising or unchanged) candle and -1 for black.
func (cd *candles) color(i int) int {
	if cd.c[i] >= cd.o[i] {
		return 1
	}
	return -1
}

func (cd *candles) white(i int) bool { return cd.color(i) == 1 }
func (cd *candles) black(i int) bool { return cd.color(i) == -1 }

func (cd *candles) rangeOf(rt RangeType, i int) float64 {
	switch rt {
	case RealBody:
		return cd.body(i)
	case HighLow:
		return cd.hl(i)
	default:
		return cd.upper(i) + cd.lower(i)
	}
}

// avg is the threshold of kind k for the candle at i, averaged over the
// Period candles before it.
func (cd *candles) avg(k Kind, i int) float64 {
	s := cd.settings[k]
	var v float64
	if s.Period > 0 {
		p := cd.prefix[s.Range]
		v = (p[i] - p[i-s.Period]) / float64(s.Period)
	} else {
		v = cd.rangeOf(s.Range, i)
	}
	if s.Range == Shadows {
		v /= 2
	}
	return s.Factor * v
}

// bodyGapUp reports a gap between the real bodies of a and the earlier b.
func (cd *candles) bodyGapUp(a, b int) bool   { return cd.bottom(a) > cd.top(b) }
func (cd *candles) bodyGapDown(a, b int) bool { return cd.top(a) < cd.bottom(b) }

// gapUp reports a gap between the full ranges of a and the earlier b.
func (cd *candles) gapUp(a, b int) bool   { return cd.l[a] > cd.h[b] }
func (cd *candles) gapDown(a, b int) bool { return cd.h[a] < cd.l[b] }
