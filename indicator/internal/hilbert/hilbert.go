// Package hilbert is the Hilbert transform pipeline shared by MAMA, the
// instantaneous trendline and the cycle indicators: a 4-bar price WMA, a
// detrender, in-phase/quadrature components and a smoothed period detector.
package hilbert

import "math"

const (
	a = 0.0962
	b = 0.5769

	// Rad2Deg converts radians to degrees.
	Rad2Deg = 180.0 / math.Pi
	// Deg2Rad converts degrees to radians.
	Deg2Rad = math.Pi / 180.0
)

// Lookbacks of the two pipeline depths, excluding unstable periods.
const (
	PeriodLookback = 32
	PhaseLookback  = 63
)

// Warm-up lengths of the price WMA for each pipeline depth.
const (
	periodWarmup = 9
	phaseWarmup  = 34
)

// priceWMA is a 4-3-2-1 weighted average maintained incrementally.
type priceWMA struct {
	in            []float64
	trailing      int
	sub, sum      float64
	trailingValue float64
}

func (p *priceWMA) next(v float64) float64 {
	p.sub += v
	p.sub -= p.trailingValue
	p.sum += v * 4
	p.trailingValue = p.in[p.trailing]
	p.trailing++
	out := p.sum * 0.1
	p.sum -= p.sub
	return out
}

// stage is one FIR quadrature filter with separate odd/even bar memories.
type stage struct {
	odd, even             [3]float64
	prevOdd, prevEven     float64
	prevInOdd, prevInEven float64
}

func (s *stage) stepEven(in float64, idx int, adj float64) float64 {
	t := a * in
	v := -s.even[idx]
	s.even[idx] = t
	v += t
	v -= s.prevEven
	s.prevEven = b * s.prevInEven
	v += s.prevEven
	s.prevInEven = in
	return v * adj
}

func (s *stage) stepOdd(in float64, idx int, adj float64) float64 {
	t := a * in
	v := -s.odd[idx]
	s.odd[idx] = t
	v += t
	v -= s.prevOdd
	s.prevOdd = b * s.prevInOdd
	v += s.prevOdd
	s.prevInOdd = in
	return v * adj
}

// Transformer walks a series one bar at a time. After Step, the exported
// fields describe the bar at index Today-1.
type Transformer struct {
	in    []float64
	wma   priceWMA
	Today int

	idx                      int
	detrender, q1, ji, jq    stage
	i1OddPrev2, i1OddPrev3   float64
	i1EvenPrev2, i1EvenPrev3 float64
	prevI2, prevQ2, re, im   float64

	Smoothed     float64
	InPhase      float64
	Quadrature   float64
	Phase        float64
	Period       float64
	SmoothPeriod float64
}

// NewPeriod starts a transformer at in[from] with the shallow warm-up used
// by MAMA, HT_DCPERIOD and HT_PHASOR. The first bar able to produce output
// is from+PeriodLookback.
func NewPeriod(in []float64, from int) *Transformer {
	return newTransformer(in, from, periodWarmup)
}

// NewPhase starts a transformer with the deep warm-up used by the
// phase-based indicators. The first output bar is from+PhaseLookback.
func NewPhase(in []float64, from int) *Transformer {
	return newTransformer(in, from, phaseWarmup)
}

func newTransformer(in []float64, from, warmup int) *Transformer {
	t := &Transformer{in: in, Today: from}
	t.wma = priceWMA{in: in, trailing: from}
	v := in[t.Today]
	t.Today++
	t.wma.sub, t.wma.sum = v, v
	v = in[t.Today]
	t.Today++
	t.wma.sub += v
	t.wma.sum += v * 2
	v = in[t.Today]
	t.Today++
	t.wma.sub += v
	t.wma.sum += v * 3
	for i := 0; i < warmup; i++ {
		t.Smoothed = t.wma.next(in[t.Today])
		t.Today++
	}
	return t
}

// Step consumes in[Today] and advances Today.
func (t *Transformer) Step() {
	adj := 0.075*t.Period + 0.54
	t.Smoothed = t.wma.next(t.in[t.Today])

	var q2, i2 float64
	if t.Today%2 == 0 {
		detrender := t.detrender.stepEven(t.Smoothed, t.idx, adj)
		q1 := t.q1.stepEven(detrender, t.idx, adj)
		ji := t.ji.stepEven(t.i1EvenPrev3, t.idx, adj)
		jq := t.jq.stepEven(q1, t.idx, adj)
		t.idx++
		if t.idx == 3 {
			t.idx = 0
		}
		q2 = 0.2*(q1+ji) + 0.8*t.prevQ2
		i2 = 0.2*(t.i1EvenPrev3-jq) + 0.8*t.prevI2
		t.InPhase, t.Quadrature = t.i1EvenPrev3, q1
		t.i1OddPrev3 = t.i1OddPrev2
		t.i1OddPrev2 = detrender
	} else {
		detrender := t.detrender.stepOdd(t.Smoothed, t.idx, adj)
		q1 := t.q1.stepOdd(detrender, t.idx, adj)
		ji := t.ji.stepOdd(t.i1OddPrev3, t.idx, adj)
		jq := t.jq.stepOdd(q1, t.idx, adj)
		q2 = 0.2*(q1+ji) + 0.8*t.prevQ2
		i2 = 0.2*(t.i1OddPrev3-jq) + 0.8*t.prevI2
		t.InPhase, t.Quadrature = t.i1OddPrev3, q1
		t.i1EvenPrev3 = t.i1EvenPrev2
		t.i1EvenPrev2 = detrender
	}
	if t.InPhase != 0 {
		t.Phase = math.Atan(t.Quadrature/t.InPhase) * Rad2Deg
	} else {
		t.Phase = 0
	}

	t.re = 0.2*(i2*t.prevI2+q2*t.prevQ2) + 0.8*t.re
	t.im = 0.2*(i2*t.prevQ2-q2*t.prevI2) + 0.8*t.im
	t.prevQ2, t.prevI2 = q2, i2

	prev := t.Period
	if t.im != 0 && t.re != 0 {
		t.Period = 360 / (math.Atan(t.im/t.re) * Rad2Deg)
	}
	if hi := 1.5 * prev; t.Period > hi {
		t.Period = hi
	}
	if lo := 0.67 * prev; t.Period < lo {
		t.Period = lo
	}
	if t.Period < 6 {
		t.Period = 6
	} else if t.Period > 50 {
		t.Period = 50
	}
	t.Period = 0.2*t.Period + 0.8*prev
	t.SmoothPeriod = 0.33*t.Period + 0.67*t.SmoothPeriod
	t.Today++
}

// Done reports whether the input is exhausted.
func (t *Transformer) Done() bool { return t.Today >= len(t.in) }
