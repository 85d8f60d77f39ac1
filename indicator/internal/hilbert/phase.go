package hilbert

import "math"

const smoothPriceSize = 50

// Cycle extends Transformer with the dominant-cycle phase computed by a
// discrete Fourier sum over the last DCPeriod smoothed prices.
type Cycle struct {
	*Transformer
	ring    [smoothPriceSize]float64
	ringIdx int

	DCPhase     float64
	PrevDCPhase float64
	// Price is the smoothed price of the bar just processed.
	Price float64
}

// NewCycle starts a phase tracker at in[from]; outputs are usable from
// from+PhaseLookback.
func NewCycle(in []float64, from int) *Cycle {
	return &Cycle{Transformer: NewPhase(in, from)}
}

// Step advances the pipeline by one bar and updates DCPhase.
func (c *Cycle) Step() {
	c.Transformer.Step()
	c.ring[c.ringIdx] = c.Smoothed
	c.Price = c.Smoothed

	n := int(c.SmoothPeriod + 0.5)
	var real, imag float64
	idx := c.ringIdx
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		v := c.ring[idx]
		real += math.Sin(angle) * v
		imag += math.Cos(angle) * v
		if idx == 0 {
			idx = smoothPriceSize - 1
		} else {
			idx--
		}
	}

	c.PrevDCPhase = c.DCPhase
	if abs := math.Abs(imag); abs > 0 {
		c.DCPhase = math.Atan(real/imag) * Rad2Deg
	} else if abs <= 0.01 {
		if real < 0 {
			c.DCPhase -= 90
		} else if real > 0 {
			c.DCPhase += 90
		}
	}
	c.DCPhase += 90
	c.DCPhase += 360 / c.SmoothPeriod
	if imag < 0 {
		c.DCPhase += 180
	}
	if c.DCPhase > 315 {
		c.DCPhase -= 360
	}

	c.ringIdx++
	if c.ringIdx >= smoothPriceSize {
		c.ringIdx = 0
	}
}

// Trend is the instantaneous trendline: a 4-3-2-1 weighted blend of simple
// averages over the current dominant cycle.
type Trend struct {
	i1, i2, i3 float64
}

// Next averages in over the int(smoothPeriod+0.5) bars ending at today and
// returns the weighted trendline value.
func (tr *Trend) Next(in []float64, today int, smoothPeriod float64) float64 {
	n := int(smoothPeriod + 0.5)
	sum := 0.0
	for i, idx := 0, today; i < n && idx >= 0; i, idx = i+1, idx-1 {
		sum += in[idx]
	}
	if n > 0 {
		sum /= float64(n)
	}
	v := (4*sum + 3*tr.i1 + 2*tr.i2 + tr.i3) / 10
	tr.i3, tr.i2, tr.i1 = tr.i2, tr.i1, sum
	return v
}
