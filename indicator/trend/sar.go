package trend

import (
	"math"

	"github.com/evdnx/gota/indicator/core"
)

const (
	DefaultSARAcceleration = 0.02
	DefaultSARMaximum      = 0.2
)

// SARExtParams configures the extended parabolic SAR. A zero StartValue
// picks the initial direction from the first directional movement; a
// positive one starts long at that level, a negative one starts short at its
// absolute value.
type SARExtParams struct {
	StartValue            float64
	OffsetOnReverse       float64
	AccelerationInitLong  float64
	AccelerationLong      float64
	AccelerationMaxLong   float64
	AccelerationInitShort float64
	AccelerationShort     float64
	AccelerationMaxShort  float64
}

// DefaultSARExtParams mirrors the classic SAR defaults on both sides.
func DefaultSARExtParams() SARExtParams {
	return SARExtParams{
		AccelerationInitLong:  DefaultSARAcceleration,
		AccelerationLong:      DefaultSARAcceleration,
		AccelerationMaxLong:   DefaultSARMaximum,
		AccelerationInitShort: DefaultSARAcceleration,
		AccelerationShort:     DefaultSARAcceleration,
		AccelerationMaxShort:  DefaultSARMaximum,
	}
}

// Validate checks every field against its declared range.
func (p SARExtParams) Validate() error {
	const op = "SAREXT"
	if err := core.CheckReal(op, "startValue", p.StartValue, core.RealMin, core.RealMax); err != nil {
		return err
	}
	checks := []struct {
		name string
		v    float64
	}{
		{"offsetOnReverse", p.OffsetOnReverse},
		{"accelerationInitLong", p.AccelerationInitLong},
		{"accelerationLong", p.AccelerationLong},
		{"accelerationMaxLong", p.AccelerationMaxLong},
		{"accelerationInitShort", p.AccelerationInitShort},
		{"accelerationShort", p.AccelerationShort},
		{"accelerationMaxShort", p.AccelerationMaxShort},
	}
	for _, c := range checks {
		if err := core.CheckReal(op, c.name, c.v, 0, core.RealMax); err != nil {
			return err
		}
	}
	return nil
}

// SARExtResult carries the stop level and the position it applies to
// (+1 long, -1 short) for every bar from Begin.
type SARExtResult struct {
	Begin     int
	SAR       []float64
	Direction []int
}

// Signed returns the SAR negated on short bars, the single-series form of
// the extended SAR.
func (r SARExtResult) Signed() []float64 {
	out := make([]float64, len(r.SAR))
	for i := r.Begin; i < len(r.SAR); i++ {
		out[i] = r.SAR[i] * float64(r.Direction[i])
	}
	return out
}

// SARLookback is 1: the first bar only seeds direction.
func SARLookback() int { return 1 }

// SAR is Wilder's parabolic stop and reverse.
func SAR(high, low []float64, acceleration, maximum float64) (core.Result, error) {
	const op = "SAR"
	if err := core.CheckReal(op, "acceleration", acceleration, 0, core.RealMax); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckReal(op, "maximum", maximum, 0, core.RealMax); err != nil {
		return core.Result{}, err
	}
	if _, err := core.Prepare(op, SARLookback(), high, low); err != nil {
		return core.Result{}, err
	}
	p := SARExtParams{
		AccelerationInitLong:  acceleration,
		AccelerationLong:      acceleration,
		AccelerationMaxLong:   maximum,
		AccelerationInitShort: acceleration,
		AccelerationShort:     acceleration,
		AccelerationMaxShort:  maximum,
	}
	r := sarExt(high, low, p)
	return core.Result{Begin: r.Begin, Values: r.SAR}, nil
}

// SAREXT is the parabolic SAR with independent long/short acceleration, an
// optional forced start and a percentage offset applied on reversal.
func SAREXT(high, low []float64, p SARExtParams) (SARExtResult, error) {
	if err := p.Validate(); err != nil {
		return SARExtResult{}, err
	}
	if _, err := core.Prepare("SAREXT", SARLookback(), high, low); err != nil {
		return SARExtResult{}, err
	}
	return sarExt(high, low, p), nil
}

func sarExt(high, low []float64, p SARExtParams) SARExtResult {
	n := len(high)
	res := SARExtResult{Begin: 1, SAR: make([]float64, n), Direction: make([]int, n)}

	if p.AccelerationInitLong > p.AccelerationMaxLong {
		p.AccelerationInitLong = p.AccelerationMaxLong
	}
	if p.AccelerationLong > p.AccelerationMaxLong {
		p.AccelerationLong = p.AccelerationMaxLong
	}
	if p.AccelerationInitShort > p.AccelerationMaxShort {
		p.AccelerationInitShort = p.AccelerationMaxShort
	}
	if p.AccelerationShort > p.AccelerationMaxShort {
		p.AccelerationShort = p.AccelerationMaxShort
	}
	afLong, afShort := p.AccelerationInitLong, p.AccelerationInitShort

	today := 1
	var long bool
	switch {
	case p.StartValue == 0:
		// Initial direction follows the minus directional movement of bar 1.
		up := high[1] - high[0]
		down := low[0] - low[1]
		long = !(down > 0 && up < down)
	case p.StartValue > 0:
		long = true
	}

	var ep, sar float64
	switch {
	case p.StartValue == 0 && long:
		ep, sar = high[today], low[today-1]
	case p.StartValue == 0:
		ep, sar = low[today], high[today-1]
	case p.StartValue > 0:
		ep, sar = high[today], p.StartValue
	default:
		ep, sar = low[today], math.Abs(p.StartValue)
	}

	newLow, newHigh := low[today], high[today]
	for ; today < n; today++ {
		prevLow, prevHigh := newLow, newHigh
		newLow, newHigh = low[today], high[today]

		if long {
			if newLow <= sar {
				long = false
				sar = math.Max(ep, math.Max(prevHigh, newHigh))
				if p.OffsetOnReverse != 0 {
					sar += sar * p.OffsetOnReverse
				}
				res.SAR[today], res.Direction[today] = sar, -1
				afShort = p.AccelerationInitShort
				ep = newLow
				sar += afShort * (ep - sar)
				sar = math.Max(sar, math.Max(prevHigh, newHigh))
				continue
			}
			res.SAR[today], res.Direction[today] = sar, 1
			if newHigh > ep {
				ep = newHigh
				afLong = math.Min(afLong+p.AccelerationLong, p.AccelerationMaxLong)
			}
			sar += afLong * (ep - sar)
			sar = math.Min(sar, math.Min(prevLow, newLow))
			continue
		}

		if newHigh >= sar {
			long = true
			sar = math.Min(ep, math.Min(prevLow, newLow))
			if p.OffsetOnReverse != 0 {
				sar -= sar * p.OffsetOnReverse
			}
			res.SAR[today], res.Direction[today] = sar, 1
			afLong = p.AccelerationInitLong
			ep = newHigh
			sar += afLong * (ep - sar)
			sar = math.Min(sar, math.Min(prevLow, newLow))
			continue
		}
		res.SAR[today], res.Direction[today] = sar, -1
		if newLow < ep {
			ep = newLow
			afShort = math.Min(afShort+p.AccelerationShort, p.AccelerationMaxShort)
		}
		sar += afShort * (ep - sar)
		sar = math.Max(sar, math.Max(prevHigh, newHigh))
	}
	return res
}
