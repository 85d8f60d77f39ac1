// Package cycle implements the Hilbert transform cycle studies: dominant
// cycle period and phase, phasor components, the sine wave and the
// trend-versus-cycle mode.
package cycle

import (
	"math"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/internal/hilbert"
)

// PhasorResult holds the in-phase and quadrature components.
type PhasorResult struct {
	Begin      int
	InPhase    []float64
	Quadrature []float64
}

// SineResult holds the sine of the dominant cycle phase and the sine led by
// 45 degrees.
type SineResult struct {
	Begin    int
	Sine     []float64
	LeadSine []float64
}

// DCPeriodLookback is 32 plus the HT_DCPERIOD unstable period.
func DCPeriodLookback(cfg config.Settings) int {
	return hilbert.PeriodLookback + cfg.UnstablePeriod(config.UnstHTDCPeriod)
}

// PhasorLookback is 32 plus the HT_PHASOR unstable period.
func PhasorLookback(cfg config.Settings) int {
	return hilbert.PeriodLookback + cfg.UnstablePeriod(config.UnstHTPhasor)
}

// DCPhaseLookback is 63 plus the HT_DCPHASE unstable period.
func DCPhaseLookback(cfg config.Settings) int {
	return hilbert.PhaseLookback + cfg.UnstablePeriod(config.UnstHTDCPhase)
}

// SineLookback is 63 plus the HT_SINE unstable period.
func SineLookback(cfg config.Settings) int {
	return hilbert.PhaseLookback + cfg.UnstablePeriod(config.UnstHTSine)
}

// TrendModeLookback is 63 plus the HT_TRENDMODE unstable period.
func TrendModeLookback(cfg config.Settings) int {
	return hilbert.PhaseLookback + cfg.UnstablePeriod(config.UnstHTTrendMode)
}

// DCPeriod is the smoothed dominant cycle period in bars.
func DCPeriod(cfg config.Settings, in []float64) (core.Result, error) {
	lb := DCPeriodLookback(cfg)
	n, err := core.Prepare("HT_DCPERIOD", lb, in)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	ht := hilbert.NewPeriod(in, 0)
	for !ht.Done() {
		today := ht.Today
		ht.Step()
		if today >= lb {
			res.Values[today] = ht.SmoothPeriod
		}
	}
	return res, nil
}

// Phasor returns the in-phase and quadrature components of the detrended
// price.
func Phasor(cfg config.Settings, in []float64) (PhasorResult, error) {
	lb := PhasorLookback(cfg)
	n, err := core.Prepare("HT_PHASOR", lb, in)
	if err != nil {
		return PhasorResult{}, err
	}
	res := PhasorResult{Begin: lb, InPhase: make([]float64, n), Quadrature: make([]float64, n)}
	ht := hilbert.NewPeriod(in, 0)
	for !ht.Done() {
		today := ht.Today
		ht.Step()
		if today >= lb {
			res.InPhase[today] = ht.InPhase
			res.Quadrature[today] = ht.Quadrature
		}
	}
	return res, nil
}

// DCPhase is the dominant cycle phase in degrees.
func DCPhase(cfg config.Settings, in []float64) (core.Result, error) {
	lb := DCPhaseLookback(cfg)
	n, err := core.Prepare("HT_DCPHASE", lb, in)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	c := hilbert.NewCycle(in, 0)
	for !c.Done() {
		today := c.Today
		c.Step()
		if today >= lb {
			res.Values[today] = c.DCPhase
		}
	}
	return res, nil
}

// Sine is the sine wave indicator: sin(phase) and sin(phase+45°).
func Sine(cfg config.Settings, in []float64) (SineResult, error) {
	lb := SineLookback(cfg)
	n, err := core.Prepare("HT_SINE", lb, in)
	if err != nil {
		return SineResult{}, err
	}
	res := SineResult{Begin: lb, Sine: make([]float64, n), LeadSine: make([]float64, n)}
	c := hilbert.NewCycle(in, 0)
	for !c.Done() {
		today := c.Today
		c.Step()
		if today >= lb {
			res.Sine[today] = math.Sin(c.DCPhase * hilbert.Deg2Rad)
			res.LeadSine[today] = math.Sin((c.DCPhase + 45) * hilbert.Deg2Rad)
		}
	}
	return res, nil
}

// TrendMode classifies every bar as trending (1) or cycling (0).
func TrendMode(cfg config.Settings, in []float64) (core.IntResult, error) {
	lb := TrendModeLookback(cfg)
	n, err := core.Prepare("HT_TRENDMODE", lb, in)
	if err != nil {
		return core.IntResult{}, err
	}
	res := core.NewIntResult(n, lb)
	c := hilbert.NewCycle(in, 0)
	var tr hilbert.Trend
	var sine, leadSine float64
	daysInTrend := 0
	for !c.Done() {
		today := c.Today
		c.Step()

		prevSine, prevLeadSine := sine, leadSine
		sine = math.Sin(c.DCPhase * hilbert.Deg2Rad)
		leadSine = math.Sin((c.DCPhase + 45) * hilbert.Deg2Rad)
		trendline := tr.Next(in, today, c.SmoothPeriod)

		trend := 1
		// A sine/lead-sine crossing restarts the trend count.
		if (sine > leadSine && prevSine <= prevLeadSine) || (sine < leadSine && prevSine >= prevLeadSine) {
			daysInTrend = 0
			trend = 0
		}
		daysInTrend++
		if float64(daysInTrend) < 0.5*c.SmoothPeriod {
			trend = 0
		}
		if delta := c.DCPhase - c.PrevDCPhase; c.SmoothPeriod != 0 &&
			delta > 0.67*360/c.SmoothPeriod && delta < 1.5*360/c.SmoothPeriod {
			trend = 0
		}
		if trendline != 0 && math.Abs((c.Price-trendline)/trendline) >= 0.015 {
			trend = 1
		}
		if today >= lb {
			res.Values[today] = trend
		}
	}
	return res, nil
}
