package gota

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/cycle"
)

// Hilbert transform cycle indicators.

func (e *Engine) HTDCPeriod(in []float64) (Result, error) {
	return call(e, "HT_DCPERIOD", func(cfg config.Settings) (Result, error) { return cycle.DCPeriod(cfg, in) })
}

func (e *Engine) HTDCPhase(in []float64) (Result, error) {
	return call(e, "HT_DCPHASE", func(cfg config.Settings) (Result, error) { return cycle.DCPhase(cfg, in) })
}

func (e *Engine) HTPhasor(in []float64) (PhasorResult, error) {
	return call(e, "HT_PHASOR", func(cfg config.Settings) (PhasorResult, error) { return cycle.Phasor(cfg, in) })
}

func (e *Engine) HTSine(in []float64) (SineResult, error) {
	return call(e, "HT_SINE", func(cfg config.Settings) (SineResult, error) { return cycle.Sine(cfg, in) })
}

// HTTrendMode is 1 for trending bars and 0 for cycling ones.
func (e *Engine) HTTrendMode(in []float64) (IntResult, error) {
	return call(e, "HT_TRENDMODE", func(cfg config.Settings) (IntResult, error) { return cycle.TrendMode(cfg, in) })
}
