// Package trend implements the moving-average family and the other overlap
// studies: SAR, midpoint/midprice and the Hilbert instantaneous trendline.
package trend

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

const (
	DefaultMAPeriod  = 30
	DefaultT3VFactor = 0.7
	DefaultMAMAFast  = 0.5
	DefaultMAMASlow  = 0.05
)

// MALookback returns the lookback of the selected variant. A period of 1
// means identity and consumes nothing.
func MALookback(cfg config.Settings, period int, t core.MAType) int {
	if period <= 1 {
		return 0
	}
	switch t {
	case core.SMA:
		return SMALookback(period)
	case core.EMA:
		return EMALookback(cfg, period)
	case core.WMA:
		return WMALookback(period)
	case core.DEMA:
		return DEMALookback(cfg, period)
	case core.TEMA:
		return TEMALookback(cfg, period)
	case core.TRIMA:
		return TRIMALookback(period)
	case core.KAMA:
		return KAMALookback(cfg, period)
	case core.MAMA:
		return MAMALookback(cfg)
	case core.T3:
		return T3Lookback(cfg, period)
	}
	return 0
}

// MA dispatches to one of the nine moving averages. MAMA ignores period and
// uses its default limits; T3 uses the default volume factor.
func MA(cfg config.Settings, in []float64, period int, t core.MAType) (core.Result, error) {
	const op = "MA"
	if err := core.CheckPeriod(op, "period", period, 1, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckMAType(op, "maType", t); err != nil {
		return core.Result{}, err
	}
	lb := MALookback(cfg, period, t)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: MAAt(cfg, in, lb, period, t)}, nil
}

// MAAt computes the selected average with its first output at start, which
// must be at least MALookback. Warm-up reads only in[start-lookback:], except
// Metastock EMA seeding which always starts from in[0]. MAMA keys its
// odd/even filter banks to absolute indices. Parameters are not validated.
func MAAt(cfg config.Settings, in []float64, start, period int, t core.MAType) []float64 {
	if period <= 1 {
		out := make([]float64, len(in))
		copy(out[start:], in[start:])
		return out
	}
	switch t {
	case core.EMA:
		return EMAAt(cfg, in, start, period, EMAFactor(period))
	case core.DEMA:
		return demaAt(cfg, in, start, period)
	case core.TEMA:
		return temaAt(cfg, in, start, period)
	case core.MAMA:
		m, _ := mamaAt(cfg, in, start, DefaultMAMAFast, DefaultMAMASlow)
		return m
	}
	lb := MALookback(cfg, period, t)
	off := start - lb
	sub := in[off:]
	var vals []float64
	switch t {
	case core.SMA:
		vals = sma(sub, period)
	case core.WMA:
		vals = wma(sub, period)
	case core.TRIMA:
		vals = trima(sub, period)
	case core.KAMA:
		vals = kama(sub, period, lb)
	case core.T3:
		vals = t3(sub, period, DefaultT3VFactor, lb)
	}
	return core.Realign(vals, off, len(in))
}

// MAOver smooths src, whose values are defined from index from onward, with
// the first output at start. Seeding never reads before from.
func MAOver(cfg config.Settings, src []float64, from, start, period int, t core.MAType) []float64 {
	return core.Realign(MAAt(cfg, src[from:], start-from, period, t), from, len(src))
}
