package trend

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

// EMAFactor is the usual smoothing constant 2/(period+1).
func EMAFactor(period int) float64 { return 2.0 / float64(period+1) }

// EMALookback is period-1 plus the EMA unstable period.
func EMALookback(cfg config.Settings, period int) int {
	return period - 1 + cfg.UnstablePeriod(config.UnstEMA)
}

// DEMALookback is twice the EMA lookback.
func DEMALookback(cfg config.Settings, period int) int { return 2 * EMALookback(cfg, period) }

// TEMALookback is three times the EMA lookback.
func TEMALookback(cfg config.Settings, period int) int { return 3 * EMALookback(cfg, period) }

// EMA is the exponential moving average. Default compatibility seeds with the
// SMA of the first period values; Metastock seeds with the first value.
func EMA(cfg config.Settings, in []float64, period int) (core.Result, error) {
	const op = "EMA"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := EMALookback(cfg, period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: EMAAt(cfg, in, lb, period, EMAFactor(period))}, nil
}

// DEMA is 2*EMA - EMA(EMA).
func DEMA(cfg config.Settings, in []float64, period int) (core.Result, error) {
	const op = "DEMA"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := DEMALookback(cfg, period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: demaAt(cfg, in, lb, period)}, nil
}

// TEMA is 3*EMA1 - 3*EMA2 + EMA3 with each stage smoothing the previous one.
func TEMA(cfg config.Settings, in []float64, period int) (core.Result, error) {
	const op = "TEMA"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := TEMALookback(cfg, period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: temaAt(cfg, in, lb, period)}, nil
}

// EMAAt computes an EMA with smoothing k whose first output lands at start
// (start >= EMALookback). Nothing is validated.
func EMAAt(cfg config.Settings, in []float64, start, period int, k float64) []float64 {
	out := make([]float64, len(in))
	var prev float64
	var today int
	if !cfg.Metastock() {
		today = start - EMALookback(cfg, period)
		sum := 0.0
		for i := 0; i < period; i++ {
			sum += in[today]
			today++
		}
		prev = sum / float64(period)
	} else {
		prev = in[0]
		today = 1
	}
	for today <= start {
		prev = (in[today]-prev)*k + prev
		today++
	}
	out[start] = prev
	for ; today < len(in); today++ {
		prev = (in[today]-prev)*k + prev
		out[today] = prev
	}
	return out
}

// chainEMA smooths src (valid from begin) once more and returns a series
// aligned to src with its first value at begin+lookback.
func chainEMA(cfg config.Settings, src []float64, begin, period int) []float64 {
	lb := EMALookback(cfg, period)
	k := EMAFactor(period)
	sub := EMAAt(cfg, src[begin:], lb, period, k)
	return core.Realign(sub, begin, len(src))
}

func demaAt(cfg config.Settings, in []float64, start, period int) []float64 {
	lb := EMALookback(cfg, period)
	e1 := EMAAt(cfg, in, start-lb, period, EMAFactor(period))
	e2 := chainEMA(cfg, e1, start-lb, period)
	out := make([]float64, len(in))
	for i := start; i < len(in); i++ {
		out[i] = 2*e1[i] - e2[i]
	}
	return out
}

func temaAt(cfg config.Settings, in []float64, start, period int) []float64 {
	lb := EMALookback(cfg, period)
	b1 := start - 2*lb
	e1 := EMAAt(cfg, in, b1, period, EMAFactor(period))
	e2 := chainEMA(cfg, e1, b1, period)
	e3 := chainEMA(cfg, e2, b1+lb, period)
	out := make([]float64, len(in))
	for i := start; i < len(in); i++ {
		out[i] = 3*e1[i] - 3*e2[i] + e3[i]
	}
	return out
}
