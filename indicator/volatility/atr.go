// Package volatility implements true range, average true range and
// Bollinger bands.
package volatility

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

const DefaultATRPeriod = 14

// TRangeLookback is 1: the first bar has no previous close.
func TRangeLookback() int { return 1 }

// TRange is the true range of every bar after the first.
func TRange(high, low, close []float64) (core.Result, error) {
	_, err := core.Prepare("TRANGE", TRangeLookback(), high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: 1, Values: trueRange(high, low, close)}, nil
}

func trueRange(high, low, close []float64) []float64 {
	out := make([]float64, len(high))
	for i := 1; i < len(high); i++ {
		out[i] = core.TrueRange(high[i], low[i], close[i-1])
	}
	return out
}

// ATRLookback is period plus the ATR unstable period; period 1 degenerates
// to the true range.
func ATRLookback(cfg config.Settings, period int) int {
	if period <= 1 {
		return TRangeLookback()
	}
	return period + cfg.UnstablePeriod(config.UnstATR)
}

// NATRLookback is period plus the NATR unstable period.
func NATRLookback(cfg config.Settings, period int) int {
	if period <= 1 {
		return TRangeLookback()
	}
	return period + cfg.UnstablePeriod(config.UnstNATR)
}

// ATR is Wilder's average true range, seeded with the simple mean of the
// first period true ranges.
func ATR(cfg config.Settings, high, low, close []float64, period int) (core.Result, error) {
	const op = "ATR"
	if err := core.CheckPeriod(op, "period", period, 1, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := ATRLookback(cfg, period)
	if _, err := core.Prepare(op, lb, high, low, close); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: atr(high, low, close, period, lb)}, nil
}

// NATR is ATR as a percentage of the close.
func NATR(cfg config.Settings, high, low, close []float64, period int) (core.Result, error) {
	const op = "NATR"
	if err := core.CheckPeriod(op, "period", period, 1, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := NATRLookback(cfg, period)
	n, err := core.Prepare(op, lb, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	vals := atr(high, low, close, period, lb)
	for i := lb; i < n; i++ {
		if core.IsZero(close[i]) {
			vals[i] = 0
		} else {
			vals[i] = vals[i] / close[i] * 100
		}
	}
	return core.Result{Begin: lb, Values: vals}, nil
}

func atr(high, low, close []float64, period, lb int) []float64 {
	tr := trueRange(high, low, close)
	if period <= 1 {
		return tr
	}
	out := make([]float64, len(tr))
	p := float64(period)
	sum := 0.0
	for i := 1; i <= period; i++ {
		sum += tr[i]
	}
	prev := sum / p
	today := period + 1
	for ; today <= lb; today++ {
		prev = (prev*(p-1) + tr[today]) / p
	}
	out[lb] = prev
	for ; today < len(tr); today++ {
		prev = (prev*(p-1) + tr[today]) / p
		out[today] = prev
	}
	return out
}
