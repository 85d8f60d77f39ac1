package volume

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

const DefaultMFIPeriod = 14

// MFILookback is period plus the MFI unstable period.
func MFILookback(cfg config.Settings, period int) int {
	return period + cfg.UnstablePeriod(config.UnstMFI)
}

type moneyFlow struct {
	positive, negative float64
}

// MFI is the money flow index: 100 * positive flow / total flow over the
// window, where flow is typical price times volume signed by the change in
// typical price. Totals below 1 yield 0.
func MFI(cfg config.Settings, high, low, close, volume []float64, period int) (core.Result, error) {
	const op = "MFI"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := MFILookback(cfg, period)
	n, err := core.Prepare(op, lb, high, low, close, volume)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)

	ring := make([]moneyFlow, period)
	idx := 0
	var pos, neg float64
	typical := func(i int) float64 { return (high[i] + low[i] + close[i]) / 3 }
	prev := typical(0)
	push := func(today int) {
		tp := typical(today)
		diff := tp - prev
		prev = tp
		flow := tp * volume[today]
		var mf moneyFlow
		switch {
		case diff < 0:
			mf.negative = flow
		case diff > 0:
			mf.positive = flow
		}
		pos += mf.positive
		neg += mf.negative
		ring[idx] = mf
		idx++
		if idx == period {
			idx = 0
		}
	}
	ratio := func() float64 {
		if total := pos + neg; total >= 1 {
			return 100 * (pos / total)
		}
		return 0
	}

	today := 1
	for ; today <= period; today++ {
		push(today)
	}
	if today > lb {
		res.Values[lb] = ratio()
	}
	for ; today < n; today++ {
		pos -= ring[idx].positive
		neg -= ring[idx].negative
		push(today)
		if today >= lb {
			res.Values[today] = ratio()
		}
	}
	return res, nil
}
