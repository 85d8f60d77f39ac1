package momentum

import (
	"math"

	"github.com/evdnx/gota/indicator/core"
)

const DefaultCCIPeriod = 14

// CCILookback is period-1.
func CCILookback(period int) int { return period - 1 }

// CCI is the commodity channel index: the distance of the typical price
// from its mean, in units of 0.015 mean absolute deviations.
func CCI(high, low, close []float64, period int) (core.Result, error) {
	const op = "CCI"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := CCILookback(period)
	n, err := core.Prepare(op, lb, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	p := float64(period)
	ring := make([]float64, period)
	idx := 0
	for i := 0; i < lb; i++ {
		ring[idx] = (high[i] + low[i] + close[i]) / 3
		idx++
	}
	for today := lb; today < n; today++ {
		last := (high[today] + low[today] + close[today]) / 3
		ring[idx] = last
		idx++
		if idx == period {
			idx = 0
		}

		sum := 0.0
		for _, v := range ring {
			sum += v
		}
		avg := sum / p
		dev := 0.0
		for _, v := range ring {
			dev += math.Abs(v - avg)
		}
		if d := last - avg; d != 0 && dev != 0 {
			res.Values[today] = d / (0.015 * (dev / p))
		}
	}
	return res, nil
}
