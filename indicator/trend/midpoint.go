package trend

import "github.com/evdnx/gota/indicator/core"

const DefaultMidPeriod = 14

// MidPointLookback is period-1.
func MidPointLookback(period int) int { return period - 1 }

// MidPoint is (highest + lowest)/2 of in over the trailing window.
func MidPoint(in []float64, period int) (core.Result, error) {
	const op = "MIDPOINT"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := MidPointLookback(period)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	for i := lb; i < n; i++ {
		lo, hi := in[i-lb], in[i-lb]
		for _, v := range in[i-lb+1 : i+1] {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		res.Values[i] = (hi + lo) / 2
	}
	return res, nil
}

// MidPriceLookback is period-1.
func MidPriceLookback(period int) int { return period - 1 }

// MidPrice is (highest high + lowest low)/2 over the trailing window.
func MidPrice(high, low []float64, period int) (core.Result, error) {
	const op = "MIDPRICE"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := MidPriceLookback(period)
	n, err := core.Prepare(op, lb, high, low)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	for i := lb; i < n; i++ {
		hi := high[core.HighestIndex(high, i-lb, i)]
		lo := low[core.LowestIndex(low, i-lb, i)]
		res.Values[i] = (hi + lo) / 2
	}
	return res, nil
}
