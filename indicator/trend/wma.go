package trend

import "github.com/evdnx/gota/indicator/core"

// WMALookback is period-1.
func WMALookback(period int) int { return period - 1 }

// WMA weights the window 1..period, newest highest.
func WMA(in []float64, period int) (core.Result, error) {
	const op = "WMA"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := WMALookback(period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: wma(in, period)}, nil
}

// wma maintains the weighted sum incrementally: each step adds period*new
// and subtracts the plain sum of the previous window.
func wma(in []float64, period int) []float64 {
	out := make([]float64, len(in))
	start := period - 1
	divider := float64(period*(period+1)) / 2
	sum, sub := 0.0, 0.0
	idx := 0
	for i := 1; idx < start; i++ {
		v := in[idx]
		sub += v
		sum += v * float64(i)
		idx++
	}
	trailingIdx, trailingValue := 0, 0.0
	for ; idx < len(in); idx++ {
		v := in[idx]
		sub += v
		sub -= trailingValue
		sum += v * float64(period)
		trailingValue = in[trailingIdx]
		trailingIdx++
		out[idx] = sum / divider
		sum -= sub
	}
	return out
}
