package trend

import "github.com/evdnx/gota/indicator/core"

// SMALookback is period-1.
func SMALookback(period int) int { return period - 1 }

// SMA is the arithmetic mean of the trailing period values.
func SMA(in []float64, period int) (core.Result, error) {
	const op = "SMA"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := SMALookback(period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: sma(in, period)}, nil
}

// sma keeps a running sum: add the newest value, emit, drop the oldest.
func sma(in []float64, period int) []float64 {
	out := make([]float64, len(in))
	start := period - 1
	total := 0.0
	for i := 0; i < start; i++ {
		total += in[i]
	}
	trailing := 0
	for i := start; i < len(in); i++ {
		total += in[i]
		out[i] = total / float64(period)
		total -= in[trailing]
		trailing++
	}
	return out
}
