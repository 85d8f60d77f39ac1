package trend

import "github.com/evdnx/gota/indicator/core"

// TRIMALookback is period-1.
func TRIMALookback(period int) int { return period - 1 }

// TRIMA is a triangular moving average: an SMA of an SMA. Odd periods use
// two windows of (period+1)/2; even periods use period/2 and period/2+1.
func TRIMA(in []float64, period int) (core.Result, error) {
	const op = "TRIMA"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := TRIMALookback(period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: trima(in, period)}, nil
}

// trima tracks the triangular numerator with two partial sums: the rising
// half (numAdd) and the falling half (numSub).
func trima(in []float64, period int) []float64 {
	out := make([]float64, len(in))
	half := period >> 1
	odd := period%2 == 1

	var factor float64
	trailing := 0
	var middle int
	if odd {
		factor = 1 / float64((half+1)*(half+1))
		middle = trailing + half
	} else {
		factor = 1 / float64(half*(half+1))
		middle = trailing + half - 1
	}
	today := middle + half

	num, numSub := 0.0, 0.0
	for i := middle; i >= trailing; i-- {
		numSub += in[i]
		num += numSub
	}
	numAdd := 0.0
	middle++
	for i := middle; i <= today; i++ {
		numAdd += in[i]
		num += numAdd
	}

	trailingValue := in[trailing]
	trailing++
	out[today] = num * factor
	today++

	for today < len(in) {
		num -= numSub
		numSub -= trailingValue
		v := in[middle]
		middle++
		numSub += v
		if odd {
			num += numAdd
			numAdd -= v
		} else {
			numAdd -= v
			num += numAdd
		}
		v = in[today]
		numAdd += v
		num += v
		trailingValue = in[trailing]
		trailing++
		out[today] = num * factor
		today++
	}
	return out
}
