package momentum

import "github.com/evdnx/gota/indicator/core"

const DefaultMomentumPeriod = 10

// ROCLookback is period; it applies to MOM and every ROC variant.
func ROCLookback(period int) int { return period }

// MOM is in[i] - in[i-period].
func MOM(in []float64, period int) (core.Result, error) {
	return change("MOM", in, period, func(cur, prev float64) float64 { return cur - prev })
}

// ROC is ((in/prev)-1)*100.
func ROC(in []float64, period int) (core.Result, error) {
	return change("ROC", in, period, func(cur, prev float64) float64 {
		if prev == 0 {
			return 0
		}
		return (cur/prev - 1) * 100
	})
}

// ROCP is (in-prev)/prev.
func ROCP(in []float64, period int) (core.Result, error) {
	return change("ROCP", in, period, func(cur, prev float64) float64 {
		if prev == 0 {
			return 0
		}
		return (cur - prev) / prev
	})
}

// ROCR is in/prev.
func ROCR(in []float64, period int) (core.Result, error) {
	return change("ROCR", in, period, func(cur, prev float64) float64 {
		if prev == 0 {
			return 0
		}
		return cur / prev
	})
}

// ROCR100 is (in/prev)*100.
func ROCR100(in []float64, period int) (core.Result, error) {
	return change("ROCR100", in, period, func(cur, prev float64) float64 {
		if prev == 0 {
			return 0
		}
		return cur / prev * 100
	})
}

func change(op string, in []float64, period int, f func(cur, prev float64) float64) (core.Result, error) {
	if err := core.CheckPeriod(op, "period", period, 1, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	n, err := core.Prepare(op, ROCLookback(period), in)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, period)
	for i := period; i < n; i++ {
		res.Values[i] = f(in[i], in[i-period])
	}
	return res, nil
}

// BOP is the balance of power, (close-open)/(high-low), 0 on a zero range.
func BOP(open, high, low, close []float64) (core.Result, error) {
	const op = "BOP"
	n, err := core.Prepare(op, 0, open, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, 0)
	for i := range res.Values {
		if r := high[i] - low[i]; !core.IsZeroOrNeg(r) {
			res.Values[i] = (close[i] - open[i]) / r
		}
	}
	return res, nil
}
