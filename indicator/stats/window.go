package stats

import "github.com/evdnx/gota/indicator/core"

const DefaultWindowPeriod = 30

// MinMaxResult holds the window minimum and maximum.
type MinMaxResult struct {
	Begin int
	Min   []float64
	Max   []float64
}

// MinMaxIndexResult holds the absolute indices of the window extremes.
type MinMaxIndexResult struct {
	Begin int
	Min   []int
	Max   []int
}

// WindowLookback is period-1 for SUM, MIN, MAX and their variants.
func WindowLookback(period int) int { return period - 1 }

func prepareWindow(op string, in []float64, period int) (int, int, error) {
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return 0, 0, err
	}
	lb := WindowLookback(period)
	n, err := core.Prepare(op, lb, in)
	return n, lb, err
}

// Sum is the rolling sum over the window.
func Sum(in []float64, period int) (core.Result, error) {
	n, lb, err := prepareWindow("SUM", in, period)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	total := 0.0
	for i := 0; i < lb; i++ {
		total += in[i]
	}
	for i := lb; i < n; i++ {
		total += in[i]
		res.Values[i] = total
		total -= in[i-lb]
	}
	return res, nil
}

// extremeIndex tracks the index of the window maximum (or minimum when
// lowest is set). A rescan keeps the earliest extreme; a new bar equal to
// the current extreme takes over.
func extremeIndex(in []float64, lb int, lowest bool) []int {
	better := func(a, b float64) bool {
		if lowest {
			return a < b
		}
		return a > b
	}
	out := make([]int, len(in))
	idx := -1
	var ext float64
	for today := lb; today < len(in); today++ {
		trailing := today - lb
		if idx < trailing {
			idx, ext = trailing, in[trailing]
			for i := trailing + 1; i <= today; i++ {
				if better(in[i], ext) {
					idx, ext = i, in[i]
				}
			}
		} else if !better(ext, in[today]) {
			idx, ext = today, in[today]
		}
		out[today] = idx
	}
	return out
}

func pick(in []float64, idx []int, lb int) []float64 {
	out := make([]float64, len(in))
	for i := lb; i < len(in); i++ {
		out[i] = in[idx[i]]
	}
	return out
}

// Max is the highest value over the window.
func Max(in []float64, period int) (core.Result, error) {
	_, lb, err := prepareWindow("MAX", in, period)
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: pick(in, extremeIndex(in, lb, false), lb)}, nil
}

// Min is the lowest value over the window.
func Min(in []float64, period int) (core.Result, error) {
	_, lb, err := prepareWindow("MIN", in, period)
	if err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: pick(in, extremeIndex(in, lb, true), lb)}, nil
}

// MaxIndex is the absolute index of the highest value over the window.
func MaxIndex(in []float64, period int) (core.IntResult, error) {
	_, lb, err := prepareWindow("MAXINDEX", in, period)
	if err != nil {
		return core.IntResult{}, err
	}
	return core.IntResult{Begin: lb, Values: extremeIndex(in, lb, false)}, nil
}

// MinIndex is the absolute index of the lowest value over the window.
func MinIndex(in []float64, period int) (core.IntResult, error) {
	_, lb, err := prepareWindow("MININDEX", in, period)
	if err != nil {
		return core.IntResult{}, err
	}
	return core.IntResult{Begin: lb, Values: extremeIndex(in, lb, true)}, nil
}

// MinMax returns both window extremes in one pass.
func MinMax(in []float64, period int) (MinMaxResult, error) {
	_, lb, err := prepareWindow("MINMAX", in, period)
	if err != nil {
		return MinMaxResult{}, err
	}
	return MinMaxResult{
		Begin: lb,
		Min:   pick(in, extremeIndex(in, lb, true), lb),
		Max:   pick(in, extremeIndex(in, lb, false), lb),
	}, nil
}

// MinMaxIndex returns the absolute indices of both window extremes.
func MinMaxIndex(in []float64, period int) (MinMaxIndexResult, error) {
	_, lb, err := prepareWindow("MINMAXINDEX", in, period)
	if err != nil {
		return MinMaxIndexResult{}, err
	}
	return MinMaxIndexResult{
		Begin: lb,
		Min:   extremeIndex(in, lb, true),
		Max:   extremeIndex(in, lb, false),
	}, nil
}
