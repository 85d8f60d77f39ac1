package momentum

import (
	"fmt"
	"slices"

	"github.com/evdnx/gota/indicator/core"
)

const (
	DefaultULTOSCPeriod1 = 7
	DefaultULTOSCPeriod2 = 14
	DefaultULTOSCPeriod3 = 28
)

// ULTOSCLookback is the longest of the three periods.
func ULTOSCLookback(p1, p2, p3 int) int { return max(p1, p2, p3) }

// ULTOSC is the ultimate oscillator: buying pressure over true range on
// three windows, weighted 4:2:1 from the shortest window to the longest.
func ULTOSC(high, low, close []float64, p1, p2, p3 int) (core.Result, error) {
	const op = "ULTOSC"
	for i, p := range []int{p1, p2, p3} {
		if err := core.CheckPeriod(op, fmt.Sprintf("period%d", i+1), p, 1, core.MaxPeriod); err != nil {
			return core.Result{}, err
		}
	}
	lb := ULTOSCLookback(p1, p2, p3)
	n, err := core.Prepare(op, lb, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	periods := []int{p1, p2, p3}
	slices.Sort(periods)

	terms := func(day int) (bp, tr float64) {
		prevClose := close[day-1]
		bp = close[day] - min(low[day], prevClose)
		return bp, core.TrueRange(high[day], low[day], prevClose)
	}

	var a, b [3]float64
	for k, p := range periods {
		for i := lb - p + 1; i < lb; i++ {
			bp, tr := terms(i)
			a[k] += bp
			b[k] += tr
		}
	}

	weights := [3]float64{4, 2, 1}
	res := core.NewResult(n, lb)
	for today := lb; today < n; today++ {
		bp, tr := terms(today)
		out := 0.0
		for k := range periods {
			a[k] += bp
			b[k] += tr
			if !core.IsZero(b[k]) {
				out += weights[k] * (a[k] / b[k])
			}
		}
		for k, p := range periods {
			bp, tr := terms(today - p + 1)
			a[k] -= bp
			b[k] -= tr
		}
		res.Values[today] = 100 * (out / 7)
	}
	return res, nil
}
