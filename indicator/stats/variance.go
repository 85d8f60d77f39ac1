// Package stats implements the rolling statistics: variance and standard
// deviation, correlation and beta, the linear-regression family, and window
// sums and extremes.
package stats

import (
	"math"

	"github.com/evdnx/gota/indicator/core"
)

const (
	DefaultVarPeriod = 5
	DefaultNbDev     = 1.0
)

// VarLookback is period-1.
func VarLookback(period int) int { return period - 1 }

// Var is the rolling population variance scaled by nbDev.
func Var(in []float64, period int, nbDev float64) (core.Result, error) {
	const op = "VAR"
	if err := core.CheckPeriod(op, "period", period, 1, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckReal(op, "nbDev", nbDev, core.RealMin, core.RealMax); err != nil {
		return core.Result{}, err
	}
	lb := VarLookback(period)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return core.Result{}, err
	}
	vals := variance(in, period)
	if nbDev != 1 {
		for i := lb; i < n; i++ {
			vals[i] *= nbDev
		}
	}
	return core.Result{Begin: lb, Values: vals}, nil
}

// StdDevLookback is period-1.
func StdDevLookback(period int) int { return period - 1 }

// StdDev is nbDev times the rolling population standard deviation. A
// non-positive variance yields 0.
func StdDev(in []float64, period int, nbDev float64) (core.Result, error) {
	const op = "STDDEV"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckReal(op, "nbDev", nbDev, core.RealMin, core.RealMax); err != nil {
		return core.Result{}, err
	}
	lb := StdDevLookback(period)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return core.Result{}, err
	}
	vals := variance(in, period)
	for i := lb; i < n; i++ {
		vals[i] = stdDevFromVar(vals[i]) * nbDev
	}
	return core.Result{Begin: lb, Values: vals}, nil
}

func stdDevFromVar(v float64) float64 {
	if core.IsZeroOrNeg(v) {
		return 0
	}
	return math.Sqrt(v)
}

// variance keeps running sums of x and x² over the window: E[x²] - E[x]².
func variance(in []float64, period int) []float64 {
	out := make([]float64, len(in))
	p := float64(period)
	var sum1, sum2 float64
	for i := 0; i < period-1; i++ {
		sum1 += in[i]
		sum2 += in[i] * in[i]
	}
	trailing := 0
	for i := period - 1; i < len(in); i++ {
		v := in[i]
		sum1 += v
		sum2 += v * v
		mean1 := sum1 / p
		mean2 := sum2 / p
		t := in[trailing]
		trailing++
		sum1 -= t
		sum2 -= t * t
		out[i] = mean2 - mean1*mean1
	}
	return out
}

// StdDevAround is the rolling population standard deviation of in around a
// precomputed mean series, for every index from start.
func StdDevAround(in, mean []float64, period, start int) []float64 {
	out := make([]float64, len(in))
	p := float64(period)
	sum2 := 0.0
	for i := start - period + 1; i < start; i++ {
		sum2 += in[i] * in[i]
	}
	trailing := start - period + 1
	for i := start; i < len(in); i++ {
		sum2 += in[i] * in[i]
		mean2 := sum2 / p
		t := in[trailing]
		trailing++
		sum2 -= t * t
		out[i] = stdDevFromVar(mean2 - mean[i]*mean[i])
	}
	return out
}

// StdDevAt is the unscaled rolling standard deviation for every index from
// start; period-1 bars before start must exist.
func StdDevAt(in []float64, period, start int) []float64 {
	from := start - (period - 1)
	vals := variance(in[from:], period)
	out := core.Realign(vals, from, len(in))
	for i := start; i < len(out); i++ {
		out[i] = stdDevFromVar(out[i])
	}
	return out
}
