package stats

import (
	"math"

	"github.com/evdnx/gota/indicator/core"
)

const (
	DefaultBetaPeriod   = 5
	DefaultCorrelPeriod = 30
)

// BetaLookback is period: returns need one extra bar.
func BetaLookback(period int) int { return period }

// Beta regresses the one-bar returns of y on those of x over the window.
func Beta(x, y []float64, period int) (core.Result, error) {
	const op = "BETA"
	if err := core.CheckPeriod(op, "period", period, 1, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := BetaLookback(period)
	n, err := core.Prepare(op, lb, x, y)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)

	ret := func(cur float64, last *float64) float64 {
		r := 0.0
		if !core.IsZero(*last) {
			r = (cur - *last) / *last
		}
		*last = cur
		return r
	}

	lastX, lastY := x[0], y[0]
	trailX, trailY := x[0], y[0]
	var sxx, sx, sxy, sy float64
	for i := 1; i < lb; i++ {
		rx, ry := ret(x[i], &lastX), ret(y[i], &lastY)
		sxx += rx * rx
		sx += rx
		sxy += rx * ry
		sy += ry
	}
	p := float64(period)
	trailing := 1
	for i := lb; i < n; i++ {
		rx, ry := ret(x[i], &lastX), ret(y[i], &lastY)
		sxx += rx * rx
		sx += rx
		sxy += rx * ry
		sy += ry

		tx, ty := ret(x[trailing], &trailX), ret(y[trailing], &trailY)
		trailing++

		if d := p*sxx - sx*sx; !core.IsZero(d) {
			res.Values[i] = (p*sxy - sx*sy) / d
		}
		sxx -= tx * tx
		sx -= tx
		sxy -= tx * ty
		sy -= ty
	}
	return res, nil
}

// CorrelLookback is period-1.
func CorrelLookback(period int) int { return period - 1 }

// Correl is Pearson's correlation coefficient over the window.
func Correl(x, y []float64, period int) (core.Result, error) {
	const op = "CORREL"
	if err := core.CheckPeriod(op, "period", period, 1, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := CorrelLookback(period)
	n, err := core.Prepare(op, lb, x, y)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	p := float64(period)
	var sx, sy, sxx, syy, sxy float64
	add := func(i int, sign float64) {
		sx += sign * x[i]
		sy += sign * y[i]
		sxx += sign * x[i] * x[i]
		syy += sign * y[i] * y[i]
		sxy += sign * x[i] * y[i]
	}
	for i := 0; i < lb; i++ {
		add(i, 1)
	}
	for i := lb; i < n; i++ {
		add(i, 1)
		if d := (sxx - sx*sx/p) * (syy - sy*sy/p); !core.IsZeroOrNeg(d) {
			res.Values[i] = (sxy - sx*sy/p) / math.Sqrt(d)
		}
		add(i-lb, -1)
	}
	return res, nil
}
