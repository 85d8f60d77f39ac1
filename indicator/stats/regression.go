package stats

import (
	"math"

	"github.com/evdnx/gota/indicator/core"
)

const DefaultLinearRegPeriod = 14

// LinearRegLookback is period-1 for every member of the family.
func LinearRegLookback(period int) int { return period - 1 }

// LinearReg is the least-squares line evaluated at the newest bar.
func LinearReg(in []float64, period int) (core.Result, error) {
	return regression("LINEARREG", in, period, func(m, b, p float64) float64 { return b + m*(p-1) })
}

// LinearRegSlope is the slope of the least-squares line per bar.
func LinearRegSlope(in []float64, period int) (core.Result, error) {
	return regression("LINEARREG_SLOPE", in, period, func(m, _, _ float64) float64 { return m })
}

// LinearRegIntercept is the value of the least-squares line at the oldest
// bar of the window.
func LinearRegIntercept(in []float64, period int) (core.Result, error) {
	return regression("LINEARREG_INTERCEPT", in, period, func(_, b, _ float64) float64 { return b })
}

// LinearRegAngle is the slope expressed in degrees.
func LinearRegAngle(in []float64, period int) (core.Result, error) {
	return regression("LINEARREG_ANGLE", in, period, func(m, _, _ float64) float64 {
		return math.Atan(m) * (180 / math.Pi)
	})
}

// TSF is the time series forecast: the least-squares line extended one bar
// past the window.
func TSF(in []float64, period int) (core.Result, error) {
	return regression("TSF", in, period, func(m, b, p float64) float64 { return b + m*p })
}

func regression(op string, in []float64, period int, f func(m, b, p float64) float64) (core.Result, error) {
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := LinearRegLookback(period)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	p := float64(period)
	sumX := p * (p - 1) * 0.5
	sumXSqr := p * (p - 1) * (2*p - 1) / 6
	divisor := sumX*sumX - p*sumXSqr
	for today := lb; today < n; today++ {
		var sumXY, sumY float64
		// x counts bars back from today.
		for i := period - 1; i >= 0; i-- {
			v := in[today-i]
			sumY += v
			sumXY += float64(i) * v
		}
		m := (p*sumXY - sumX*sumY) / divisor
		b := (sumY - m*sumX) / p
		res.Values[today] = f(m, b, p)
	}
	return res, nil
}
