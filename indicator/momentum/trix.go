package momentum

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/trend"
)

const DefaultTRIXPeriod = 30

// TRIXLookback is three EMA lookbacks plus one bar for the rate of change.
func TRIXLookback(cfg config.Settings, period int) int {
	return 3*trend.EMALookback(cfg, period) + 1
}

// TRIX is the one-bar percent rate of change of a triple-smoothed EMA.
func TRIX(cfg config.Settings, in []float64, period int) (core.Result, error) {
	const op = "TRIX"
	if err := core.CheckPeriod(op, "period", period, 1, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := TRIXLookback(cfg, period)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return core.Result{}, err
	}
	emaLB := trend.EMALookback(cfg, period)
	e1Begin := lb - 1 - 2*emaLB
	e1 := trend.EMAAt(cfg, in, e1Begin, period, trend.EMAFactor(period))
	e2 := trend.MAOver(cfg, e1, e1Begin, e1Begin+emaLB, period, core.EMA)
	e3 := trend.MAOver(cfg, e2, e1Begin+emaLB, lb-1, period, core.EMA)

	res := core.NewResult(n, lb)
	for i := lb; i < n; i++ {
		if prev := e3[i-1]; prev != 0 {
			res.Values[i] = (e3[i]/prev - 1) * 100
		}
	}
	return res, nil
}
