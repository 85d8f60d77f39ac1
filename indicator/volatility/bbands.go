package volatility

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/stats"
	"github.com/evdnx/gota/indicator/trend"
)

const (
	DefaultBBandsPeriod = 5
	DefaultBBandsDev    = 2.0
)

// BBandsParams configures Bollinger bands.
type BBandsParams struct {
	Period  int
	NbDevUp float64
	NbDevDn float64
	MA      core.MAType
}

// DefaultBBandsParams returns 5 periods, 2 deviations each way, SMA.
func DefaultBBandsParams() BBandsParams {
	return BBandsParams{Period: DefaultBBandsPeriod, NbDevUp: DefaultBBandsDev, NbDevDn: DefaultBBandsDev, MA: core.SMA}
}

// BBandsResult holds the three bands.
type BBandsResult struct {
	Begin  int
	Upper  []float64
	Middle []float64
	Lower  []float64
}

// BBandsLookback is the larger of the MA lookback and the deviation window.
func BBandsLookback(cfg config.Settings, p BBandsParams) int {
	return max(trend.MALookback(cfg, p.Period, p.MA), p.Period-1)
}

// BBands places bands nbDev population standard deviations around a moving
// average. With an SMA middle band the deviation reuses the average.
func BBands(cfg config.Settings, in []float64, p BBandsParams) (BBandsResult, error) {
	const op = "BBANDS"
	if err := core.CheckPeriod(op, "period", p.Period, 2, core.MaxPeriod); err != nil {
		return BBandsResult{}, err
	}
	if err := core.CheckReal(op, "nbDevUp", p.NbDevUp, core.RealMin, core.RealMax); err != nil {
		return BBandsResult{}, err
	}
	if err := core.CheckReal(op, "nbDevDn", p.NbDevDn, core.RealMin, core.RealMax); err != nil {
		return BBandsResult{}, err
	}
	if err := core.CheckMAType(op, "maType", p.MA); err != nil {
		return BBandsResult{}, err
	}
	lb := BBandsLookback(cfg, p)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return BBandsResult{}, err
	}

	middle := trend.MAAt(cfg, in, lb, p.Period, p.MA)
	var sd []float64
	if p.MA == core.SMA {
		sd = stats.StdDevAround(in, middle, p.Period, lb)
	} else {
		sd = stats.StdDevAt(in, p.Period, lb)
	}

	res := BBandsResult{Begin: lb, Upper: make([]float64, n), Middle: middle, Lower: make([]float64, n)}
	for i := lb; i < n; i++ {
		res.Upper[i] = middle[i] + p.NbDevUp*sd[i]
		res.Lower[i] = middle[i] - p.NbDevDn*sd[i]
	}
	return res, nil
}
