package trend

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/internal/hilbert"
)

// HTTrendlineLookback is 63 plus the HT_TRENDLINE unstable period.
func HTTrendlineLookback(cfg config.Settings) int {
	return hilbert.PhaseLookback + cfg.UnstablePeriod(config.UnstHTTrendline)
}

// HTTrendline is the Hilbert instantaneous trendline: the average over the
// dominant cycle, smoothed with 4-3-2-1 weights.
func HTTrendline(cfg config.Settings, in []float64) (core.Result, error) {
	const op = "HT_TRENDLINE"
	lb := HTTrendlineLookback(cfg)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	ht := hilbert.NewPhase(in, 0)
	var tr hilbert.Trend
	for !ht.Done() {
		today := ht.Today
		ht.Step()
		v := tr.Next(in, today, ht.SmoothPeriod)
		if today >= lb {
			res.Values[today] = v
		}
	}
	return res, nil
}
