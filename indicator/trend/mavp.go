package trend

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

const (
	DefaultMAVPMinPeriod = 2
	DefaultMAVPMaxPeriod = 30
)

// MAVPLookback is the MA lookback at maxPeriod.
func MAVPLookback(cfg config.Settings, minPeriod, maxPeriod int, t core.MAType) int {
	return MALookback(cfg, maxPeriod, t)
}

// MAVP applies, at each bar, the moving average whose period is given by
// periods[i] clamped to [minPeriod, maxPeriod]. Every distinct period is
// computed once, aligned to the lookback of maxPeriod.
func MAVP(cfg config.Settings, in, periods []float64, minPeriod, maxPeriod int, t core.MAType) (core.Result, error) {
	const op = "MAVP"
	if err := core.CheckPeriod(op, "minPeriod", minPeriod, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckPeriod(op, "maxPeriod", maxPeriod, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckMAType(op, "maType", t); err != nil {
		return core.Result{}, err
	}
	lb := MAVPLookback(cfg, minPeriod, maxPeriod, t)
	n, err := core.Prepare(op, lb, in, periods)
	if err != nil {
		return core.Result{}, err
	}

	local := make([]int, n)
	for i := lb; i < n; i++ {
		p := int(periods[i])
		if p < minPeriod {
			p = minPeriod
		} else if p > maxPeriod {
			p = maxPeriod
		}
		local[i] = p
	}

	out := make([]float64, n)
	for i := lb; i < n; i++ {
		p := local[i]
		if p == 0 {
			continue
		}
		ma := MAAt(cfg, in, lb, p, t)
		for j := i; j < n; j++ {
			if local[j] == p {
				local[j] = 0
				out[j] = ma[j]
			}
		}
	}
	return core.Result{Begin: lb, Values: out}, nil
}
