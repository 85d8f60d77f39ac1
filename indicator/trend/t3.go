package trend

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

// T3Lookback is 6*(period-1) plus the T3 unstable period.
func T3Lookback(cfg config.Settings, period int) int {
	return 6*(period-1) + cfg.UnstablePeriod(config.UnstT3)
}

// T3 is Tillson's six-stage EMA cascade combined with coefficients derived
// from the volume factor.
func T3(cfg config.Settings, in []float64, period int, vFactor float64) (core.Result, error) {
	const op = "T3"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckReal(op, "vFactor", vFactor, 0, 1); err != nil {
		return core.Result{}, err
	}
	lb := T3Lookback(cfg, period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: t3(in, period, vFactor, lb)}, nil
}

// t3 seeds every stage with the average of its first period inputs, each
// stage starting once the previous one has produced period values.
func t3(in []float64, period int, vFactor float64, lb int) []float64 {
	out := make([]float64, len(in))
	k := EMAFactor(period)
	omk := 1 - k
	p := float64(period)
	today := 0

	var e [6]float64
	// step folds in[today] through the first n stages.
	step := func(n int) {
		e[0] = k*in[today] + omk*e[0]
		for j := 1; j < n; j++ {
			e[j] = k*e[j-1] + omk*e[j]
		}
		today++
	}

	sum := 0.0
	for i := 0; i < period; i++ {
		sum += in[today]
		today++
	}
	e[0] = sum / p
	for stage := 1; stage < 6; stage++ {
		sum = e[stage-1]
		for i := period - 1; i > 0; i-- {
			step(stage)
			sum += e[stage-1]
		}
		e[stage] = sum / p
	}
	for today <= lb {
		step(6)
	}

	b2 := vFactor * vFactor
	c1 := -b2 * vFactor
	c2 := 3 * (b2 - c1)
	c3 := -6*b2 - 3*(vFactor-c1)
	c4 := 1 + 3*vFactor - c1 + 3*b2
	out[lb] = c1*e[5] + c2*e[4] + c3*e[3] + c4*e[2]
	for today < len(in) {
		step(6)
		out[today-1] = c1*e[5] + c2*e[4] + c3*e[3] + c4*e[2]
	}
	return out
}
