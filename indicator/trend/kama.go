package trend

import (
	"math"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

const (
	kamaSlowest = 2.0 / (30.0 + 1.0)
	kamaSpread  = 2.0/(2.0+1.0) - kamaSlowest
)

// KAMALookback is period plus the KAMA unstable period.
func KAMALookback(cfg config.Settings, period int) int {
	return period + cfg.UnstablePeriod(config.UnstKAMA)
}

// KAMA is Kaufman's adaptive moving average. The efficiency ratio
// |change over period| / sum|bar changes| scales the smoothing constant
// between 2/31 and 2/3, squared.
func KAMA(cfg config.Settings, in []float64, period int) (core.Result, error) {
	const op = "KAMA"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := KAMALookback(cfg, period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: kama(in, period, lb)}, nil
}

func kamaConstant(periodROC, sumROC float64) float64 {
	var er float64
	if sumROC <= periodROC || core.IsZero(sumROC) {
		er = 1
	} else {
		er = math.Abs(periodROC / sumROC)
	}
	sc := er*kamaSpread + kamaSlowest
	return sc * sc
}

// kama emits its first value at index lb; the first lb-period outputs after
// the seed are consumed by the unstable period.
func kama(in []float64, period, lb int) []float64 {
	out := make([]float64, len(in))
	today, trailing := 0, 0

	sumROC := 0.0
	for i := 0; i < period; i++ {
		sumROC += math.Abs(in[today] - in[today+1])
		today++
	}
	prev := in[today-1]

	periodROC := in[today] - in[trailing]
	trailingValue := in[trailing]
	trailing++
	prev += (in[today] - prev) * kamaConstant(periodROC, sumROC)
	today++

	step := func() {
		v := in[today]
		tv := in[trailing]
		trailing++
		periodROC = v - tv
		sumROC -= math.Abs(trailingValue - tv)
		sumROC += math.Abs(v - in[today-1])
		trailingValue = tv
		prev += (v - prev) * kamaConstant(periodROC, sumROC)
		today++
	}
	for today <= lb {
		step()
	}
	out[lb] = prev
	for today < len(in) {
		step()
		out[today-1] = prev
	}
	return out
}
