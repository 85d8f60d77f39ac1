package trend

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/internal/hilbert"
)

// MAMAResult holds the MESA adaptive average and its following average.
type MAMAResult struct {
	Begin int
	MAMA  []float64
	FAMA  []float64
}

// MAMALookback is 32 plus the MAMA unstable period.
func MAMALookback(cfg config.Settings) int {
	return hilbert.PeriodLookback + cfg.UnstablePeriod(config.UnstMAMA)
}

// MAMA adapts alpha to the rate of change of the Hilbert phase: alpha is
// fastLimit divided by the phase delta, floored at slowLimit.
func MAMA(cfg config.Settings, in []float64, fastLimit, slowLimit float64) (MAMAResult, error) {
	const op = "MAMA"
	if err := core.CheckReal(op, "fastLimit", fastLimit, 0.01, 0.99); err != nil {
		return MAMAResult{}, err
	}
	if err := core.CheckReal(op, "slowLimit", slowLimit, 0.01, 0.99); err != nil {
		return MAMAResult{}, err
	}
	lb := MAMALookback(cfg)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return MAMAResult{}, err
	}
	m, f := mamaAt(cfg, in, lb, fastLimit, slowLimit)
	return MAMAResult{Begin: lb, MAMA: m, FAMA: f}, nil
}

func mamaAt(cfg config.Settings, in []float64, start int, fast, slow float64) ([]float64, []float64) {
	outM := make([]float64, len(in))
	outF := make([]float64, len(in))
	ht := hilbert.NewPeriod(in, start-MAMALookback(cfg))
	var mama, fama, prevPhase float64
	for !ht.Done() {
		today := ht.Today
		ht.Step()

		delta := prevPhase - ht.Phase
		prevPhase = ht.Phase
		if delta < 1 {
			delta = 1
		}
		alpha := fast
		if delta > 1 {
			alpha = fast / delta
			if alpha < slow {
				alpha = slow
			}
		}
		mama = alpha*in[today] + (1-alpha)*mama
		alpha *= 0.5
		fama = alpha*mama + (1-alpha)*fama
		if today >= start {
			outM[today] = mama
			outF[today] = fama
		}
	}
	return outM, outF
}
