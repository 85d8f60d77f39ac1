package momentum

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

const (
	DefaultRSIPeriod = 14
	DefaultCMOPeriod = 14
)

// RSILookback is period plus the RSI unstable period, one less under
// Metastock compatibility.
func RSILookback(cfg config.Settings, period int) int {
	return gainLossLookback(cfg, period, config.UnstRSI)
}

// CMOLookback follows the same rule as RSILookback with the CMO entry.
func CMOLookback(cfg config.Settings, period int) int {
	return gainLossLookback(cfg, period, config.UnstCMO)
}

func gainLossLookback(cfg config.Settings, period int, id config.UnstableID) int {
	lb := period + cfg.UnstablePeriod(id)
	if cfg.Metastock() {
		lb--
	}
	return lb
}

// RSI is Wilder's relative strength index: 100 * avgGain/(avgGain+avgLoss).
// A window without movement yields 0; a window without losses yields 100.
func RSI(cfg config.Settings, in []float64, period int) (core.Result, error) {
	const op = "RSI"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := RSILookback(cfg, period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: rsiAt(cfg, in, lb, period)}, nil
}

// CMO is Chande's momentum oscillator: 100 * (gain-loss)/(gain+loss) over
// Wilder-smoothed averages.
func CMO(cfg config.Settings, in []float64, period int) (core.Result, error) {
	const op = "CMO"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := CMOLookback(cfg, period)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: gainLoss(cfg, in, lb, period, config.UnstCMO, cmoRatio)}, nil
}

func rsiRatio(gain, loss float64) float64 {
	if sum := gain + loss; !core.IsZero(sum) {
		return 100 * (gain / sum)
	}
	return 0
}

func cmoRatio(gain, loss float64) float64 {
	if sum := gain + loss; !core.IsZero(sum) {
		return 100 * ((gain - loss) / sum)
	}
	return 0
}

func rsiAt(cfg config.Settings, in []float64, start, period int) []float64 {
	return gainLoss(cfg, in, start, period, config.UnstRSI, rsiRatio)
}

// gainLoss runs the shared Wilder gain/loss recursion with its first output
// at start. Under Metastock compatibility without an unstable period, the
// first output treats the bar before the window as unchanged.
func gainLoss(cfg config.Settings, in []float64, start, period int, id config.UnstableID, ratio func(gain, loss float64) float64) []float64 {
	out := make([]float64, len(in))
	p := float64(period)
	today := start - gainLossLookback(cfg, period, id)
	prev := in[today]

	accumulate := func(gain, loss *float64, v float64) {
		d := v - prev
		prev = v
		if d < 0 {
			*loss -= d
		} else {
			*gain += d
		}
	}

	if cfg.Metastock() && cfg.UnstablePeriod(id) == 0 {
		saved := prev
		var gain, loss float64
		for i := 0; i < period; i++ {
			accumulate(&gain, &loss, in[today])
			today++
		}
		out[start] = ratio(gain/p, loss/p)
		if today >= len(in) {
			return out
		}
		today -= period
		prev = saved
	}

	var gain, loss float64
	today++
	for i := 0; i < period; i++ {
		accumulate(&gain, &loss, in[today])
		today++
	}
	gain /= p
	loss /= p

	smooth := func() {
		gain *= p - 1
		loss *= p - 1
		accumulate(&gain, &loss, in[today])
		gain /= p
		loss /= p
		today++
	}
	if today > start {
		out[today-1] = ratio(gain, loss)
	} else {
		for today < start {
			smooth()
		}
	}
	for today < len(in) {
		smooth()
		out[today-1] = ratio(gain, loss)
	}
	return out
}
