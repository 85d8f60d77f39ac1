package momentum

import "github.com/evdnx/gota/indicator/core"

const DefaultAroonPeriod = 14

// AroonResult holds the two Aroon lines.
type AroonResult struct {
	Begin int
	Down  []float64
	Up    []float64
}

// AroonLookback is period: each window spans period+1 bars.
func AroonLookback(period int) int { return period }

// Aroon measures how recently the window's high and low were set:
// 100*(period - bars since extreme)/period. Ties favour the latest bar.
func Aroon(high, low []float64, period int) (AroonResult, error) {
	const op = "AROON"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return AroonResult{}, err
	}
	n, err := core.Prepare(op, AroonLookback(period), high, low)
	if err != nil {
		return AroonResult{}, err
	}
	res := AroonResult{Begin: period, Down: make([]float64, n), Up: make([]float64, n)}
	aroon(high, low, period, func(i int, down, up float64) {
		res.Down[i], res.Up[i] = down, up
	})
	return res, nil
}

// AroonOsc is Aroon up minus Aroon down.
func AroonOsc(high, low []float64, period int) (core.Result, error) {
	const op = "AROONOSC"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	n, err := core.Prepare(op, AroonLookback(period), high, low)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, period)
	aroon(high, low, period, func(i int, down, up float64) {
		res.Values[i] = up - down
	})
	return res, nil
}

// aroon tracks the window extremes incrementally, rescanning only when the
// current extreme leaves the window.
func aroon(high, low []float64, period int, emit func(i int, down, up float64)) {
	factor := 100 / float64(period)
	lowestIdx, highestIdx := -1, -1
	var lowest, highest float64
	for today := period; today < len(high); today++ {
		trailing := today - period
		if lowestIdx < trailing {
			lowestIdx = core.LowestIndex(low, trailing, today)
			lowest = low[lowestIdx]
		} else if low[today] <= lowest {
			lowestIdx, lowest = today, low[today]
		}
		if highestIdx < trailing {
			highestIdx = core.HighestIndex(high, trailing, today)
			highest = high[highestIdx]
		} else if high[today] >= highest {
			highestIdx, highest = today, high[today]
		}
		emit(today,
			factor*float64(period-(today-lowestIdx)),
			factor*float64(period-(today-highestIdx)))
	}
}
