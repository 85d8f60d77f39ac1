// Package momentum implements the oscillators: directional movement, RSI
// and CMO, the MACD family, stochastics, Aroon and the rate-of-change
// conventions.
package momentum

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

const DefaultDMPeriod = 14

// dmWalker steps through bars yielding the raw directional movement and the
// true range of each new bar.
type dmWalker struct {
	high, low, close []float64
	today            int
	prevHigh         float64
	prevLow          float64
	prevClose        float64
}

func newDMWalker(high, low, close []float64, from int) *dmWalker {
	w := &dmWalker{high: high, low: low, close: close, today: from}
	w.prevHigh, w.prevLow = high[from], low[from]
	if close != nil {
		w.prevClose = close[from]
	}
	return w
}

// next advances one bar. Only one of plus and minus can be non-zero.
func (w *dmWalker) next() (plus, minus, tr float64) {
	w.today++
	h, l := w.high[w.today], w.low[w.today]
	up := h - w.prevHigh
	down := w.prevLow - l
	w.prevHigh, w.prevLow = h, l
	switch {
	case down > 0 && up < down:
		minus = down
	case up > 0 && up > down:
		plus = up
	}
	if w.close != nil {
		tr = core.TrueRange(h, l, w.prevClose)
		w.prevClose = w.close[w.today]
	}
	return plus, minus, tr
}

// wilder applies Wilder's running-sum smoothing: prev - prev/period + v.
func wilder(prev, v float64, period int) float64 {
	return prev - prev/float64(period) + v
}

func checkDMPeriod(op string, period, min int) error {
	return core.CheckPeriod(op, "period", period, min, core.MaxPeriod)
}

// PlusDMLookback is period-1 plus the PLUS_DM unstable period; period 1
// looks back one bar.
func PlusDMLookback(cfg config.Settings, period int) int {
	if period > 1 {
		return period - 1 + cfg.UnstablePeriod(config.UnstPlusDM)
	}
	return 1
}

// MinusDMLookback mirrors PlusDMLookback.
func MinusDMLookback(cfg config.Settings, period int) int {
	if period > 1 {
		return period - 1 + cfg.UnstablePeriod(config.UnstMinusDM)
	}
	return 1
}

// PlusDM is the Wilder-smoothed upward directional movement.
func PlusDM(cfg config.Settings, high, low []float64, period int) (core.Result, error) {
	return directionalMovement(cfg, "PLUS_DM", high, low, period, true)
}

// MinusDM is the Wilder-smoothed downward directional movement.
func MinusDM(cfg config.Settings, high, low []float64, period int) (core.Result, error) {
	return directionalMovement(cfg, "MINUS_DM", high, low, period, false)
}

func directionalMovement(cfg config.Settings, op string, high, low []float64, period int, plus bool) (core.Result, error) {
	if err := checkDMPeriod(op, period, 1); err != nil {
		return core.Result{}, err
	}
	lb := MinusDMLookback(cfg, period)
	if plus {
		lb = PlusDMLookback(cfg, period)
	}
	n, err := core.Prepare(op, lb, high, low)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	pick := func(p, m float64) float64 {
		if plus {
			return p
		}
		return m
	}

	if period == 1 {
		w := newDMWalker(high, low, nil, 0)
		for w.today < n-1 {
			p, m, _ := w.next()
			res.Values[w.today] = pick(p, m)
		}
		return res, nil
	}

	w := newDMWalker(high, low, nil, 0)
	dm := 0.0
	for i := 0; i < period-1; i++ {
		p, m, _ := w.next()
		dm += pick(p, m)
	}
	for w.today < lb {
		p, m, _ := w.next()
		dm = wilder(dm, pick(p, m), period)
	}
	res.Values[lb] = dm
	for w.today < n-1 {
		p, m, _ := w.next()
		dm = wilder(dm, pick(p, m), period)
		res.Values[w.today] = dm
	}
	return res, nil
}
