package momentum

import (
	"math"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
)

// PlusDILookback is period plus the PLUS_DI unstable period; period 1 looks
// back one bar.
func PlusDILookback(cfg config.Settings, period int) int {
	if period > 1 {
		return period + cfg.UnstablePeriod(config.UnstPlusDI)
	}
	return 1
}

// MinusDILookback mirrors PlusDILookback.
func MinusDILookback(cfg config.Settings, period int) int {
	if period > 1 {
		return period + cfg.UnstablePeriod(config.UnstMinusDI)
	}
	return 1
}

// DXLookback is period plus the DX unstable period.
func DXLookback(cfg config.Settings, period int) int {
	return period + cfg.UnstablePeriod(config.UnstDX)
}

// ADXLookback is 2*period-1 plus the ADX unstable period.
func ADXLookback(cfg config.Settings, period int) int {
	return 2*period - 1 + cfg.UnstablePeriod(config.UnstADX)
}

// ADXRLookback adds period-1 bars and the ADXR unstable period to ADX.
func ADXRLookback(cfg config.Settings, period int) int {
	return period - 1 + ADXLookback(cfg, period) + cfg.UnstablePeriod(config.UnstADXR)
}

// dmState carries Wilder-smoothed +DM, -DM and true range.
type dmState struct {
	w               *dmWalker
	period          int
	plusDM, minusDM float64
	trueRange       float64
}

// primeDM accumulates period-1 bars from from as plain sums.
func primeDM(high, low, close []float64, from, period int) *dmState {
	s := &dmState{w: newDMWalker(high, low, close, from), period: period}
	for i := 0; i < period-1; i++ {
		p, m, tr := s.w.next()
		s.plusDM += p
		s.minusDM += m
		s.trueRange += tr
	}
	return s
}

func (s *dmState) step() {
	p, m, tr := s.w.next()
	s.plusDM = wilder(s.plusDM, p, s.period)
	s.minusDM = wilder(s.minusDM, m, s.period)
	s.trueRange = wilder(s.trueRange, tr, s.period)
}

// di returns +DI and -DI; ok is false when the true range is zero.
func (s *dmState) di() (plus, minus float64, ok bool) {
	if core.IsZero(s.trueRange) {
		return 0, 0, false
	}
	return 100 * (s.plusDM / s.trueRange), 100 * (s.minusDM / s.trueRange), true
}

// dx returns the directional index; ok is false when it is undefined.
func (s *dmState) dx() (float64, bool) {
	plus, minus, ok := s.di()
	if !ok {
		return 0, false
	}
	sum := plus + minus
	if core.IsZero(sum) {
		return 0, false
	}
	return 100 * (math.Abs(minus-plus) / sum), true
}

// PlusDI is 100 * smoothed(+DM) / smoothed(TR).
func PlusDI(cfg config.Settings, high, low, close []float64, period int) (core.Result, error) {
	return directionalIndicator(cfg, "PLUS_DI", high, low, close, period, true)
}

// MinusDI is 100 * smoothed(-DM) / smoothed(TR).
func MinusDI(cfg config.Settings, high, low, close []float64, period int) (core.Result, error) {
	return directionalIndicator(cfg, "MINUS_DI", high, low, close, period, false)
}

func directionalIndicator(cfg config.Settings, op string, high, low, close []float64, period int, plus bool) (core.Result, error) {
	if err := checkDMPeriod(op, period, 1); err != nil {
		return core.Result{}, err
	}
	lb := MinusDILookback(cfg, period)
	if plus {
		lb = PlusDILookback(cfg, period)
	}
	n, err := core.Prepare(op, lb, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)

	if period == 1 {
		w := newDMWalker(high, low, close, 0)
		for w.today < n-1 {
			p, m, tr := w.next()
			v := m
			if plus {
				v = p
			}
			if v > 0 && !core.IsZero(tr) {
				res.Values[w.today] = 100 * v / tr
			}
		}
		return res, nil
	}

	s := primeDM(high, low, close, 0, period)
	emit := func() {
		p, m, _ := s.di()
		if plus {
			res.Values[s.w.today] = p
		} else {
			res.Values[s.w.today] = m
		}
	}
	for s.w.today < lb {
		s.step()
	}
	emit()
	for s.w.today < n-1 {
		s.step()
		emit()
	}
	return res, nil
}

// DX is the directional movement index 100*|+DI - -DI|/(+DI + -DI). An
// undefined bar repeats the previous value.
func DX(cfg config.Settings, high, low, close []float64, period int) (core.Result, error) {
	const op = "DX"
	if err := checkDMPeriod(op, period, 2); err != nil {
		return core.Result{}, err
	}
	lb := DXLookback(cfg, period)
	n, err := core.Prepare(op, lb, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	s := primeDM(high, low, close, 0, period)
	for s.w.today < lb {
		s.step()
	}
	res.Values[lb], _ = s.dx()
	for s.w.today < n-1 {
		s.step()
		if v, ok := s.dx(); ok {
			res.Values[s.w.today] = v
		} else {
			res.Values[s.w.today] = res.Values[s.w.today-1]
		}
	}
	return res, nil
}

// ADX is the Wilder-smoothed DX, seeded with the mean of the first period
// DX values.
func ADX(cfg config.Settings, high, low, close []float64, period int) (core.Result, error) {
	const op = "ADX"
	if err := checkDMPeriod(op, period, 2); err != nil {
		return core.Result{}, err
	}
	lb := ADXLookback(cfg, period)
	if _, err := core.Prepare(op, lb, high, low, close); err != nil {
		return core.Result{}, err
	}
	return core.Result{Begin: lb, Values: adxAt(cfg, high, low, close, lb, period)}, nil
}

// adxAt computes ADX with its first output at start.
func adxAt(cfg config.Settings, high, low, close []float64, start, period int) []float64 {
	out := make([]float64, len(high))
	s := primeDM(high, low, close, start-ADXLookback(cfg, period), period)
	sumDX := 0.0
	for i := 0; i < period; i++ {
		s.step()
		if v, ok := s.dx(); ok {
			sumDX += v
		}
	}
	adx := sumDX / float64(period)
	smooth := func() {
		s.step()
		if v, ok := s.dx(); ok {
			adx = (adx*float64(period-1) + v) / float64(period)
		}
	}
	for s.w.today < start {
		smooth()
	}
	out[start] = adx
	for s.w.today < len(high)-1 {
		smooth()
		out[s.w.today] = adx
	}
	return out
}

// ADXR averages the current ADX with the ADX period-1 bars earlier.
func ADXR(cfg config.Settings, high, low, close []float64, period int) (core.Result, error) {
	const op = "ADXR"
	if err := checkDMPeriod(op, period, 2); err != nil {
		return core.Result{}, err
	}
	lb := ADXRLookback(cfg, period)
	n, err := core.Prepare(op, lb, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	adx := adxAt(cfg, high, low, close, lb-(period-1), period)
	res := core.NewResult(n, lb)
	for i := lb; i < n; i++ {
		res.Values[i] = (adx[i] + adx[i-(period-1)]) / 2
	}
	return res, nil
}
