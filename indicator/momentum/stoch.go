package momentum

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/trend"
)

const (
	DefaultStochFastK = 5
	DefaultStochSlowK = 3
	DefaultStochSlowD = 3
	DefaultStochFastD = 3

	DefaultStochRSIPeriod = 14
	DefaultWillRPeriod    = 14
)

// StochResult holds the %K and %D lines.
type StochResult struct {
	Begin int
	K     []float64
	D     []float64
}

// StochParams configures the slow stochastic.
type StochParams struct {
	FastKPeriod int
	SlowKPeriod int
	SlowKMA     core.MAType
	SlowDPeriod int
	SlowDMA     core.MAType
}

// DefaultStochParams returns 5, 3 SMA, 3 SMA.
func DefaultStochParams() StochParams {
	return StochParams{FastKPeriod: DefaultStochFastK, SlowKPeriod: DefaultStochSlowK, SlowDPeriod: DefaultStochSlowD}
}

// StochFParams configures the fast stochastic and STOCHRSI.
type StochFParams struct {
	FastKPeriod int
	FastDPeriod int
	FastDMA     core.MAType
}

// DefaultStochFParams returns 5, 3 SMA.
func DefaultStochFParams() StochFParams {
	return StochFParams{FastKPeriod: DefaultStochFastK, FastDPeriod: DefaultStochFastD}
}

func (p StochFParams) validate(op string) error {
	if err := core.CheckPeriod(op, "fastKPeriod", p.FastKPeriod, 1, core.MaxPeriod); err != nil {
		return err
	}
	if err := core.CheckPeriod(op, "fastDPeriod", p.FastDPeriod, 1, core.MaxPeriod); err != nil {
		return err
	}
	return core.CheckMAType(op, "fastDMA", p.FastDMA)
}

// StochFLookback is fastK-1 plus the %D MA lookback.
func StochFLookback(cfg config.Settings, p StochFParams) int {
	return p.FastKPeriod - 1 + trend.MALookback(cfg, p.FastDPeriod, p.FastDMA)
}

// StochLookback is fastK-1 plus both smoothing lookbacks.
func StochLookback(cfg config.Settings, p StochParams) int {
	return p.FastKPeriod - 1 + trend.MALookback(cfg, p.SlowKPeriod, p.SlowKMA) + trend.MALookback(cfg, p.SlowDPeriod, p.SlowDMA)
}

// rawK computes 100*(close-lowest)/(highest-lowest) over fastK bars for
// every index from from on. A flat window yields 0.
func rawK(high, low, close []float64, fastK, from int) []float64 {
	out := make([]float64, len(close))
	lb := fastK - 1
	for i := from; i < len(close); i++ {
		hh := high[core.HighestIndex(high, i-lb, i)]
		ll := low[core.LowestIndex(low, i-lb, i)]
		if diff := (hh - ll) / 100; diff != 0 {
			out[i] = (close[i] - ll) / diff
		}
	}
	return out
}

// StochF is the fast stochastic: raw %K and its moving average %D.
func StochF(cfg config.Settings, high, low, close []float64, p StochFParams) (StochResult, error) {
	const op = "STOCHF"
	if err := p.validate(op); err != nil {
		return StochResult{}, err
	}
	lb := StochFLookback(cfg, p)
	if _, err := core.Prepare(op, lb, high, low, close); err != nil {
		return StochResult{}, err
	}
	return stochF(cfg, high, low, close, p, lb), nil
}

// stochF computes the fast stochastic with the first output at start.
func stochF(cfg config.Settings, high, low, close []float64, p StochFParams, start int) StochResult {
	lbD := trend.MALookback(cfg, p.FastDPeriod, p.FastDMA)
	kFrom := start - lbD
	k := rawK(high, low, close, p.FastKPeriod, kFrom)
	d := trend.MAOver(cfg, k, kFrom, start, p.FastDPeriod, p.FastDMA)
	for i := kFrom; i < start; i++ {
		k[i] = 0
	}
	return StochResult{Begin: start, K: k, D: d}
}

// Stoch is the slow stochastic: %K smoothed once into slow %K and again
// into %D.
func Stoch(cfg config.Settings, high, low, close []float64, p StochParams) (StochResult, error) {
	const op = "STOCH"
	if err := core.CheckPeriod(op, "fastKPeriod", p.FastKPeriod, 1, core.MaxPeriod); err != nil {
		return StochResult{}, err
	}
	if err := core.CheckPeriod(op, "slowKPeriod", p.SlowKPeriod, 1, core.MaxPeriod); err != nil {
		return StochResult{}, err
	}
	if err := core.CheckPeriod(op, "slowDPeriod", p.SlowDPeriod, 1, core.MaxPeriod); err != nil {
		return StochResult{}, err
	}
	if err := core.CheckMAType(op, "slowKMA", p.SlowKMA); err != nil {
		return StochResult{}, err
	}
	if err := core.CheckMAType(op, "slowDMA", p.SlowDMA); err != nil {
		return StochResult{}, err
	}
	lb := StochLookback(cfg, p)
	n, err := core.Prepare(op, lb, high, low, close)
	if err != nil {
		return StochResult{}, err
	}

	kFrom := p.FastKPeriod - 1
	slowKFrom := kFrom + trend.MALookback(cfg, p.SlowKPeriod, p.SlowKMA)
	k := rawK(high, low, close, p.FastKPeriod, kFrom)
	slowK := trend.MAOver(cfg, k, kFrom, slowKFrom, p.SlowKPeriod, p.SlowKMA)
	slowD := trend.MAOver(cfg, slowK, slowKFrom, lb, p.SlowDPeriod, p.SlowDMA)

	res := StochResult{Begin: lb, K: make([]float64, n), D: slowD}
	copy(res.K[lb:], slowK[lb:])
	return res, nil
}

// StochRSIParams configures STOCHRSI.
type StochRSIParams struct {
	Period int
	StochFParams
}

// DefaultStochRSIParams returns 14, 5, 3 SMA.
func DefaultStochRSIParams() StochRSIParams {
	return StochRSIParams{Period: DefaultStochRSIPeriod, StochFParams: DefaultStochFParams()}
}

// StochRSILookback is the RSI lookback plus the fast stochastic lookback
// plus the STOCHRSI unstable period.
func StochRSILookback(cfg config.Settings, p StochRSIParams) int {
	return RSILookback(cfg, p.Period) + StochFLookback(cfg, p.StochFParams) + cfg.UnstablePeriod(config.UnstStochRSI)
}

// StochRSI applies the fast stochastic to the RSI series.
func StochRSI(cfg config.Settings, in []float64, p StochRSIParams) (StochResult, error) {
	const op = "STOCHRSI"
	if err := core.CheckPeriod(op, "period", p.Period, 2, core.MaxPeriod); err != nil {
		return StochResult{}, err
	}
	if err := p.validate(op); err != nil {
		return StochResult{}, err
	}
	lb := StochRSILookback(cfg, p)
	if _, err := core.Prepare(op, lb, in); err != nil {
		return StochResult{}, err
	}
	rsiStart := lb - StochFLookback(cfg, p.StochFParams)
	rsi := rsiAt(cfg, in, rsiStart, p.Period)
	return stochOver(cfg, rsi, rsiStart, lb, p.StochFParams), nil
}

// stochOver runs the fast stochastic on one series valid from from, so that
// seeding never touches the undefined prefix.
func stochOver(cfg config.Settings, src []float64, from, start int, p StochFParams) StochResult {
	sub := src[from:]
	r := stochF(cfg, sub, sub, sub, p, start-from)
	return StochResult{
		Begin: start,
		K:     core.Realign(r.K, from, len(src)),
		D:     core.Realign(r.D, from, len(src)),
	}
}

// WillRLookback is period-1.
func WillRLookback(period int) int { return period - 1 }

// WillR is Williams %R: -100*(highest-close)/(highest-lowest).
func WillR(high, low, close []float64, period int) (core.Result, error) {
	const op = "WILLR"
	if err := core.CheckPeriod(op, "period", period, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := WillRLookback(period)
	n, err := core.Prepare(op, lb, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, lb)
	for i := lb; i < n; i++ {
		hh := high[core.HighestIndex(high, i-lb, i)]
		ll := low[core.LowestIndex(low, i-lb, i)]
		if diff := (hh - ll) / -100; diff != 0 {
			res.Values[i] = (hh - close[i]) / diff
		}
	}
	return res, nil
}
