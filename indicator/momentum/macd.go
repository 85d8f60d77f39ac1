package momentum

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/trend"
)

const (
	DefaultFastPeriod   = 12
	DefaultSlowPeriod   = 26
	DefaultSignalPeriod = 9

	// Fixed smoothing constants of MACDFIX, the classic 12/26 pair.
	macdFixFastK = 0.15
	macdFixSlowK = 0.075
)

// MACDResult holds the three aligned MACD lines.
type MACDResult struct {
	Begin  int
	MACD   []float64
	Signal []float64
	Hist   []float64
}

// MACDParams configures MACD and MACDEXT. The MA types are only honoured by
// MACDEXT; MACD always uses EMAs.
type MACDParams struct {
	FastPeriod   int
	FastMA       core.MAType
	SlowPeriod   int
	SlowMA       core.MAType
	SignalPeriod int
	SignalMA     core.MAType
}

// DefaultMACDParams returns 12/26/9. The MA types are SMA, which MACDEXT
// uses as its declared default.
func DefaultMACDParams() MACDParams {
	return MACDParams{
		FastPeriod:   DefaultFastPeriod,
		SlowPeriod:   DefaultSlowPeriod,
		SignalPeriod: DefaultSignalPeriod,
	}
}

func (p MACDParams) validate(op string, checkTypes bool) error {
	if err := core.CheckPeriod(op, "fastPeriod", p.FastPeriod, 2, core.MaxPeriod); err != nil {
		return err
	}
	if err := core.CheckPeriod(op, "slowPeriod", p.SlowPeriod, 2, core.MaxPeriod); err != nil {
		return err
	}
	if err := core.CheckPeriod(op, "signalPeriod", p.SignalPeriod, 1, core.MaxPeriod); err != nil {
		return err
	}
	if !checkTypes {
		return nil
	}
	for _, c := range []struct {
		name string
		t    core.MAType
	}{{"fastMA", p.FastMA}, {"slowMA", p.SlowMA}, {"signalMA", p.SignalMA}} {
		if err := core.CheckMAType(op, c.name, c.t); err != nil {
			return err
		}
	}
	return nil
}

// ordered swaps fast and slow so that slow is the longer period.
func (p MACDParams) ordered() MACDParams {
	if p.SlowPeriod < p.FastPeriod {
		p.FastPeriod, p.SlowPeriod = p.SlowPeriod, p.FastPeriod
		p.FastMA, p.SlowMA = p.SlowMA, p.FastMA
	}
	return p
}

// MACDLookback is the slow EMA lookback plus the signal EMA lookback.
func MACDLookback(cfg config.Settings, fast, slow, signal int) int {
	if slow < fast {
		slow = fast
	}
	return trend.EMALookback(cfg, slow) + trend.EMALookback(cfg, signal)
}

// MACD is EMA(fast) - EMA(slow) with an EMA signal line.
func MACD(cfg config.Settings, in []float64, p MACDParams) (MACDResult, error) {
	const op = "MACD"
	if err := p.validate(op, false); err != nil {
		return MACDResult{}, err
	}
	p = p.ordered()
	return macd(cfg, op, in, p.FastPeriod, p.SlowPeriod, p.SignalPeriod,
		trend.EMAFactor(p.FastPeriod), trend.EMAFactor(p.SlowPeriod))
}

// MACDFixLookback is MACDLookback for 12/26/signal.
func MACDFixLookback(cfg config.Settings, signal int) int {
	return MACDLookback(cfg, DefaultFastPeriod, DefaultSlowPeriod, signal)
}

// MACDFix is MACD 12/26 with the fixed smoothing constants 0.15 and 0.075.
func MACDFix(cfg config.Settings, in []float64, signal int) (MACDResult, error) {
	const op = "MACDFIX"
	if err := core.CheckPeriod(op, "signalPeriod", signal, 1, core.MaxPeriod); err != nil {
		return MACDResult{}, err
	}
	return macd(cfg, op, in, DefaultFastPeriod, DefaultSlowPeriod, signal, macdFixFastK, macdFixSlowK)
}

func macd(cfg config.Settings, op string, in []float64, fast, slow, signal int, kFast, kSlow float64) (MACDResult, error) {
	lbSlow := trend.EMALookback(cfg, slow)
	lb := lbSlow + trend.EMALookback(cfg, signal)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return MACDResult{}, err
	}
	fastEMA := trend.EMAAt(cfg, in, lbSlow, fast, kFast)
	slowEMA := trend.EMAAt(cfg, in, lbSlow, slow, kSlow)
	line := make([]float64, n)
	for i := lbSlow; i < n; i++ {
		line[i] = fastEMA[i] - slowEMA[i]
	}
	sig := core.Realign(trend.EMAAt(cfg, line[lbSlow:], lb-lbSlow, signal, trend.EMAFactor(signal)), lbSlow, n)
	return assembleMACD(line, sig, lb), nil
}

func assembleMACD(line, sig []float64, begin int) MACDResult {
	n := len(line)
	r := MACDResult{Begin: begin, MACD: make([]float64, n), Signal: sig, Hist: make([]float64, n)}
	for i := begin; i < n; i++ {
		r.MACD[i] = line[i]
		r.Hist[i] = line[i] - sig[i]
	}
	return r
}

// MACDExtLookback is the larger of the two line lookbacks plus the signal
// lookback.
func MACDExtLookback(cfg config.Settings, p MACDParams) int {
	fast := trend.MALookback(cfg, p.FastPeriod, p.FastMA)
	slow := trend.MALookback(cfg, p.SlowPeriod, p.SlowMA)
	return max(fast, slow) + trend.MALookback(cfg, p.SignalPeriod, p.SignalMA)
}

// MACDExt is MACD with a selectable moving average for each line.
func MACDExt(cfg config.Settings, in []float64, p MACDParams) (MACDResult, error) {
	const op = "MACDEXT"
	if err := p.validate(op, true); err != nil {
		return MACDResult{}, err
	}
	p = p.ordered()
	largest := max(trend.MALookback(cfg, p.FastPeriod, p.FastMA), trend.MALookback(cfg, p.SlowPeriod, p.SlowMA))
	lb := MACDExtLookback(cfg, p)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return MACDResult{}, err
	}
	fastMA := trend.MAAt(cfg, in, largest, p.FastPeriod, p.FastMA)
	slowMA := trend.MAAt(cfg, in, largest, p.SlowPeriod, p.SlowMA)
	line := make([]float64, n)
	for i := largest; i < n; i++ {
		line[i] = fastMA[i] - slowMA[i]
	}
	sig := trend.MAOver(cfg, line, largest, lb, p.SignalPeriod, p.SignalMA)
	return assembleMACD(line, sig, lb), nil
}

// PriceOscParams configures APO and PPO.
type PriceOscParams struct {
	FastPeriod int
	SlowPeriod int
	MA         core.MAType
}

// DefaultPriceOscParams returns 12/26 SMA.
func DefaultPriceOscParams() PriceOscParams {
	return PriceOscParams{FastPeriod: DefaultFastPeriod, SlowPeriod: DefaultSlowPeriod, MA: core.SMA}
}

// PriceOscLookback is the larger of the two MA lookbacks.
func PriceOscLookback(cfg config.Settings, p PriceOscParams) int {
	return max(trend.MALookback(cfg, p.FastPeriod, p.MA), trend.MALookback(cfg, p.SlowPeriod, p.MA))
}

// APO is the absolute price oscillator, fast MA minus slow MA.
func APO(cfg config.Settings, in []float64, p PriceOscParams) (core.Result, error) {
	return priceOsc(cfg, "APO", in, p, func(fast, slow float64) float64 { return fast - slow })
}

// PPO is the percentage price oscillator, 100*(fast-slow)/slow.
func PPO(cfg config.Settings, in []float64, p PriceOscParams) (core.Result, error) {
	return priceOsc(cfg, "PPO", in, p, func(fast, slow float64) float64 {
		if core.IsZero(slow) {
			return 0
		}
		return (fast - slow) / slow * 100
	})
}

func priceOsc(cfg config.Settings, op string, in []float64, p PriceOscParams, f func(fast, slow float64) float64) (core.Result, error) {
	if err := core.CheckPeriod(op, "fastPeriod", p.FastPeriod, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckPeriod(op, "slowPeriod", p.SlowPeriod, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckMAType(op, "maType", p.MA); err != nil {
		return core.Result{}, err
	}
	if p.SlowPeriod < p.FastPeriod {
		p.FastPeriod, p.SlowPeriod = p.SlowPeriod, p.FastPeriod
	}
	lb := PriceOscLookback(cfg, p)
	n, err := core.Prepare(op, lb, in)
	if err != nil {
		return core.Result{}, err
	}
	fast := trend.MAAt(cfg, in, lb, p.FastPeriod, p.MA)
	slow := trend.MAAt(cfg, in, lb, p.SlowPeriod, p.MA)
	res := core.NewResult(n, lb)
	for i := lb; i < n; i++ {
		res.Values[i] = f(fast[i], slow[i])
	}
	return res, nil
}
