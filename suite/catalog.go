package suite

import (
	"sort"
	"strings"

	"github.com/evdnx/gota"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/momentum"
	"github.com/evdnx/gota/indicator/pattern"
	"github.com/evdnx/gota/indicator/trend"
	"github.com/evdnx/gota/indicator/volatility"
)

// Lines maps a line name ("value", "upper", "signal", ...) to its series.
type Lines map[string]gota.Result

// runner evaluates one study over a frame. period is already defaulted.
type runner struct {
	period int
	run    func(e *gota.Engine, f Frame, period int) (Lines, error)
}

func single(r gota.Result, err error) (Lines, error) {
	if err != nil {
		return nil, err
	}
	return Lines{"value": r}, nil
}

func closeMA(t gota.MAType) runner {
	return runner{trend.DefaultMAPeriod, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		return single(e.MA(f.Close, p, t))
	}}
}

func closeStudy(def int, fn func(e *gota.Engine, in []float64, p int) (gota.Result, error)) runner {
	return runner{def, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		return single(fn(e, f.Close, p))
	}}
}

func hlcStudy(def int, fn func(e *gota.Engine, h, l, c []float64, p int) (gota.Result, error)) runner {
	return runner{def, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		return single(fn(e, f.High, f.Low, f.Close, p))
	}}
}

var catalog = map[string]runner{
	"SMA":   closeMA(core.SMA),
	"EMA":   closeMA(core.EMA),
	"WMA":   closeMA(core.WMA),
	"DEMA":  closeMA(core.DEMA),
	"TEMA":  closeMA(core.TEMA),
	"TRIMA": closeMA(core.TRIMA),
	"KAMA":  closeMA(core.KAMA),
	"T3": {5, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		return single(e.T3(f.Close, p, trend.DefaultT3VFactor))
	}},
	"RSI":       closeStudy(momentum.DefaultRSIPeriod, (*gota.Engine).RSI),
	"CMO":       closeStudy(momentum.DefaultCMOPeriod, (*gota.Engine).CMO),
	"MOM":       closeStudy(momentum.DefaultMomentumPeriod, (*gota.Engine).MOM),
	"ROC":       closeStudy(momentum.DefaultMomentumPeriod, (*gota.Engine).ROC),
	"TRIX":      closeStudy(momentum.DefaultTRIXPeriod, (*gota.Engine).TRIX),
	"LINEARREG": closeStudy(14, (*gota.Engine).LinearReg),
	"TSF":       closeStudy(14, (*gota.Engine).TSF),
	"STDDEV": {5, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		return single(e.StdDev(f.Close, p, 1))
	}},
	"CCI":   hlcStudy(momentum.DefaultCCIPeriod, (*gota.Engine).CCI),
	"WILLR": hlcStudy(momentum.DefaultWillRPeriod, (*gota.Engine).WillR),
	"ADX":   hlcStudy(momentum.DefaultDMPeriod, (*gota.Engine).ADX),
	"ATR":   hlcStudy(volatility.DefaultATRPeriod, (*gota.Engine).ATR),
	"NATR":  hlcStudy(volatility.DefaultATRPeriod, (*gota.Engine).NATR),
	"MFI": {14, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		return single(e.MFI(f.High, f.Low, f.Close, f.Volume, p))
	}},
	"OBV": {0, func(e *gota.Engine, f Frame, _ int) (Lines, error) {
		return single(e.OBV(f.Close, f.Volume))
	}},
	"AD": {0, func(e *gota.Engine, f Frame, _ int) (Lines, error) {
		return single(e.AD(f.High, f.Low, f.Close, f.Volume))
	}},
	"SAR": {0, func(e *gota.Engine, f Frame, _ int) (Lines, error) {
		return single(e.SAR(f.High, f.Low, trend.DefaultSARAcceleration, trend.DefaultSARMaximum))
	}},
	"HT_TRENDLINE": {0, func(e *gota.Engine, f Frame, _ int) (Lines, error) {
		return single(e.HTTrendline(f.Close))
	}},
	"HT_DCPERIOD": {0, func(e *gota.Engine, f Frame, _ int) (Lines, error) {
		return single(e.HTDCPeriod(f.Close))
	}},
	"MACD": {momentum.DefaultSignalPeriod, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		mp := momentum.DefaultMACDParams()
		mp.SignalPeriod = p
		r, err := e.MACD(f.Close, mp)
		if err != nil {
			return nil, err
		}
		return Lines{
			"macd":   {Begin: r.Begin, Values: r.MACD},
			"signal": {Begin: r.Begin, Values: r.Signal},
			"hist":   {Begin: r.Begin, Values: r.Hist},
		}, nil
	}},
	"BBANDS": {5, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		bp := volatility.DefaultBBandsParams()
		bp.Period = p
		r, err := e.BBands(f.Close, bp)
		if err != nil {
			return nil, err
		}
		return Lines{
			"upper":  {Begin: r.Begin, Values: r.Upper},
			"middle": {Begin: r.Begin, Values: r.Middle},
			"lower":  {Begin: r.Begin, Values: r.Lower},
		}, nil
	}},
	"STOCH": {momentum.DefaultStochFastK, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		sp := momentum.DefaultStochParams()
		sp.FastKPeriod = p
		r, err := e.Stoch(f.High, f.Low, f.Close, sp)
		if err != nil {
			return nil, err
		}
		return Lines{"k": {Begin: r.Begin, Values: r.K}, "d": {Begin: r.Begin, Values: r.D}}, nil
	}},
	"AROON": {momentum.DefaultAroonPeriod, func(e *gota.Engine, f Frame, p int) (Lines, error) {
		r, err := e.Aroon(f.High, f.Low, p)
		if err != nil {
			return nil, err
		}
		return Lines{"down": {Begin: r.Begin, Values: r.Down}, "up": {Begin: r.Begin, Values: r.Up}}, nil
	}},
}

// lookup resolves a study name. Candlestick names (CDLDOJI, ...) resolve to
// the pattern recogniser and report signals as floats on the "signal" line.
func lookup(name string) (runner, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if r, ok := catalog[name]; ok {
		return r, true
	}
	p, ok := pattern.ByName(name)
	if !ok {
		return runner{}, false
	}
	return runner{0, func(e *gota.Engine, f Frame, _ int) (Lines, error) {
		r, err := e.CDL(p.ID, f.Open, f.High, f.Low, f.Close)
		if err != nil {
			return nil, err
		}
		vals := make([]float64, len(r.Values))
		for i, v := range r.Values {
			vals[i] = float64(v)
		}
		return Lines{"signal": {Begin: r.Begin, Values: vals}}, nil
	}}, true
}

// Studies lists the non-pattern study names accepted by Run.
func Studies() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
