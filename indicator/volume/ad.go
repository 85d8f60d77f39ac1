// Package volume implements the volume-weighted indicators: the
// accumulation/distribution line and oscillator, on-balance volume and the
// money flow index.
package volume

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/trend"
)

const (
	DefaultADOSCFast = 3
	DefaultADOSCSlow = 10
)

// adStep returns the money flow volume of one bar: the close location
// within the range times volume. Bars without range contribute nothing.
func adStep(high, low, close, volume float64) float64 {
	if r := high - low; r > 0 {
		return ((close - low) - (high - close)) / r * volume
	}
	return 0
}

// AD is the Chaikin accumulation/distribution line.
func AD(high, low, close, volume []float64) (core.Result, error) {
	n, err := core.Prepare("AD", 0, high, low, close, volume)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, 0)
	ad := 0.0
	for i := 0; i < n; i++ {
		ad += adStep(high[i], low[i], close[i], volume[i])
		res.Values[i] = ad
	}
	return res, nil
}

// ADOSCLookback is the EMA lookback of the slower period.
func ADOSCLookback(cfg config.Settings, fast, slow int) int {
	return trend.EMALookback(cfg, max(fast, slow))
}

// ADOSC is the Chaikin oscillator: EMA(fast) - EMA(slow) of the A/D line.
// Both averages are seeded with the first A/D value.
func ADOSC(cfg config.Settings, high, low, close, volume []float64, fast, slow int) (core.Result, error) {
	const op = "ADOSC"
	if err := core.CheckPeriod(op, "fastPeriod", fast, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	if err := core.CheckPeriod(op, "slowPeriod", slow, 2, core.MaxPeriod); err != nil {
		return core.Result{}, err
	}
	lb := ADOSCLookback(cfg, fast, slow)
	n, err := core.Prepare(op, lb, high, low, close, volume)
	if err != nil {
		return core.Result{}, err
	}
	kFast, kSlow := trend.EMAFactor(fast), trend.EMAFactor(slow)
	res := core.NewResult(n, lb)
	ad := adStep(high[0], low[0], close[0], volume[0])
	fastEMA, slowEMA := ad, ad
	for i := 1; i < n; i++ {
		ad += adStep(high[i], low[i], close[i], volume[i])
		fastEMA = kFast*ad + (1-kFast)*fastEMA
		slowEMA = kSlow*ad + (1-kSlow)*slowEMA
		if i >= lb {
			res.Values[i] = fastEMA - slowEMA
		}
	}
	return res, nil
}

// OBV accumulates volume signed by the direction of the price change,
// starting from the first bar's volume.
func OBV(in, volume []float64) (core.Result, error) {
	n, err := core.Prepare("OBV", 0, in, volume)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, 0)
	obv, prev := volume[0], in[0]
	for i := 0; i < n; i++ {
		switch v := in[i]; {
		case v > prev:
			obv += volume[i]
		case v < prev:
			obv -= volume[i]
		}
		res.Values[i] = obv
		prev = in[i]
	}
	return res, nil
}
