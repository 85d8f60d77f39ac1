package gota

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/momentum"
)

// Momentum indicators.

func (e *Engine) ADX(high, low, close []float64, period int) (Result, error) {
	return call(e, "ADX", func(cfg config.Settings) (Result, error) { return momentum.ADX(cfg, high, low, close, period) })
}

func (e *Engine) ADXR(high, low, close []float64, period int) (Result, error) {
	return call(e, "ADXR", func(cfg config.Settings) (Result, error) { return momentum.ADXR(cfg, high, low, close, period) })
}

func (e *Engine) DX(high, low, close []float64, period int) (Result, error) {
	return call(e, "DX", func(cfg config.Settings) (Result, error) { return momentum.DX(cfg, high, low, close, period) })
}

func (e *Engine) PlusDI(high, low, close []float64, period int) (Result, error) {
	return call(e, "PLUS_DI", func(cfg config.Settings) (Result, error) {
		return momentum.PlusDI(cfg, high, low, close, period)
	})
}

func (e *Engine) MinusDI(high, low, close []float64, period int) (Result, error) {
	return call(e, "MINUS_DI", func(cfg config.Settings) (Result, error) {
		return momentum.MinusDI(cfg, high, low, close, period)
	})
}

func (e *Engine) PlusDM(high, low []float64, period int) (Result, error) {
	return call(e, "PLUS_DM", func(cfg config.Settings) (Result, error) { return momentum.PlusDM(cfg, high, low, period) })
}

func (e *Engine) MinusDM(high, low []float64, period int) (Result, error) {
	return call(e, "MINUS_DM", func(cfg config.Settings) (Result, error) { return momentum.MinusDM(cfg, high, low, period) })
}

func (e *Engine) APO(in []float64, p PriceOscParams) (Result, error) {
	return call(e, "APO", func(cfg config.Settings) (Result, error) { return momentum.APO(cfg, in, p) })
}

func (e *Engine) PPO(in []float64, p PriceOscParams) (Result, error) {
	return call(e, "PPO", func(cfg config.Settings) (Result, error) { return momentum.PPO(cfg, in, p) })
}

func (e *Engine) Aroon(high, low []float64, period int) (AroonResult, error) {
	return call(e, "AROON", func(config.Settings) (AroonResult, error) { return momentum.Aroon(high, low, period) })
}

func (e *Engine) AroonOsc(high, low []float64, period int) (Result, error) {
	return call(e, "AROONOSC", func(config.Settings) (Result, error) { return momentum.AroonOsc(high, low, period) })
}

func (e *Engine) BOP(open, high, low, close []float64) (Result, error) {
	return call(e, "BOP", func(config.Settings) (Result, error) { return momentum.BOP(open, high, low, close) })
}

func (e *Engine) CCI(high, low, close []float64, period int) (Result, error) {
	return call(e, "CCI", func(config.Settings) (Result, error) { return momentum.CCI(high, low, close, period) })
}

func (e *Engine) CMO(in []float64, period int) (Result, error) {
	return call(e, "CMO", func(cfg config.Settings) (Result, error) { return momentum.CMO(cfg, in, period) })
}

func (e *Engine) RSI(in []float64, period int) (Result, error) {
	return call(e, "RSI", func(cfg config.Settings) (Result, error) { return momentum.RSI(cfg, in, period) })
}

// MACD uses EMAs for all three lines; the MA types in p are ignored.
func (e *Engine) MACD(in []float64, p MACDParams) (MACDResult, error) {
	return call(e, "MACD", func(cfg config.Settings) (MACDResult, error) { return momentum.MACD(cfg, in, p) })
}

// MACDExt is MACD with a moving average type per line.
func (e *Engine) MACDExt(in []float64, p MACDParams) (MACDResult, error) {
	return call(e, "MACDEXT", func(cfg config.Settings) (MACDResult, error) { return momentum.MACDExt(cfg, in, p) })
}

// MACDFix is MACD fixed at 12/26 with the classic smoothing constants.
func (e *Engine) MACDFix(in []float64, signal int) (MACDResult, error) {
	return call(e, "MACDFIX", func(cfg config.Settings) (MACDResult, error) { return momentum.MACDFix(cfg, in, signal) })
}

func (e *Engine) MOM(in []float64, period int) (Result, error) {
	return call(e, "MOM", func(config.Settings) (Result, error) { return momentum.MOM(in, period) })
}

func (e *Engine) ROC(in []float64, period int) (Result, error) {
	return call(e, "ROC", func(config.Settings) (Result, error) { return momentum.ROC(in, period) })
}

func (e *Engine) ROCP(in []float64, period int) (Result, error) {
	return call(e, "ROCP", func(config.Settings) (Result, error) { return momentum.ROCP(in, period) })
}

func (e *Engine) ROCR(in []float64, period int) (Result, error) {
	return call(e, "ROCR", func(config.Settings) (Result, error) { return momentum.ROCR(in, period) })
}

func (e *Engine) ROCR100(in []float64, period int) (Result, error) {
	return call(e, "ROCR100", func(config.Settings) (Result, error) { return momentum.ROCR100(in, period) })
}

func (e *Engine) Stoch(high, low, close []float64, p StochParams) (StochResult, error) {
	return call(e, "STOCH", func(cfg config.Settings) (StochResult, error) {
		return momentum.Stoch(cfg, high, low, close, p)
	})
}

func (e *Engine) StochF(high, low, close []float64, p StochFParams) (StochResult, error) {
	return call(e, "STOCHF", func(cfg config.Settings) (StochResult, error) {
		return momentum.StochF(cfg, high, low, close, p)
	})
}

func (e *Engine) StochRSI(in []float64, p StochRSIParams) (StochResult, error) {
	return call(e, "STOCHRSI", func(cfg config.Settings) (StochResult, error) { return momentum.StochRSI(cfg, in, p) })
}

func (e *Engine) TRIX(in []float64, period int) (Result, error) {
	return call(e, "TRIX", func(cfg config.Settings) (Result, error) { return momentum.TRIX(cfg, in, period) })
}

func (e *Engine) ULTOSC(high, low, close []float64, p1, p2, p3 int) (Result, error) {
	return call(e, "ULTOSC", func(config.Settings) (Result, error) { return momentum.ULTOSC(high, low, close, p1, p2, p3) })
}

func (e *Engine) WillR(high, low, close []float64, period int) (Result, error) {
	return call(e, "WILLR", func(config.Settings) (Result, error) { return momentum.WillR(high, low, close, period) })
}
