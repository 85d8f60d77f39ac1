package gota

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/volatility"
	"github.com/evdnx/gota/indicator/volume"
)

// Volume and volatility indicators.

func (e *Engine) AD(high, low, close, vol []float64) (Result, error) {
	return call(e, "AD", func(config.Settings) (Result, error) { return volume.AD(high, low, close, vol) })
}

func (e *Engine) ADOSC(high, low, close, vol []float64, fast, slow int) (Result, error) {
	return call(e, "ADOSC", func(cfg config.Settings) (Result, error) {
		return volume.ADOSC(cfg, high, low, close, vol, fast, slow)
	})
}

func (e *Engine) OBV(in, vol []float64) (Result, error) {
	return call(e, "OBV", func(config.Settings) (Result, error) { return volume.OBV(in, vol) })
}

func (e *Engine) MFI(high, low, close, vol []float64, period int) (Result, error) {
	return call(e, "MFI", func(cfg config.Settings) (Result, error) {
		return volume.MFI(cfg, high, low, close, vol, period)
	})
}

func (e *Engine) TRange(high, low, close []float64) (Result, error) {
	return call(e, "TRANGE", func(config.Settings) (Result, error) { return volatility.TRange(high, low, close) })
}

func (e *Engine) ATR(high, low, close []float64, period int) (Result, error) {
	return call(e, "ATR", func(cfg config.Settings) (Result, error) {
		return volatility.ATR(cfg, high, low, close, period)
	})
}

func (e *Engine) NATR(high, low, close []float64, period int) (Result, error) {
	return call(e, "NATR", func(cfg config.Settings) (Result, error) {
		return volatility.NATR(cfg, high, low, close, period)
	})
}

func (e *Engine) BBands(in []float64, p BBandsParams) (BBandsResult, error) {
	return call(e, "BBANDS", func(cfg config.Settings) (BBandsResult, error) { return volatility.BBands(cfg, in, p) })
}
