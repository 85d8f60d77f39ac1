package gota

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/trend"
)

// Overlap studies: moving averages and price-overlay indicators.

func (e *Engine) MA(in []float64, period int, t MAType) (Result, error) {
	return call(e, "MA", func(cfg config.Settings) (Result, error) { return trend.MA(cfg, in, period, t) })
}

func (e *Engine) SMA(in []float64, period int) (Result, error) {
	return call(e, "SMA", func(config.Settings) (Result, error) { return trend.SMA(in, period) })
}

func (e *Engine) EMA(in []float64, period int) (Result, error) {
	return call(e, "EMA", func(cfg config.Settings) (Result, error) { return trend.EMA(cfg, in, period) })
}

func (e *Engine) WMA(in []float64, period int) (Result, error) {
	return call(e, "WMA", func(config.Settings) (Result, error) { return trend.WMA(in, period) })
}

func (e *Engine) DEMA(in []float64, period int) (Result, error) {
	return call(e, "DEMA", func(cfg config.Settings) (Result, error) { return trend.DEMA(cfg, in, period) })
}

func (e *Engine) TEMA(in []float64, period int) (Result, error) {
	return call(e, "TEMA", func(cfg config.Settings) (Result, error) { return trend.TEMA(cfg, in, period) })
}

func (e *Engine) TRIMA(in []float64, period int) (Result, error) {
	return call(e, "TRIMA", func(config.Settings) (Result, error) { return trend.TRIMA(in, period) })
}

func (e *Engine) KAMA(in []float64, period int) (Result, error) {
	return call(e, "KAMA", func(cfg config.Settings) (Result, error) { return trend.KAMA(cfg, in, period) })
}

// MAMA is the MESA adaptive moving average with its following average.
func (e *Engine) MAMA(in []float64, fastLimit, slowLimit float64) (MAMAResult, error) {
	return call(e, "MAMA", func(cfg config.Settings) (MAMAResult, error) {
		return trend.MAMA(cfg, in, fastLimit, slowLimit)
	})
}

func (e *Engine) T3(in []float64, period int, vFactor float64) (Result, error) {
	return call(e, "T3", func(cfg config.Settings) (Result, error) { return trend.T3(cfg, in, period, vFactor) })
}

// MAVP averages each bar over the period given for it in periods, clamped
// to [minPeriod, maxPeriod].
func (e *Engine) MAVP(in, periods []float64, minPeriod, maxPeriod int, t MAType) (Result, error) {
	return call(e, "MAVP", func(cfg config.Settings) (Result, error) {
		return trend.MAVP(cfg, in, periods, minPeriod, maxPeriod, t)
	})
}

func (e *Engine) MidPoint(in []float64, period int) (Result, error) {
	return call(e, "MIDPOINT", func(config.Settings) (Result, error) { return trend.MidPoint(in, period) })
}

func (e *Engine) MidPrice(high, low []float64, period int) (Result, error) {
	return call(e, "MIDPRICE", func(config.Settings) (Result, error) { return trend.MidPrice(high, low, period) })
}

func (e *Engine) SAR(high, low []float64, acceleration, maximum float64) (Result, error) {
	return call(e, "SAR", func(config.Settings) (Result, error) {
		return trend.SAR(high, low, acceleration, maximum)
	})
}

// SAREXT is the parabolic SAR with separate long and short parameters.
func (e *Engine) SAREXT(high, low []float64, p SARExtParams) (SARExtResult, error) {
	return call(e, "SAREXT", func(config.Settings) (SARExtResult, error) { return trend.SAREXT(high, low, p) })
}

func (e *Engine) HTTrendline(in []float64) (Result, error) {
	return call(e, "HT_TRENDLINE", func(cfg config.Settings) (Result, error) { return trend.HTTrendline(cfg, in) })
}
