package gota

import (
	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/price"
	"github.com/evdnx/gota/indicator/stats"
	"github.com/evdnx/gota/indicator/vector"
)

// Statistic functions, price transforms and vector math.

func (e *Engine) Beta(x, y []float64, period int) (Result, error) {
	return call(e, "BETA", func(config.Settings) (Result, error) { return stats.Beta(x, y, period) })
}

func (e *Engine) Correl(x, y []float64, period int) (Result, error) {
	return call(e, "CORREL", func(config.Settings) (Result, error) { return stats.Correl(x, y, period) })
}

func (e *Engine) LinearReg(in []float64, period int) (Result, error) {
	return call(e, "LINEARREG", func(config.Settings) (Result, error) { return stats.LinearReg(in, period) })
}

func (e *Engine) LinearRegAngle(in []float64, period int) (Result, error) {
	return call(e, "LINEARREG_ANGLE", func(config.Settings) (Result, error) { return stats.LinearRegAngle(in, period) })
}

func (e *Engine) LinearRegIntercept(in []float64, period int) (Result, error) {
	return call(e, "LINEARREG_INTERCEPT", func(config.Settings) (Result, error) {
		return stats.LinearRegIntercept(in, period)
	})
}

func (e *Engine) LinearRegSlope(in []float64, period int) (Result, error) {
	return call(e, "LINEARREG_SLOPE", func(config.Settings) (Result, error) { return stats.LinearRegSlope(in, period) })
}

func (e *Engine) TSF(in []float64, period int) (Result, error) {
	return call(e, "TSF", func(config.Settings) (Result, error) { return stats.TSF(in, period) })
}

func (e *Engine) StdDev(in []float64, period int, nbDev float64) (Result, error) {
	return call(e, "STDDEV", func(config.Settings) (Result, error) { return stats.StdDev(in, period, nbDev) })
}

func (e *Engine) Var(in []float64, period int, nbDev float64) (Result, error) {
	return call(e, "VAR", func(config.Settings) (Result, error) { return stats.Var(in, period, nbDev) })
}

func (e *Engine) Sum(in []float64, period int) (Result, error) {
	return call(e, "SUM", func(config.Settings) (Result, error) { return stats.Sum(in, period) })
}

func (e *Engine) Max(in []float64, period int) (Result, error) {
	return call(e, "MAX", func(config.Settings) (Result, error) { return stats.Max(in, period) })
}

func (e *Engine) Min(in []float64, period int) (Result, error) {
	return call(e, "MIN", func(config.Settings) (Result, error) { return stats.Min(in, period) })
}

func (e *Engine) MaxIndex(in []float64, period int) (IntResult, error) {
	return call(e, "MAXINDEX", func(config.Settings) (IntResult, error) { return stats.MaxIndex(in, period) })
}

func (e *Engine) MinIndex(in []float64, period int) (IntResult, error) {
	return call(e, "MININDEX", func(config.Settings) (IntResult, error) { return stats.MinIndex(in, period) })
}

func (e *Engine) MinMax(in []float64, period int) (MinMaxResult, error) {
	return call(e, "MINMAX", func(config.Settings) (MinMaxResult, error) { return stats.MinMax(in, period) })
}

func (e *Engine) MinMaxIndex(in []float64, period int) (MinMaxIndexResult, error) {
	return call(e, "MINMAXINDEX", func(config.Settings) (MinMaxIndexResult, error) { return stats.MinMaxIndex(in, period) })
}

func (e *Engine) AvgPrice(open, high, low, close []float64) (Result, error) {
	return call(e, "AVGPRICE", func(config.Settings) (Result, error) { return price.AvgPrice(open, high, low, close) })
}

func (e *Engine) MedPrice(high, low []float64) (Result, error) {
	return call(e, "MEDPRICE", func(config.Settings) (Result, error) { return price.MedPrice(high, low) })
}

func (e *Engine) TypPrice(high, low, close []float64) (Result, error) {
	return call(e, "TYPPRICE", func(config.Settings) (Result, error) { return price.TypPrice(high, low, close) })
}

func (e *Engine) WclPrice(high, low, close []float64) (Result, error) {
	return call(e, "WCLPRICE", func(config.Settings) (Result, error) { return price.WclPrice(high, low, close) })
}

func (e *Engine) Add(a, b []float64) (Result, error) {
	return call(e, "ADD", func(config.Settings) (Result, error) { return vector.Add(a, b) })
}

func (e *Engine) Sub(a, b []float64) (Result, error) {
	return call(e, "SUB", func(config.Settings) (Result, error) { return vector.Sub(a, b) })
}

func (e *Engine) Mult(a, b []float64) (Result, error) {
	return call(e, "MULT", func(config.Settings) (Result, error) { return vector.Mult(a, b) })
}

func (e *Engine) Div(a, b []float64) (Result, error) {
	return call(e, "DIV", func(config.Settings) (Result, error) { return vector.Div(a, b) })
}

// Transform applies a unary math function (ACOS ... TANH) to every element.
func (e *Engine) Transform(t Transform, in []float64) (Result, error) {
	return call(e, t.String(), func(config.Settings) (Result, error) { return vector.Apply(t, in) })
}

// Unary math transforms.
const (
	Acos  = vector.Acos
	Asin  = vector.Asin
	Atan  = vector.Atan
	Ceil  = vector.Ceil
	Cos   = vector.Cos
	Cosh  = vector.Cosh
	Exp   = vector.Exp
	Floor = vector.Floor
	Ln    = vector.Ln
	Log10 = vector.Log10
	Sin   = vector.Sin
	Sinh  = vector.Sinh
	Sqrt  = vector.Sqrt
	Tan   = vector.Tan
	Tanh  = vector.Tanh
)
