// Package vector implements element-wise arithmetic and the unary math
// transforms. Inputs outside a function's domain are rejected rather than
// turned into NaN or infinities.
package vector

import (
	"math"

	"github.com/evdnx/gota/indicator/core"
)

func binary(op string, a, b []float64, f func(x, y float64) float64, domain func(y float64) bool) (core.Result, error) {
	n, err := core.Prepare(op, 0, a, b)
	if err != nil {
		return core.Result{}, err
	}
	if domain != nil {
		for i, v := range b {
			if !domain(v) {
				return core.Result{}, core.BadParamf(op, "input 1 index %d: %g outside domain", i, v)
			}
		}
	}
	res := core.NewResult(n, 0)
	for i := range res.Values {
		res.Values[i] = f(a[i], b[i])
	}
	return res, nil
}

// Add is a+b element-wise.
func Add(a, b []float64) (core.Result, error) {
	return binary("ADD", a, b, func(x, y float64) float64 { return x + y }, nil)
}

// Sub is a-b element-wise.
func Sub(a, b []float64) (core.Result, error) {
	return binary("SUB", a, b, func(x, y float64) float64 { return x - y }, nil)
}

// Mult is a*b element-wise.
func Mult(a, b []float64) (core.Result, error) {
	return binary("MULT", a, b, func(x, y float64) float64 { return x * y }, nil)
}

// Div is a/b element-wise; a zero divisor is rejected.
func Div(a, b []float64) (core.Result, error) {
	return binary("DIV", a, b, func(x, y float64) float64 { return x / y }, func(y float64) bool { return y != 0 })
}

// Transform names a unary math function.
type Transform int

const (
	Acos Transform = iota
	Asin
	Atan
	Ceil
	Cos
	Cosh
	Exp
	Floor
	Ln
	Log10
	Sin
	Sinh
	Sqrt
	Tan
	Tanh
)

type transform struct {
	op     string
	f      func(float64) float64
	domain func(float64) bool
}

func unit(v float64) bool     { return v >= -1 && v <= 1 }
func positive(v float64) bool { return v > 0 }

var transforms = [...]transform{
	Acos:  {"ACOS", math.Acos, unit},
	Asin:  {"ASIN", math.Asin, unit},
	Atan:  {"ATAN", math.Atan, nil},
	Ceil:  {"CEIL", math.Ceil, nil},
	Cos:   {"COS", math.Cos, nil},
	Cosh:  {"COSH", math.Cosh, nil},
	Exp:   {"EXP", math.Exp, nil},
	Floor: {"FLOOR", math.Floor, nil},
	Ln:    {"LN", math.Log, positive},
	Log10: {"LOG10", math.Log10, positive},
	Sin:   {"SIN", math.Sin, nil},
	Sinh:  {"SINH", math.Sinh, nil},
	Sqrt:  {"SQRT", math.Sqrt, func(v float64) bool { return v >= 0 }},
	Tan:   {"TAN", math.Tan, nil},
	Tanh:  {"TANH", math.Tanh, nil},
}

// String returns the operation name.
func (t Transform) String() string {
	if t < 0 || int(t) >= len(transforms) {
		return "UNKNOWN"
	}
	return transforms[t].op
}

// Apply runs t over in. Results that overflow to infinity are rejected.
func Apply(t Transform, in []float64) (core.Result, error) {
	if t < 0 || int(t) >= len(transforms) {
		return core.Result{}, core.Errorf(core.FuncNotFound, "vector", "unknown transform %d", int(t))
	}
	tr := transforms[t]
	n, err := core.Prepare(tr.op, 0, in)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, 0)
	for i, v := range in {
		if tr.domain != nil && !tr.domain(v) {
			return core.Result{}, core.BadParamf(tr.op, "index %d: %g outside domain", i, v)
		}
		out := tr.f(v)
		if math.IsInf(out, 0) || math.IsNaN(out) {
			return core.Result{}, core.BadParamf(tr.op, "index %d: %g overflows", i, v)
		}
		res.Values[i] = out
	}
	return res, nil
}
