package core

import "math"

const (
	// RealMin and RealMax are the widest declared bounds for float parameters.
	RealMin = -3.0000000000000002e37
	RealMax = 3.0000000000000002e37

	// MaxPeriod is the generic upper bound of integer period parameters.
	MaxPeriod = 100000
)

// CheckPeriod validates an integer parameter against [min, max].
func CheckPeriod(op, name string, v, min, max int) error {
	if v < min || v > max {
		return BadParamf(op, "%s must be in [%d, %d], got %d", name, min, max, v)
	}
	return nil
}

// CheckReal validates a float parameter: finite and within [min, max].
func CheckReal(op, name string, v, min, max float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return BadParamf(op, "%s must be finite, got %v", name, v)
	}
	if v < min || v > max {
		return BadParamf(op, "%s must be in [%g, %g], got %g", name, min, max, v)
	}
	return nil
}

// CheckMAType validates a moving-average selector.
func CheckMAType(op, name string, t MAType) error {
	if !t.Valid() {
		return BadParamf(op, "%s: unknown moving average type %d", name, int(t))
	}
	return nil
}

// CheckInputs verifies that all series share one length, and returns it.
func CheckInputs(op string, series ...[]float64) (int, error) {
	if len(series) == 0 {
		return 0, BadParamf(op, "no input series")
	}
	n := len(series[0])
	for i, s := range series[1:] {
		if len(s) != n {
			return 0, BadParamf(op, "input %d has length %d, want %d", i+1, len(s), n)
		}
	}
	return n, nil
}

// CheckLength verifies that n points are enough for lookback.
func CheckLength(op string, n, lookback int) error {
	if n < lookback+1 {
		return BadParamf(op, "need at least %d points, have %d", lookback+1, n)
	}
	return nil
}

// Prepare combines CheckInputs and CheckLength.
func Prepare(op string, lookback int, series ...[]float64) (int, error) {
	n, err := CheckInputs(op, series...)
	if err != nil {
		return 0, err
	}
	if err := CheckLength(op, n, lookback); err != nil {
		return 0, err
	}
	return n, nil
}
