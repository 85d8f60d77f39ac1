package trend

import (
	"math"
	"math/rand"
)

const eps = 1e-9

func approxEqual(a, b float64) bool { return math.Abs(a-b) <= eps }

func randVals(n int) []float64 {
	r := rand.New(rand.NewSource(42))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 50 + r.Float64()*100
	}
	return vals
}

func constant(n int, v float64) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = v
	}
	return vals
}

func ramp(n int) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = float64(i + 1)
	}
	return vals
}
