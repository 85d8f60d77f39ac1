package momentum

import (
	"math"
	"math/rand"
)

const eps = 1e-9

func approxEqual(a, b float64) bool { return math.Abs(a-b) <= eps }

func randVals(n int) []float64 {
	r := rand.New(rand.NewSource(7))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = 50 + r.Float64()*100
	}
	return vals
}

// randOHLC returns a random walk with consistent bar ranges.
func randOHLC(n int) (open, high, low, close []float64) {
	r := rand.New(rand.NewSource(11))
	open = make([]float64, n)
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)
	price := 100.0
	for i := 0; i < n; i++ {
		open[i] = price
		price += r.Float64()*4 - 2
		close[i] = price
		high[i] = math.Max(open[i], close[i]) + r.Float64()
		low[i] = math.Min(open[i], close[i]) - r.Float64()
	}
	return open, high, low, close
}

// uptrend has every bar two points wide and closing one point higher.
func uptrend(n int) (high, low, close []float64) {
	high = make([]float64, n)
	low = make([]float64, n)
	close = make([]float64, n)
	for i := 0; i < n; i++ {
		high[i] = float64(i) + 2
		low[i] = float64(i)
		close[i] = float64(i) + 1
	}
	return high, low, close
}

func constant(n int, v float64) []float64 {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = v
	}
	return vals
}

func inRange(vals []float64, lo, hi float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || v < lo-eps || v > hi+eps {
			return false
		}
	}
	return true
}
