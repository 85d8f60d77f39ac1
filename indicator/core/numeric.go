package core

import "math"

// IsZero treats values within 1e-14 of zero as zero, matching the
// tolerance the reference algorithms use for ratio guards.
func IsZero(v float64) bool {
	return -0.00000000000001 < v && v < 0.00000000000001
}

// Clamp bounds value to [min, max].
func Clamp(value, min, max float64) float64 {
	if min == max {
		return min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// KahanSum accumulates with compensated summation.
type KahanSum struct {
	sum  float64
	comp float64
}

// Add folds v into the running sum.
func (k *KahanSum) Add(v float64) {
	y := v - k.comp
	t := k.sum + y
	k.comp = (t - k.sum) - y
	k.sum = t
}

// Sum returns the current total.
func (k *KahanSum) Sum() float64 { return k.sum }

// HighestIndex returns the index of the largest value in in[lo:hi+1].
// Ties resolve to the most recent index.
func HighestIndex(in []float64, lo, hi int) int {
	idx := lo
	for i := lo + 1; i <= hi; i++ {
		if in[i] >= in[idx] {
			idx = i
		}
	}
	return idx
}

// LowestIndex returns the index of the smallest value in in[lo:hi+1].
// Ties resolve to the most recent index.
func LowestIndex(in []float64, lo, hi int) int {
	idx := lo
	for i := lo + 1; i <= hi; i++ {
		if in[i] <= in[idx] {
			idx = i
		}
	}
	return idx
}

// IsZeroOrNeg treats anything below 1e-14 as non-positive.
func IsZeroOrNeg(v float64) bool { return v < 0.00000000000001 }

// TrueRange is the widest of high-low, |prevClose-high| and |prevClose-low|.
func TrueRange(high, low, prevClose float64) float64 {
	tr := high - low
	if v := math.Abs(prevClose - high); v > tr {
		tr = v
	}
	if v := math.Abs(prevClose - low); v > tr {
		tr = v
	}
	return tr
}
