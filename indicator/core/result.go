package core

// Result is a single output series aligned to the input index space.
// Values before Begin are zero and carry no meaning.
type Result struct {
	Begin  int
	Values []float64
}

// IntResult is Result for integer outputs (pattern signals, indices).
type IntResult struct {
	Begin  int
	Values []int
}

// NewResult allocates a result of length n starting at begin.
func NewResult(n, begin int) Result {
	return Result{Begin: begin, Values: make([]float64, n)}
}

// NewIntResult allocates an integer result of length n starting at begin.
func NewIntResult(n, begin int) IntResult {
	return IntResult{Begin: begin, Values: make([]int, n)}
}

// Valid returns the published part of the series.
func (r Result) Valid() []float64 {
	if r.Begin >= len(r.Values) {
		return nil
	}
	return r.Values[r.Begin:]
}

// Len is the length of the aligned series, including the undefined prefix.
func (r Result) Len() int { return len(r.Values) }

// Valid returns the published part of the series.
func (r IntResult) Valid() []int {
	if r.Begin >= len(r.Values) {
		return nil
	}
	return r.Values[r.Begin:]
}

// Copy returns a deep copy so callers can keep a result independent of
// later computations.
func (r Result) Copy() Result {
	return Result{Begin: r.Begin, Values: CopySlice(r.Values)}
}

// CopySlice returns a defensive copy of src.
func CopySlice(src []float64) []float64 {
	if src == nil {
		return nil
	}
	dst := make([]float64, len(src))
	copy(dst, src)
	return dst
}

// Realign places sub, computed over in[off:], back into an n-length series.
func Realign(sub []float64, off, n int) []float64 {
	out := make([]float64, n)
	copy(out[off:], sub)
	return out
}
