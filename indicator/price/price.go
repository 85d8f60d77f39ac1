// Package price implements the per-bar price transforms. None of them look
// back.
package price

import "github.com/evdnx/gota/indicator/core"

// AvgPrice is (open+high+low+close)/4.
func AvgPrice(open, high, low, close []float64) (core.Result, error) {
	n, err := core.Prepare("AVGPRICE", 0, open, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, 0)
	for i := range res.Values {
		res.Values[i] = (open[i] + high[i] + low[i] + close[i]) / 4
	}
	return res, nil
}

// MedPrice is (high+low)/2.
func MedPrice(high, low []float64) (core.Result, error) {
	n, err := core.Prepare("MEDPRICE", 0, high, low)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, 0)
	for i := range res.Values {
		res.Values[i] = (high[i] + low[i]) / 2
	}
	return res, nil
}

// TypPrice is (high+low+close)/3.
func TypPrice(high, low, close []float64) (core.Result, error) {
	n, err := core.Prepare("TYPPRICE", 0, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, 0)
	for i := range res.Values {
		res.Values[i] = (high[i] + low[i] + close[i]) / 3
	}
	return res, nil
}

// WclPrice is the weighted close, (high+low+2*close)/4.
func WclPrice(high, low, close []float64) (core.Result, error) {
	n, err := core.Prepare("WCLPRICE", 0, high, low, close)
	if err != nil {
		return core.Result{}, err
	}
	res := core.NewResult(n, 0)
	for i := range res.Values {
		res.Values[i] = (high[i] + low[i] + close[i]*2) / 4
	}
	return res, nil
}
