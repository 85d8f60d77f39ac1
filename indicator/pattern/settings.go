// Package pattern implements the candlestick pattern recognisers. Shape
// thresholds ("long body", "near", "doji", ...) compare a candle against
// the average of a range measure over the preceding bars, as configured by
// a CandleSettings table.
package pattern

import (
	"fmt"

	"github.com/evdnx/gota/indicator/core"
)

// RangeType selects what a setting measures on each candle.
type RangeType int

const (
	// RealBody is |close-open|.
	RealBody RangeType = iota
	// HighLow is high-low.
	HighLow
	// Shadows is upper plus lower shadow; averages are halved.
	Shadows
)

// Kind names one row of the settings table.
type Kind int

const (
	BodyLong Kind = iota
	BodyVeryLong
	BodyShort
	BodyDoji
	ShadowLong
	ShadowVeryLong
	ShadowShort
	ShadowVeryShort
	Near
	Far
	Equal
	kindCount
)

var kindNames = [...]string{
	"BodyLong", "BodyVeryLong", "BodyShort", "BodyDoji", "ShadowLong",
	"ShadowVeryLong", "ShadowShort", "ShadowVeryShort", "Near", "Far", "Equal",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Setting is a threshold: Factor times the average Range over the previous
// Period bars, or times the candle's own range when Period is 0.
type Setting struct {
	Range  RangeType
	Period int
	Factor float64
}

// CandleSettings is the full threshold table.
type CandleSettings [kindCount]Setting

// DefaultCandleSettings returns the conventional thresholds.
func DefaultCandleSettings() CandleSettings {
	return CandleSettings{
		BodyLong:        {RealBody, 10, 1.0},
		BodyVeryLong:    {RealBody, 10, 3.0},
		BodyShort:       {RealBody, 10, 1.0},
		BodyDoji:        {HighLow, 10, 0.1},
		ShadowLong:      {RealBody, 0, 1.0},
		ShadowVeryLong:  {RealBody, 0, 2.0},
		ShadowShort:     {Shadows, 10, 1.0},
		ShadowVeryShort: {HighLow, 10, 0.1},
		Near:            {HighLow, 5, 0.2},
		Far:             {HighLow, 5, 0.6},
		Equal:           {HighLow, 5, 0.05},
	}
}

// Validate rejects negative periods and factors.
func (s CandleSettings) Validate() error {
	for k, v := range s {
		if v.Period < 0 || v.Factor < 0 || v.Range < RealBody || v.Range > Shadows {
			return core.BadParamf("CandleSettings", "invalid setting %s: %+v", Kind(k), v)
		}
	}
	return nil
}
