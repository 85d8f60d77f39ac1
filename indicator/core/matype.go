package core

import (
	"fmt"
	"strings"
)

// MAType selects the moving-average algorithm. The set is closed and the
// numeric values match the reference library.
type MAType int

const (
	SMA MAType = iota
	EMA
	WMA
	DEMA
	TEMA
	TRIMA
	KAMA
	MAMA
	T3
)

var maNames = [...]string{"SMA", "EMA", "WMA", "DEMA", "TEMA", "TRIMA", "KAMA", "MAMA", "T3"}

func (t MAType) String() string {
	if t.Valid() {
		return maNames[t]
	}
	return fmt.Sprintf("MAType(%d)", int(t))
}

// Valid reports whether t is one of the nine known variants.
func (t MAType) Valid() bool { return t >= SMA && t <= T3 }

// ParseMAType accepts the variant name in any case.
func ParseMAType(s string) (MAType, error) {
	for i, n := range maNames {
		if strings.EqualFold(n, s) {
			return MAType(i), nil
		}
	}
	return 0, BadParamf("ParseMAType", "unknown moving average %q", s)
}
