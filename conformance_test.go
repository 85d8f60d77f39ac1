package gota

import (
	"math"
	"testing"

	talib "github.com/markcheno/go-talib"
	"github.com/stretchr/testify/require"
)

// The reference values come from an independent port of the classic TA
// function library, which uses default compatibility and no unstable
// periods.

func assertClose(t *testing.T, name string, got Result, want []float64) {
	t.Helper()
	require.Len(t, want, len(got.Values), name)
	for i := got.Begin; i < len(want); i++ {
		tol := 1e-6 * math.Max(1, math.Abs(want[i]))
		if math.Abs(got.Values[i]-want[i]) > tol {
			t.Fatalf("%s index %d: got %.10f, want %.10f", name, i, got.Values[i], want[i])
		}
	}
}

func TestConformanceWithReferencePort(t *testing.T) {
	e := newEngine(t)
	_, h, l, c, v := randOHLCV(300)

	single := []struct {
		name string
		run  func() (Result, error)
		want []float64
	}{
		{"SMA", func() (Result, error) { return e.SMA(c, 20) }, talib.Sma(c, 20)},
		{"EMA", func() (Result, error) { return e.EMA(c, 20) }, talib.Ema(c, 20)},
		{"WMA", func() (Result, error) { return e.WMA(c, 20) }, talib.Wma(c, 20)},
		{"TRIMA", func() (Result, error) { return e.TRIMA(c, 20) }, talib.Trima(c, 20)},
		{"RSI", func() (Result, error) { return e.RSI(c, 14) }, talib.Rsi(c, 14)},
		{"ATR", func() (Result, error) { return e.ATR(h, l, c, 14) }, talib.Atr(h, l, c, 14)},
		{"CCI", func() (Result, error) { return e.CCI(h, l, c, 14) }, talib.Cci(h, l, c, 14)},
		{"WILLR", func() (Result, error) { return e.WillR(h, l, c, 14) }, talib.WillR(h, l, c, 14)},
		{"MOM", func() (Result, error) { return e.MOM(c, 10) }, talib.Mom(c, 10)},
		{"OBV", func() (Result, error) { return e.OBV(c, v) }, talib.Obv(c, v)},
		{"MFI", func() (Result, error) { return e.MFI(h, l, c, v, 14) }, talib.Mfi(h, l, c, v, 14)},
		{"VAR", func() (Result, error) { return e.Var(c, 5, 1) }, talib.Var(c, 5)},
		{"MAX", func() (Result, error) { return e.Max(c, 30) }, talib.Max(c, 30)},
		{"MIN", func() (Result, error) { return e.Min(c, 30) }, talib.Min(c, 30)},
		{"LINEARREG", func() (Result, error) { return e.LinearReg(c, 14) }, talib.LinearReg(c, 14)},
	}
	for _, tc := range single {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run()
			require.NoError(t, err)
			assertClose(t, tc.name, got, tc.want)
		})
	}

	t.Run("BBANDS", func(t *testing.T) {
		got, err := e.BBands(c, DefaultBBandsParams())
		require.NoError(t, err)
		upper, middle, lower := talib.BBands(c, 5, 2, 2, talib.SMA)
		assertClose(t, "upper", Result{Begin: got.Begin, Values: got.Upper}, upper)
		assertClose(t, "middle", Result{Begin: got.Begin, Values: got.Middle}, middle)
		assertClose(t, "lower", Result{Begin: got.Begin, Values: got.Lower}, lower)
	})
}
