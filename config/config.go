// Package config holds the engine-wide settings that change numeric output:
// the compatibility mode and the per-function unstable-period table.
package config

import (
	"fmt"
	"strings"

	"github.com/evdnx/gota/indicator/core"
)

// Compat selects seeding conventions for EMA-family and RSI-family
// indicators.
type Compat int

const (
	CompatDefault Compat = iota
	CompatMetastock
)

func (c Compat) String() string {
	switch c {
	case CompatDefault:
		return "default"
	case CompatMetastock:
		return "metastock"
	default:
		return fmt.Sprintf("Compat(%d)", int(c))
	}
}

// Valid reports whether c is a known mode.
func (c Compat) Valid() bool { return c == CompatDefault || c == CompatMetastock }

// ParseCompat accepts "default" or "metastock" in any case.
func ParseCompat(s string) (Compat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "0":
		return CompatDefault, nil
	case "metastock", "1":
		return CompatMetastock, nil
	}
	return 0, core.BadParamf("ParseCompat", "unknown compatibility %q", s)
}

// UnstableID names an entry of the unstable-period table.
type UnstableID int

const (
	UnstADX UnstableID = iota
	UnstADXR
	UnstATR
	UnstCMO
	UnstDX
	UnstEMA
	UnstHTDCPeriod
	UnstHTDCPhase
	UnstHTPhasor
	UnstHTSine
	UnstHTTrendline
	UnstHTTrendMode
	UnstKAMA
	UnstMAMA
	UnstMFI
	UnstMinusDI
	UnstMinusDM
	UnstNATR
	UnstPlusDI
	UnstPlusDM
	UnstRSI
	UnstStochRSI
	UnstT3
	// UnstAll addresses every entry at once when setting.
	UnstAll
)

// UnstNone marks indicators that have no table entry.
const UnstNone UnstableID = -1

var unstableNames = [...]string{
	"adx", "adxr", "atr", "cmo", "dx", "ema", "ht_dcperiod", "ht_dcphase",
	"ht_phasor", "ht_sine", "ht_trendline", "ht_trendmode", "kama", "mama",
	"mfi", "minus_di", "minus_dm", "natr", "plus_di", "plus_dm", "rsi",
	"stochrsi", "t3", "all",
}

func (id UnstableID) String() string {
	if id >= UnstADX && id <= UnstAll {
		return unstableNames[id]
	}
	return fmt.Sprintf("UnstableID(%d)", int(id))
}

// ParseUnstableID resolves a table entry by its lower-case name.
func ParseUnstableID(s string) (UnstableID, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range unstableNames {
		if n == s {
			return UnstableID(i), nil
		}
	}
	return UnstNone, core.Errorf(core.FuncNotFound, "ParseUnstableID", "unknown unstable function %q", s)
}

// Settings is an immutable snapshot handed to every computation that
// depends on engine configuration. The zero value is the documented default:
// Default compatibility and no unstable periods.
type Settings struct {
	Compat   Compat
	Unstable [UnstAll]int
}

// DefaultSettings returns the process-start configuration.
func DefaultSettings() Settings { return Settings{} }

// UnstablePeriod returns the configured period for id, or 0 for ids outside
// the table (including UnstNone).
func (s Settings) UnstablePeriod(id UnstableID) int {
	if id < 0 || id >= UnstAll {
		return 0
	}
	return s.Unstable[id]
}

// Metastock reports whether Metastock seeding is active.
func (s Settings) Metastock() bool { return s.Compat == CompatMetastock }

// WithCompat returns a copy with the compatibility mode replaced.
func (s Settings) WithCompat(c Compat) Settings {
	s.Compat = c
	return s
}

// WithUnstable returns a copy with id (or every entry for UnstAll) set to
// period. Invalid arguments leave the copy untouched; use Validate or the
// Registry setter for checked updates.
func (s Settings) WithUnstable(id UnstableID, period int) Settings {
	if id == UnstAll {
		for i := range s.Unstable {
			s.Unstable[i] = period
		}
		return s
	}
	if id >= 0 && id < UnstAll {
		s.Unstable[id] = period
	}
	return s
}

// Validate checks the mode and that every period lies in [0, MaxPeriod].
func (s Settings) Validate() error {
	if !s.Compat.Valid() {
		return core.BadParamf("Settings.Validate", "unknown compatibility %d", int(s.Compat))
	}
	for i, p := range s.Unstable {
		if err := core.CheckPeriod("Settings.Validate", UnstableID(i).String(), p, 0, core.MaxPeriod); err != nil {
			return err
		}
	}
	return nil
}
