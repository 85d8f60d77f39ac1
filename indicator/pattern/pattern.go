package pattern

import (
	"fmt"
	"sort"

	"github.com/evdnx/gota/indicator/core"
)

// ID identifies a candlestick pattern.
type ID int

// detectFunc classifies the candle at i; pen is the penetration parameter
// for the patterns that take one.
type detectFunc func(cd *candles, i int, pen float64) int

// Pattern describes one recogniser.
type Pattern struct {
	ID   ID
	Name string // TA-Lib style name, e.g. "CDLDOJI"
	// Penetration is the default penetration, or 0 when the pattern takes none.
	Penetration float64
	// Signals is the set of values the recogniser can emit.
	Signals []int

	extra  int
	uses   []Kind
	minAvg int
	detect detectFunc
	// scan replaces detect for recognisers that carry state across bars.
	scan func(cd *candles, lb int, out []int)
}

// TakesPenetration reports whether the recogniser is parameterised.
func (p *Pattern) TakesPenetration() bool { return p.Penetration > 0 }

// Lookback is the number of leading bars with no signal.
func (p *Pattern) Lookback(s CandleSettings) int {
	m := p.minAvg
	for _, k := range p.uses {
		if s[k].Period > m {
			m = s[k].Period
		}
	}
	return m + p.extra
}

func (id ID) String() string {
	if p, ok := Lookup(id); ok {
		return p.Name
	}
	return fmt.Sprintf("ID(%d)", int(id))
}

var (
	bullBear  = []int{-100, 0, 100}
	bullOnly  = []int{0, 100}
	bearOnly  = []int{-100, 0}
	confirmed = []int{-200, -100, 0, 100, 200}
)

var byID = map[ID]*Pattern{}
var byName = map[string]*Pattern{}
var ordered []*Pattern

func register(p *Pattern) {
	byID[p.ID] = p
	byName[p.Name] = p
	ordered = append(ordered, p)
}

// Lookup returns the recogniser registered under id.
func Lookup(id ID) (*Pattern, bool) {
	p, ok := byID[id]
	return p, ok
}

// ByName returns the recogniser with the given TA-Lib style name.
func ByName(name string) (*Pattern, bool) {
	p, ok := byName[name]
	return p, ok
}

// All lists every recogniser in registration order.
func All() []*Pattern {
	out := make([]*Pattern, len(ordered))
	copy(out, ordered)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Recognizer evaluates patterns against a settings table.
type Recognizer struct {
	Settings CandleSettings
}

// NewRecognizer returns a recogniser using the default thresholds.
func NewRecognizer() Recognizer {
	return Recognizer{Settings: DefaultCandleSettings()}
}

// Lookback of pattern id under the recogniser's settings.
func (r Recognizer) Lookback(id ID) (int, error) {
	p, ok := Lookup(id)
	if !ok {
		return 0, core.Errorf(core.FuncNotFound, "Lookback", "unknown pattern %d", int(id))
	}
	return p.Lookback(r.Settings), nil
}

// Detect runs pattern id with its default penetration.
func (r Recognizer) Detect(id ID, open, high, low, close []float64) (core.IntResult, error) {
	p, ok := Lookup(id)
	if !ok {
		return core.IntResult{}, core.Errorf(core.FuncNotFound, "Detect", "unknown pattern %d", int(id))
	}
	return r.run(p, p.Penetration, open, high, low, close)
}

// DetectPenetration runs a penetration pattern with an explicit value.
func (r Recognizer) DetectPenetration(id ID, penetration float64, open, high, low, close []float64) (core.IntResult, error) {
	p, ok := Lookup(id)
	if !ok {
		return core.IntResult{}, core.Errorf(core.FuncNotFound, "Detect", "unknown pattern %d", int(id))
	}
	if !p.TakesPenetration() {
		return core.IntResult{}, core.BadParamf(p.Name, "pattern takes no penetration")
	}
	if err := core.CheckReal(p.Name, "penetration", penetration, 0, core.RealMax); err != nil {
		return core.IntResult{}, err
	}
	return r.run(p, penetration, open, high, low, close)
}

func (r Recognizer) run(p *Pattern, pen float64, open, high, low, close []float64) (core.IntResult, error) {
	if err := r.Settings.Validate(); err != nil {
		return core.IntResult{}, err
	}
	lb := p.Lookback(r.Settings)
	n, err := core.Prepare(p.Name, lb, open, high, low, close)
	if err != nil {
		return core.IntResult{}, err
	}
	cd := newCandles(open, high, low, close, r.Settings)
	res := core.NewIntResult(n, lb)
	if p.scan != nil {
		p.scan(cd, lb, res.Values)
		return res, nil
	}
	for i := lb; i < n; i++ {
		res.Values[i] = p.detect(cd, i, pen)
	}
	return res, nil
}

// Detect runs pattern id with the default thresholds.
func Detect(id ID, open, high, low, close []float64) (core.IntResult, error) {
	return NewRecognizer().Detect(id, open, high, low, close)
}

// sig converts a condition into a signal.
func sig(ok bool, v int) int {
	if ok {
		return v
	}
	return 0
}
