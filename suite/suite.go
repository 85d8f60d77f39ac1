// Package suite evaluates batches of named studies over one OHLCV frame,
// fanning the requests out to a bounded pool of workers that share a single
// engine.
package suite

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/evdnx/gota"
	"github.com/evdnx/gota/indicator/core"
)

// Frame is one aligned OHLCV sample set. Open and Volume may be nil when
// no requested study reads them.
type Frame struct {
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
	// Start and Interval, when Interval is non-zero, stamp exported plots.
	Start    int64
	Interval int64
}

// Len is the number of bars in the frame.
func (f Frame) Len() int { return len(f.Close) }

func (f Frame) validate() error {
	n := len(f.Close)
	if n == 0 {
		return core.BadParamf("suite.Run", "empty frame")
	}
	for name, s := range map[string][]float64{"open": f.Open, "high": f.High, "low": f.Low, "volume": f.Volume} {
		if s != nil && len(s) != n {
			return core.BadParamf("suite.Run", "%s has %d bars, close has %d", name, len(s), n)
		}
	}
	return nil
}

// Request asks for one study.
type Request struct {
	// Label names the output; it defaults to Study.
	Label string
	// Study is a catalog name (see Studies) or a candlestick name such as
	// CDLENGULFING.
	Study string
	// Period overrides the study default when positive.
	Period int
}

func (r Request) label() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Study
}

// Output is the outcome of one request.
type Output struct {
	Request Request
	Lines   Lines
	Err     error
}

// Suite runs requests against an engine.
type Suite struct {
	engine  *gota.Engine
	workers int
	log     zerolog.Logger
}

// Option customises a Suite.
type Option func(*Suite)

// WithWorkers bounds the number of studies evaluated concurrently.
func WithWorkers(n int) Option {
	return func(s *Suite) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithLogger attaches a logger for per-request failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Suite) { s.log = l.With().Str("component", "suite").Logger() }
}

// New creates a suite over e, or over gota.Default() when e is nil.
func New(e *gota.Engine, opts ...Option) *Suite {
	if e == nil {
		e = gota.Default()
	}
	s := &Suite{engine: e, workers: runtime.GOMAXPROCS(0), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run evaluates every request and returns the outputs in request order.
// Failures of individual studies are reported on their Output; the returned
// error covers an invalid frame, unknown study names and cancellation.
func (s *Suite) Run(ctx context.Context, f Frame, reqs []Request) ([]Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	runners := make([]runner, len(reqs))
	for i, r := range reqs {
		rn, ok := lookup(r.Study)
		if !ok {
			return nil, core.Errorf(core.FuncNotFound, "suite.Run", "unknown study %q", r.Study)
		}
		runners[i] = rn
	}

	out := make([]Output, len(reqs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(s.workers, len(reqs)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i] = s.eval(f, reqs[i], runners[i])
			}
		}()
	}

	var cancelled error
feed:
	for i := range reqs {
		select {
		case jobs <- i:
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	if cancelled != nil {
		return nil, fmt.Errorf("suite: %w", cancelled)
	}
	return out, nil
}

func (s *Suite) eval(f Frame, r Request, rn runner) Output {
	p := r.Period
	if p <= 0 {
		p = rn.period
	}
	lines, err := rn.run(s.engine, f, p)
	if err != nil {
		s.log.Warn().Str("study", r.Study).Str("label", r.label()).Err(err).Msg("study failed")
	}
	return Output{Request: r, Lines: lines, Err: err}
}

// Err joins the errors of every failed output.
func Err(outs []Output) error {
	var errs []error
	for _, o := range outs {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Request.label(), o.Err))
		}
	}
	return errors.Join(errs...)
}

// Plot flattens the successful outputs into plot series named
// "label" for single-line studies and "label.line" otherwise.
func (f Frame) Plot(outs []Output) ([]gota.PlotData, error) {
	var ts []int64
	if f.Interval != 0 {
		ts = gota.GenerateTimestamps(f.Start, f.Len(), f.Interval)
	}
	var data []gota.PlotData
	for _, o := range outs {
		if o.Err != nil {
			continue
		}
		names := make([]string, 0, len(o.Lines))
		for n := range o.Lines {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			name := o.Request.label()
			if len(o.Lines) > 1 {
				name += "." + n
			}
			pd, err := gota.PlotFromResult(name, o.Lines[n], ts)
			if err != nil {
				return nil, err
			}
			data = append(data, pd)
		}
	}
	return data, nil
}
