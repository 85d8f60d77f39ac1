// Package gota is a technical-analysis engine: moving averages, momentum
// and volatility studies, Hilbert transform cycle tools, rolling statistics
// and candlestick pattern recognition over aligned float64 series.
//
// Every operation goes through an Engine, which snapshots the configuration
// registry once per call, records the outcome in its last-error slot and,
// when configured, logs and meters the call.
package gota

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/evdnx/gota/config"
	"github.com/evdnx/gota/indicator/core"
	"github.com/evdnx/gota/indicator/pattern"
)

// Engine is the façade over the indicator packages. It is safe for
// concurrent use; registry writes are serialised against every read.
type Engine struct {
	reg     *config.Registry
	last    atomic.Int64
	log     zerolog.Logger
	metrics *metrics
	candles pattern.Recognizer
}

// Option customises an Engine.
type Option func(*Engine) error

// WithLogger attaches a logger. Registry changes are logged at Info and
// rejected calls at Debug.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) error {
		e.log = l.With().Str("component", "gota").Logger()
		return nil
	}
}

// WithMetrics registers call counters and latency histograms on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) error {
		m, err := newMetrics(reg)
		if err != nil {
			return err
		}
		e.metrics = m
		return nil
	}
}

// WithSettings starts the engine from s instead of the defaults.
func WithSettings(s config.Settings) Option {
	return func(e *Engine) error {
		return e.reg.Replace(s)
	}
}

// New creates an engine with its own registry.
func New(opts ...Option) (*Engine, error) {
	reg, err := config.NewRegistry(config.DefaultSettings())
	if err != nil {
		return nil, err
	}
	e := &Engine{reg: reg, log: zerolog.Nop(), candles: pattern.NewRecognizer()}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("gota: %w", err)
		}
	}
	return e, nil
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine.
func Default() *Engine {
	defaultOnce.Do(func() {
		e, err := New()
		if err != nil {
			panic(err)
		}
		defaultEngine = e
	})
	return defaultEngine
}

// Errno is the code of the most recent call on this engine; Success when it
// completed without error.
func (e *Engine) Errno() core.Code { return core.Code(e.last.Load()) }

// Settings returns a snapshot of the current configuration.
func (e *Engine) Settings() config.Settings { return e.reg.Snapshot() }

// Compat returns the compatibility mode.
func (e *Engine) Compat() config.Compat {
	e.last.Store(int64(core.Success))
	return e.reg.Compat()
}

// SetCompat switches the compatibility mode for subsequent calls.
func (e *Engine) SetCompat(c config.Compat) error {
	err := e.reg.SetCompat(c)
	e.record("SetCompat", err)
	if err == nil {
		e.log.Info().Stringer("compat", c).Msg("compatibility changed")
	}
	return err
}

// UnstablePeriod reads the unstable period of one function.
func (e *Engine) UnstablePeriod(id config.UnstableID) (int, error) {
	p, err := e.reg.UnstablePeriod(id)
	e.record("GetUnstablePeriod", err)
	return p, err
}

// SetUnstablePeriod sets the unstable period of one function, or of all of
// them with config.UnstAll.
func (e *Engine) SetUnstablePeriod(id config.UnstableID, period int) error {
	err := e.reg.SetUnstablePeriod(id, period)
	e.record("SetUnstablePeriod", err)
	if err == nil {
		e.log.Info().Stringer("function", id).Int("period", period).Msg("unstable period changed")
	}
	return err
}

// ReplaceSettings installs a complete snapshot, e.g. one read with
// config.LoadFile.
func (e *Engine) ReplaceSettings(s config.Settings) error {
	err := e.reg.Replace(s)
	e.record("ReplaceSettings", err)
	if err == nil {
		e.log.Info().Stringer("compat", s.Compat).Msg("settings replaced")
	}
	return err
}

func (e *Engine) record(op string, err error) core.Code {
	code := core.CodeOf(err)
	e.last.Store(int64(code))
	if err != nil {
		e.log.Debug().Str("op", op).Stringer("code", code).Err(err).Msg("call rejected")
	}
	return code
}

// call runs f against one settings snapshot and records the outcome.
func call[T any](e *Engine, op string, f func(cfg config.Settings) (T, error)) (T, error) {
	start := time.Now()
	res, err := f(e.reg.Snapshot())
	code := e.record(op, err)
	if e.metrics != nil {
		e.metrics.observe(op, code, time.Since(start))
	}
	return res, err
}

// ---- Package-level access to the default engine ----

// Errno reports the last-error slot of the default engine.
func Errno() core.Code { return Default().Errno() }

// GetCompat reads the default engine's compatibility mode.
func GetCompat() config.Compat { return Default().Compat() }

// SetCompat sets the default engine's compatibility mode.
func SetCompat(c config.Compat) error { return Default().SetCompat(c) }

// GetUnstablePeriod reads the default engine's unstable period for id.
func GetUnstablePeriod(id config.UnstableID) (int, error) { return Default().UnstablePeriod(id) }

// SetUnstablePeriod sets the default engine's unstable period for id.
func SetUnstablePeriod(id config.UnstableID, period int) error {
	return Default().SetUnstablePeriod(id, period)
}
