package config

import (
	"sync"

	"github.com/evdnx/gota/indicator/core"
)

// Registry is the mutable, process-wide holder of Settings. Readers take a
// Snapshot once per computation; writers are serialised against readers.
type Registry struct {
	mu sync.RWMutex
	s  Settings
}

// NewRegistry creates a registry initialised to s.
func NewRegistry(s Settings) (*Registry, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Registry{s: s}, nil
}

// Snapshot returns a copy of the current settings.
func (r *Registry) Snapshot() Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s
}

// Compat returns the current compatibility mode.
func (r *Registry) Compat() Compat {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.Compat
}

// SetCompat replaces the compatibility mode.
func (r *Registry) SetCompat(c Compat) error {
	if !c.Valid() {
		return core.BadParamf("SetCompat", "unknown compatibility %d", int(c))
	}
	r.mu.Lock()
	r.s.Compat = c
	r.mu.Unlock()
	return nil
}

// UnstablePeriod reads one table entry. UnstAll is write-only.
func (r *Registry) UnstablePeriod(id UnstableID) (int, error) {
	if id < 0 || id >= UnstAll {
		return 0, core.Errorf(core.FuncNotFound, "GetUnstablePeriod", "unknown unstable function id %d", int(id))
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s.Unstable[id], nil
}

// SetUnstablePeriod writes one entry, or all of them for UnstAll.
func (r *Registry) SetUnstablePeriod(id UnstableID, period int) error {
	if id < 0 || id > UnstAll {
		return core.Errorf(core.FuncNotFound, "SetUnstablePeriod", "unknown unstable function id %d", int(id))
	}
	if err := core.CheckPeriod("SetUnstablePeriod", "period", period, 0, core.MaxPeriod); err != nil {
		return err
	}
	r.mu.Lock()
	r.s = r.s.WithUnstable(id, period)
	r.mu.Unlock()
	return nil
}

// Replace installs a complete validated snapshot, e.g. one read by LoadFile.
func (r *Registry) Replace(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	r.s = s
	r.mu.Unlock()
	return nil
}
