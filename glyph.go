/*
   Copyright 2026 The Glyph Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package glyph

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/builder"
	"github.com/betodealmeida/glyph/chart"
	"github.com/betodealmeida/glyph/config"
)

// init initializes the global cls state.
func init() {
	// Initialize state with default cfg, reg, and cls.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil, nil)
	s.cls = b.BuildClassifier(s.cfg, s.reg, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("glyph: builder returned nil registry")
	// ErrNilClassifier is returned when a builder returns a nil classifier.
	ErrNilClassifier = errors.New("glyph: builder returned nil classifier")
)

// New builds a chart from name and render function fn using the global
// glyph cls and configuration.
// This is a convenience wrapper around the global cls.
func New(name string, fn any, opts ...chart.Option) (*chart.Chart, error) {
	s := st.Load()
	return chart.New(name, fn, s.cls, s.cfg, opts...)
}

// Classify classifies the parameters of fn using the global glyph cls.
// It uses the global glyph configuration and reg.
// This is a convenience wrapper around the global cls.
func Classify(fn any, req apis.Request) *apis.Descriptor {
	s := st.Load()
	return s.cls.Classify(fn, req, s.cfg)
}

// Register adds an argument spec to the global glyph reg.
// This is a convenience wrapper around the global reg.
func Register(s apis.Spec) error {
	return st.Load().reg.Register(s)
}

// Lookup returns the argument spec registered under name in the global
// glyph reg.
// This is a convenience wrapper around the global reg.
func Lookup(name string) (apis.Spec, bool) {
	return st.Load().reg.Lookup(name)
}

// SetAll explicitly sets all global glyph state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, cls apis.Classifier, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Registry
	nreg := reg
	npreg := false
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg, next)
	} else {
		npreg = true
	}

	// Classifier
	ncls := cls
	npcls := false
	if ncls == nil {
		ncls = nbld.BuildClassifier(ncfg, nreg, old.cls, next)
	} else {
		npcls = true
	}

	// Ensure non-nil reg and cls.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ncls == nil {
		panic(ErrNilClassifier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  ncfg,
			ext:  next,
			reg:  nreg,
			cls:  ncls,
			bld:  nbld,
			preg: npreg,
			pcls: npcls,
		},
	)
}

// Config returns the global glyph configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global glyph configuration to cfg.
// It rebuilds the global reg and cls using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and cls based on the new cfg and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg, old.ext)
	}
	ncls := old.cls
	if !old.pcls {
		ncls = b.BuildClassifier(cfg, nreg, old.cls, old.ext)
	}

	// Ensure non-nil reg and cls.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ncls == nil {
		panic(ErrNilClassifier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  cfg,
			ext:  old.ext,
			reg:  nreg,
			cls:  ncls,
			bld:  b,
			preg: old.preg,
			pcls: old.pcls,
		},
	)
}

// Registry returns the global glyph reg.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry sets the global glyph reg to reg.
// It uses the global glyph configuration to rebuild the global cls.
// This is a convenience wrapper around the global state.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new cls based on the old cfg and new reg.
	ncls := old.cls
	if !old.pcls {
		ncls = b.BuildClassifier(old.cfg, reg, old.cls, old.ext)
	}

	// Ensure non-nil cls.
	if ncls == nil {
		panic(ErrNilClassifier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  reg,
			cls:  ncls,
			bld:  b,
			preg: true,
			pcls: old.pcls,
		},
	)
}

// Classifier returns the global glyph cls.
func Classifier() apis.Classifier {
	return st.Load().cls
}

// SetClassifier sets the global glyph cls to cls.
// It uses the global glyph configuration and reg.
// This is a convenience wrapper around the global state.
func SetClassifier(cls apis.Classifier) {
	if cls == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			cls:  cls,
			bld:  old.bld,
			preg: old.preg,
			pcls: true,
		},
	)
}

// Builder returns the global glyph bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global glyph bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new reg and cls based on the new bld and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, old.ext)
	}
	ncls := old.cls
	if !old.pcls {
		ncls = b.BuildClassifier(old.cfg, nreg, old.cls, old.ext)
	}

	// Ensure non-nil reg and cls.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ncls == nil {
		panic(ErrNilClassifier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  nreg,
			cls:  ncls,
			bld:  b,
			preg: old.preg,
			pcls: old.pcls,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new reg and cls based on the new ext and old state.
	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg, ext)
	}
	ncls := old.cls
	if !old.pcls {
		ncls = b.BuildClassifier(old.cfg, nreg, old.cls, ext)
	}

	// Ensure non-nil reg and cls.
	if nreg == nil {
		panic(ErrNilRegistry)
	}
	if ncls == nil {
		panic(ErrNilClassifier)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  ext,
			reg:  nreg,
			cls:  ncls,
			bld:  b,
			preg: old.preg,
			pcls: old.pcls,
		},
	)
}

// ExtAs returns the global glyph extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsRegistryPinned returns whether the global glyph reg is pinned (immutable).
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry makes the global glyph reg immutable.
func PinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			cls:  old.cls,
			bld:  old.bld,
			preg: true,
			pcls: old.pcls,
		},
	)
}

// UnpinRegistry makes the global glyph reg mutable again.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			cls:  old.cls,
			bld:  old.bld,
			preg: false,
			pcls: old.pcls,
		},
	)
}

// IsClassifierPinned returns whether the global glyph cls is pinned (immutable).
func IsClassifierPinned() bool {
	return st.Load().pcls
}

// PinClassifier makes the global glyph cls immutable.
func PinClassifier() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			cls:  old.cls,
			bld:  old.bld,
			preg: old.preg,
			pcls: true,
		},
	)
}

// UnpinClassifier makes the global glyph cls mutable again.
func UnpinClassifier() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:  old.cfg,
			ext:  old.ext,
			reg:  old.reg,
			cls:  old.cls,
			bld:  old.bld,
			preg: old.preg,
			pcls: false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global glyph state.
var st atomic.Pointer[state]

// state is the global glyph state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global glyph configuration.
	cfg apis.Config
	// ext is the global glyph extension configuration.
	ext any
	// reg is the global glyph reg.
	reg apis.Registry
	// cls is the global glyph cls.
	cls apis.Classifier
	// bld is the global glyph bld.
	bld apis.Builder
	// preg indicates whether the reg is pinned (immutable).
	preg bool
	// pcls indicates whether the cls is pinned (immutable).
	pcls bool
}
