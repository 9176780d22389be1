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

package registry

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/betodealmeida/glyph/apis"
)

var (
	// ErrEmptyName is returned when a spec without a name is registered.
	ErrEmptyName = errors.New("glyph(registry): empty spec name provided")
	// ErrNoKinds is returned when a spec with an empty kind set is
	// registered. Every argument class must declare at least one kind;
	// control generation falls back on it.
	ErrNoKinds = errors.New("glyph(registry): spec declares no kinds")
)

// New constructs an empty Registry. cfg is accepted for builder symmetry;
// no knob currently affects registration.
func New(_ apis.Config) apis.Registry {
	return &registry{
		byName: make(map[string]apis.Spec),
		byType: make(map[reflect.Type]apis.Spec),
	}
}

// registry is an insertion-ordered Registry guarded by a RWMutex. Iteration
// order is observable through Entries (the name-substring tier depends on
// it), so an ordered key slice backs the maps instead of a sync.Map.
type registry struct {
	mu     sync.RWMutex
	byName map[string]apis.Spec
	byType map[reflect.Type]apis.Spec
	order  []string
}

// Register inserts or overwrites the entry keyed by the lowercased spec
// name. Re-registration is last-wins and keeps the original iteration
// position.
func (r *registry) Register(s apis.Spec) error {
	if s.Name == "" {
		return ErrEmptyName
	}
	if len(s.Kinds) == 0 {
		return ErrNoKinds
	}
	key := strings.ToLower(s.Name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[key]; !exists {
		r.order = append(r.order, key)
	}
	r.byName[key] = s
	if s.Of != nil {
		r.byType[s.Of] = s
	}
	return nil
}

// Lookup returns the spec registered under name, case-insensitively.
func (r *registry) Lookup(name string) (apis.Spec, bool) {
	if name == "" {
		return apis.Spec{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byName[strings.ToLower(name)]
	return s, ok
}

// LookupType returns the spec whose canonical Go type is exactly t.
func (r *registry) LookupType(t reflect.Type) (apis.Spec, bool) {
	if t == nil {
		return apis.Spec{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byType[t]
	return s, ok
}

// Entries returns a snapshot of all specs in registration order.
func (r *registry) Entries() []apis.Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]apis.Spec, 0, len(r.order))
	for _, key := range r.order {
		entries = append(entries, r.byName[key])
	}
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName = make(map[string]apis.Spec)
	r.byType = make(map[reflect.Type]apis.Spec)
	r.order = nil
}
