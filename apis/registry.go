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

package apis

import "reflect"

// Registry is the process-wide mapping from argument class names (and their
// canonical Go types) to Specs. It resolves declared-type references that
// cross module boundaries and backs the name-driven classification tiers.
//
// Registration is last-wins: re-registering a name replaces the spec but
// keeps the original iteration position. Entries iterates in insertion
// order, which the name-substring tier depends on.
type Registry interface {
	// Register inserts or overwrites the entry keyed by s.Name.
	// The spec's kind set must be non-empty.
	Register(s Spec) error
	// Lookup returns the spec registered under name (case-insensitive).
	Lookup(name string) (Spec, bool)
	// LookupType returns the spec whose canonical Go type is t.
	LookupType(t reflect.Type) (Spec, bool)
	// Entries returns a snapshot of all specs in registration order.
	Entries() []Spec
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}
