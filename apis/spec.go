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

// Spec describes an argument class: its registry name, the descriptive
// metadata shown on generated controls, and the configuration used when
// constructing controls and instances.
//
// Spec is an immutable value. Derived variants (e.g. a "Font Size" number
// with min 12 and max 200) are produced by copying and overriding fields,
// never by mutating a shared Spec. Unset numeric fields are nil so a derived
// spec inherits them from its base.
type Spec struct {
	// Name is the registry key, lowercase by convention ("metric", "color").
	Name string
	// Label is the human-readable control label.
	Label string
	// Description is the control help text.
	Description string
	// Kinds is the non-empty set of semantic kinds; Kinds[0] is primary.
	Kinds []Kind
	// Of optionally names the canonical Go type carrying values of this spec.
	Of reflect.Type
	// Default is the raw default value: a numeric string for numbers, a hex
	// color for colors, a scheme name for palettes. Empty means unset.
	Default string
	// Min, Max, Step configure numeric controls. Nil means unset.
	Min, Max, Step *float64
}

// Kind returns the primary kind, or KindGeneric when Kinds is empty.
func (s Spec) Kind() Kind {
	if len(s.Kinds) == 0 {
		return KindGeneric
	}
	return s.Kinds[0]
}

// IsData reports whether the primary kind is a data-selection kind.
func (s Spec) IsData() bool {
	return s.Kind().IsData()
}

// IsZero reports whether s carries no classification at all.
func (s Spec) IsZero() bool {
	return s.Name == "" && len(s.Kinds) == 0
}
