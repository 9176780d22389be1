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

// FixedKind identifies the well-known non-classified render-function
// parameters: positional infrastructure supplied by the host on every render
// cycle, never surfaced as generated controls.
type FixedKind uint8

const (
	// FixedNone marks a parameter that is not fixed infrastructure.
	FixedNone FixedKind = iota
	// FixedData is the tabular data input.
	FixedData
	// FixedTheme is the host theme.
	FixedTheme
	// FixedWidth is the pixel width.
	FixedWidth
	// FixedHeight is the pixel height.
	FixedHeight
	// FixedHooks is the host-interaction hook set.
	FixedHooks
	// FixedColumns is the datasource column list.
	FixedColumns
)

// Binding is the call-plan entry for a single render-function parameter.
type Binding struct {
	// Param is the underlying parameter.
	Param Param
	// Fixed is non-FixedNone for recognized infrastructure parameters.
	Fixed FixedKind
	// Spec is the classified argument spec; valid only when Classified.
	Spec Spec
	// Classified reports whether any tier produced a spec for this
	// parameter. Unclassified, non-fixed parameters receive the absent
	// value at call time and no generated control.
	Classified bool
}

// Descriptor is a render function plus its frozen classification: one
// Binding per parameter, in declaration order. Built once at chart creation
// and immutable thereafter.
type Descriptor struct {
	// Func is the render function; invalid when classification degraded.
	Func reflect.Value
	// Bindings has one entry per function parameter, in order.
	Bindings []Binding
}

// ArgNames returns the classified argument names in declaration order.
func (d *Descriptor) ArgNames() []string {
	names := make([]string, 0, len(d.Bindings))
	for _, b := range d.Bindings {
		if b.Classified {
			names = append(names, b.Param.Name)
		}
	}
	return names
}

// ArgSpecs returns the classified name -> spec mapping.
func (d *Descriptor) ArgSpecs() map[string]Spec {
	specs := make(map[string]Spec, len(d.Bindings))
	for _, b := range d.Bindings {
		if b.Classified {
			specs[b.Param.Name] = b.Spec
		}
	}
	return specs
}

// HasKind reports whether any classified argument has primary kind k.
func (d *Descriptor) HasKind(k Kind) bool {
	for _, b := range d.Bindings {
		if b.Classified && b.Spec.Kind() == k {
			return true
		}
	}
	return false
}
