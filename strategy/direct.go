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

package strategy

import (
	"reflect"

	"github.com/betodealmeida/glyph/apis"
)

// argIface is the reflected apis.Argument interface type.
var argIface = reflect.TypeOf((*apis.Argument)(nil)).Elem()

// NewDirectStrategy creates the first-tier strategy: the declared parameter
// type IS an argument type, either registered as a canonical type or
// implementing apis.Argument with a self-describing zero value.
func NewDirectStrategy(reg apis.Registry) apis.Strategy {
	return &directStrategy{reg: reg}
}

// directStrategy leaves containers (ptr/slice/array) to the unwrap tier.
type directStrategy struct {
	reg apis.Registry
}

// Ensure directStrategy implements apis.Strategy.
var _ apis.Strategy = (*directStrategy)(nil)

// TryClassify resolves the declared type directly.
func (s *directStrategy) TryClassify(p apis.Param, _ apis.Config) (apis.Spec, bool) {
	t := p.Type
	if t == nil {
		return apis.Spec{}, false
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Interface:
		// Containers are the unwrap tier's job; interface types carry no
		// zero value to interrogate.
		return apis.Spec{}, false
	}
	if s.reg != nil {
		if spec, ok := s.reg.LookupType(t); ok {
			return spec, true
		}
	}
	// Unregistered user-defined argument types still classify when their
	// zero value reports a spec.
	if t.Implements(argIface) {
		if arg, ok := reflect.Zero(t).Interface().(apis.Argument); ok {
			if spec := arg.Spec(); !spec.IsZero() {
				return spec, true
			}
		}
	}
	return apis.Spec{}, false
}
