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

package reflect

import (
	"errors"
	"reflect"

	"github.com/betodealmeida/glyph/apis"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("glyph(reflect): nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// containers) does not contain a named type (e.g., anonymous struct, func).
	ErrReflectTypeNotNamed = errors.New("glyph(reflect): type has no name")
)

// DefaultMaxUnwrap bounds container unwrapping when cfg.MaxUnwrap is unset.
const DefaultMaxUnwrap = 8

// Normalize unwraps containers according to cfg.MaxUnwrap and returns the
// nearest named inner type, or an error if none is found.
//
// Unwrapping policy:
//   - ptr/slice/array -> Elem()
//   - default: if t.Name() != "", return t; otherwise ErrReflectTypeNotNamed.
//
// Pointer unwrapping is how optional ("X or absent") render parameters reach
// their base argument type; slice unwrapping covers multi-valued arguments.
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrReflectTypeNotNamed
		}
	}

	// After reaching max depth, ensure we ended on a named type.
	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}
