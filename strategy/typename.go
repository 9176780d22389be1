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
	"strings"

	"github.com/betodealmeida/glyph/apis"
)

// NewTypeNameStrategy creates the second-tier strategy: the declared type's
// name matches a registry entry. This is how type identities that cross
// module boundaries (a re-declared Metric type in user code) still resolve
// to the registered class.
func NewTypeNameStrategy(reg apis.Registry) apis.Strategy {
	return &typeNameStrategy{reg: reg}
}

type typeNameStrategy struct {
	reg apis.Registry
}

// Ensure typeNameStrategy implements apis.Strategy.
var _ apis.Strategy = (*typeNameStrategy)(nil)

// TryClassify looks the declared type's name up in the registry.
func (s *typeNameStrategy) TryClassify(p apis.Param, _ apis.Config) (apis.Spec, bool) {
	if p.Type == nil || s.reg == nil {
		return apis.Spec{}, false
	}
	name := p.Type.Name()
	if name == "" {
		// Unnamed types (pointers, slices) fall through to the unwrap tier.
		return apis.Spec{}, false
	}
	return s.reg.Lookup(strings.ToLower(name))
}
