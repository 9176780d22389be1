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
	uref "github.com/betodealmeida/glyph/utils/reflect"
)

// NewUnwrapStrategy creates the third-tier strategy: optional or
// multi-valued parameters (*Metric, []Dimension) are unwrapped to their
// nearest named base type and the earlier tiers are retried against it.
func NewUnwrapStrategy(inner ...apis.Strategy) apis.Strategy {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(inner))
	for _, s := range inner {
		if s != nil {
			out = append(out, s)
		}
	}
	return &unwrapStrategy{inner: out}
}

type unwrapStrategy struct {
	inner []apis.Strategy
}

// Ensure unwrapStrategy implements apis.Strategy.
var _ apis.Strategy = (*unwrapStrategy)(nil)

// TryClassify normalizes container types and retries the inner tiers.
func (s *unwrapStrategy) TryClassify(p apis.Param, cfg apis.Config) (apis.Spec, bool) {
	t := p.Type
	if t == nil {
		return apis.Spec{}, false
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Array:
	default:
		// Nothing to unwrap.
		return apis.Spec{}, false
	}
	base, err := uref.Normalize(t, cfg)
	if err != nil || base == t {
		return apis.Spec{}, false
	}
	unwrapped := p
	unwrapped.Type = base
	for _, in := range s.inner {
		if spec, ok := in.TryClassify(unwrapped, cfg); ok {
			return spec, true
		}
	}
	return apis.Spec{}, false
}
