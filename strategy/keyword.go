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
	"github.com/betodealmeida/glyph/config"
)

// keywordOrder fixes the kind probe order so classification is
// deterministic: data kinds before styling kinds.
var keywordOrder = []apis.Kind{
	apis.KindTemporal,
	apis.KindMetric,
	apis.KindDimension,
	apis.KindNumber,
	apis.KindColor,
}

// NewKeywordStrategy creates the final-fallback strategy: the parameter name
// matches one of the fixed keyword groups ("time"/"date"/"x" imply a time
// column, "size"/"font" imply a numeric styling value, and so on). The
// matched kind resolves through the registry to the builtin spec for that
// kind.
func NewKeywordStrategy(reg apis.Registry) apis.Strategy {
	return &keywordStrategy{reg: reg}
}

type keywordStrategy struct {
	reg apis.Registry
}

// Ensure keywordStrategy implements apis.Strategy.
var _ apis.Strategy = (*keywordStrategy)(nil)

// TryClassify matches the parameter name against the keyword table.
func (s *keywordStrategy) TryClassify(p apis.Param, cfg apis.Config) (apis.Spec, bool) {
	if p.Name == "" || s.reg == nil {
		return apis.Spec{}, false
	}
	keywords := cfg.Keywords
	if keywords == nil {
		keywords = config.DefaultKeywords()
	}
	name := strings.ToLower(p.Name)
	for _, kind := range keywordOrder {
		for _, word := range keywords[kind] {
			if !matches(name, word) {
				continue
			}
			if spec, ok := s.reg.Lookup(kind.String()); ok {
				return spec, true
			}
		}
	}
	return apis.Spec{}, false
}

// matches applies the keyword rule: short keywords ("x", "y") must equal the
// whole name, longer keywords match as substrings.
func matches(name, word string) bool {
	word = strings.ToLower(word)
	if len(word) < 3 {
		return name == word
	}
	return strings.Contains(name, word)
}
