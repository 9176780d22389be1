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

// NewNameStrategy creates the fourth-tier strategy: the parameter NAME
// contains a registered class name as a substring, case-insensitively.
// Registry iteration (insertion) order decides ties: first match wins.
func NewNameStrategy(reg apis.Registry) apis.Strategy {
	return &nameStrategy{reg: reg}
}

type nameStrategy struct {
	reg apis.Registry
}

// Ensure nameStrategy implements apis.Strategy.
var _ apis.Strategy = (*nameStrategy)(nil)

// TryClassify scans registered class names against the parameter name.
func (s *nameStrategy) TryClassify(p apis.Param, _ apis.Config) (apis.Spec, bool) {
	if p.Name == "" || s.reg == nil {
		return apis.Spec{}, false
	}
	name := strings.ToLower(p.Name)
	for _, e := range s.reg.Entries() {
		if strings.Contains(name, strings.ToLower(e.Name)) {
			return e, true
		}
	}
	return apis.Spec{}, false
}
