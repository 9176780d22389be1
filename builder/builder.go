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

// Package builder assembles the default registry and classifier. The
// classifier chains the classification tiers in precedence order: direct
// type identity, registered type name, wrapper unwrapping, parameter-name
// substring match, and finally the keyword table.
package builder

import (
	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/argument"
	"github.com/betodealmeida/glyph/classifier"
	"github.com/betodealmeida/glyph/registry"
	"github.com/betodealmeida/glyph/strategy"
)

type builder struct{}

// New returns the default Builder.
func New() apis.Builder {
	return builder{}
}

// BuildRegistry creates a registry seeded with the builtin argument specs,
// then migrates any caller-registered specs from prev so user registrations
// survive a rebuild.
func (builder) BuildRegistry(cfg apis.Config, prev apis.Registry, _ any) apis.Registry {
	reg := registry.New(cfg)
	for _, s := range argument.Builtins() {
		_ = reg.Register(s)
	}
	if prev != nil {
		for _, s := range prev.Entries() {
			_ = reg.Register(s)
		}
	}
	return reg
}

// BuildClassifier creates the default tiered classifier over reg.
func (builder) BuildClassifier(cfg apis.Config, reg apis.Registry, _ apis.Classifier, _ any) apis.Classifier {
	direct := strategy.NewDirectStrategy(reg)
	byName := strategy.NewTypeNameStrategy(reg)
	return classifier.New(
		direct,
		byName,
		strategy.NewUnwrapStrategy(direct, byName),
		strategy.NewNameStrategy(reg),
		strategy.NewKeywordStrategy(reg),
	)
}
