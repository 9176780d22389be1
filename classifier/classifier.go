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

// Package classifier walks a render function's parameters and resolves each
// into an argument spec through an ordered, first-match-wins strategy chain.
package classifier

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/chart"
)

// New constructs an apis.Classifier that tries the given strategies in
// order per parameter. Nil strategies are ignored. The returned classifier
// is safe for concurrent use provided strategies are.
func New(strategies ...apis.Strategy) apis.Classifier {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving classifier over a set of
// strategies.
type chain struct {
	strats []apis.Strategy
}

// Classify builds the call-plan descriptor for fn. Classification is
// best-effort: inputs that cannot be introspected (or a panicking
// reflection path) degrade to an empty descriptor so chart creation never
// fails on them.
func (c chain) Classify(fn any, req apis.Request, cfg apis.Config) (d *apis.Descriptor) {
	d = &apis.Descriptor{}
	defer func() {
		if r := recover(); r != nil {
			cfg.Log().Warn("glyph: classification failed, chart has no arguments",
				zap.Any("panic", r))
			d = &apis.Descriptor{}
		}
	}()

	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		cfg.Log().Warn("glyph: render function is not introspectable",
			zap.String("type", fmt.Sprintf("%T", fn)))
		return d
	}
	t := v.Type()
	d.Func = v
	d.Bindings = make([]apis.Binding, 0, t.NumIn())

	nameIdx := 0
	seen := map[string]int{}
	for i := 0; i < t.NumIn(); i++ {
		pt := t.In(i)
		if fixed := chart.FixedKindOf(pt); fixed != apis.FixedNone {
			d.Bindings = append(d.Bindings, apis.Binding{
				Param: apis.Param{Index: i, Type: pt},
				Fixed: fixed,
			})
			continue
		}

		var name string
		if nameIdx < len(req.Names) {
			name = req.Names[nameIdx]
		}
		nameIdx++

		p := apis.Param{Index: i, Name: name, Type: pt}
		spec, ok := c.classify(p, req, cfg)
		if ok {
			if name == "" {
				// No author-supplied name: fall back to the class name.
				name = spec.Name
			}
			name = unique(name, seen)
			p.Name = name
		} else {
			cfg.Log().Debug("glyph: parameter not classified",
				zap.Int("index", i),
				zap.String("name", name),
				zap.String("type", pt.String()))
		}
		d.Bindings = append(d.Bindings, apis.Binding{
			Param:      p,
			Spec:       spec,
			Classified: ok,
		})
	}
	return d
}

// classify resolves one parameter: explicit override first, then the
// strategy chain in order.
func (c chain) classify(p apis.Param, req apis.Request, cfg apis.Config) (apis.Spec, bool) {
	if p.Name != "" {
		if spec, ok := req.Overrides[p.Name]; ok {
			return spec, true
		}
	}
	for _, s := range c.strats {
		if spec, ok := s.TryClassify(p, cfg); ok {
			return spec, true
		}
	}
	return apis.Spec{}, false
}

// unique suffixes repeated argument names so the name -> value map stays
// unambiguous ("metric", "metric2", ...).
func unique(name string, seen map[string]int) string {
	seen[name]++
	if n := seen[name]; n > 1 {
		return fmt.Sprintf("%s%d", name, n)
	}
	return name
}
