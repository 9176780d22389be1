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

package strategy_test

import (
	"reflect"
	"testing"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/argument"
	"github.com/betodealmeida/glyph/config"
	"github.com/betodealmeida/glyph/registry"
	"github.com/betodealmeida/glyph/strategy"
)

func newRegistry(tb testing.TB) apis.Registry {
	tb.Helper()
	reg := registry.New(config.DefaultConfig())
	for _, s := range argument.Builtins() {
		if err := reg.Register(s); err != nil {
			tb.Fatalf("Register(%s): %v", s.Name, err)
		}
	}
	return reg
}

func param(name string, t reflect.Type) apis.Param {
	return apis.Param{Name: name, Type: t}
}

// selfSpec is an unregistered user type whose zero value reports a spec.
type selfSpec struct{}

func (selfSpec) Spec() apis.Spec {
	return apis.Spec{Name: "self", Kinds: []apis.Kind{apis.KindGeneric}}
}
func (selfSpec) Value() string { return "" }

func TestDirectStrategy(t *testing.T) {
	cfg := config.DefaultConfig()
	s := strategy.NewDirectStrategy(newRegistry(t))

	// Registered canonical type.
	spec, ok := s.TryClassify(param("", reflect.TypeOf(argument.Metric{})), cfg)
	if !ok || spec.Name != "metric" {
		t.Fatalf("Metric{}: got (%q,%v), want (metric,true)", spec.Name, ok)
	}

	// Unregistered type implementing the argument interface.
	spec, ok = s.TryClassify(param("", reflect.TypeOf(selfSpec{})), cfg)
	if !ok || spec.Name != "self" {
		t.Fatalf("selfSpec{}: got (%q,%v), want (self,true)", spec.Name, ok)
	}

	// Containers are left to the unwrap tier.
	if _, ok := s.TryClassify(param("", reflect.TypeOf(&argument.Metric{})), cfg); ok {
		t.Fatalf("*Metric: direct tier must not classify containers")
	}
	if _, ok := s.TryClassify(param("", reflect.TypeOf([]argument.Metric{})), cfg); ok {
		t.Fatalf("[]Metric: direct tier must not classify containers")
	}

	// Plain types stay unclassified.
	if _, ok := s.TryClassify(param("x", reflect.TypeOf("")), cfg); ok {
		t.Fatalf("string: want unclassified")
	}
}

// Metric is a re-declared local type: identity differs from the registered
// canonical type but the name matches.
type Metric struct{}

func TestTypeNameStrategy(t *testing.T) {
	cfg := config.DefaultConfig()
	s := strategy.NewTypeNameStrategy(newRegistry(t))

	spec, ok := s.TryClassify(param("", reflect.TypeOf(Metric{})), cfg)
	if !ok || spec.Name != "metric" {
		t.Fatalf("local Metric: got (%q,%v), want (metric,true)", spec.Name, ok)
	}

	// Unnamed types fall through.
	if _, ok := s.TryClassify(param("", reflect.TypeOf(&Metric{})), cfg); ok {
		t.Fatalf("*Metric: want fall-through for unnamed type")
	}
}

func TestUnwrapStrategy(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := newRegistry(t)
	s := strategy.NewUnwrapStrategy(
		strategy.NewDirectStrategy(reg),
		strategy.NewTypeNameStrategy(reg),
	)

	// Optional argument.
	spec, ok := s.TryClassify(param("", reflect.TypeOf(&argument.Metric{})), cfg)
	if !ok || spec.Name != "metric" {
		t.Fatalf("*Metric: got (%q,%v), want (metric,true)", spec.Name, ok)
	}

	// Multi-valued argument.
	spec, ok = s.TryClassify(param("", reflect.TypeOf([]argument.Dimension{})), cfg)
	if !ok || spec.Name != "dimension" {
		t.Fatalf("[]Dimension: got (%q,%v), want (dimension,true)", spec.Name, ok)
	}

	// Non-container input is not this tier's job.
	if _, ok := s.TryClassify(param("", reflect.TypeOf(argument.Metric{})), cfg); ok {
		t.Fatalf("Metric: want fall-through for non-container")
	}

	// Unwrapped base that no inner tier knows stays unclassified.
	if _, ok := s.TryClassify(param("", reflect.TypeOf([]string{})), cfg); ok {
		t.Fatalf("[]string: want unclassified")
	}
}

func TestNameStrategy(t *testing.T) {
	cfg := config.DefaultConfig()
	s := strategy.NewNameStrategy(newRegistry(t))

	spec, ok := s.TryClassify(param("primaryMetric", reflect.TypeOf("")), cfg)
	if !ok || spec.Name != "metric" {
		t.Fatalf("primaryMetric: got (%q,%v), want (metric,true)", spec.Name, ok)
	}

	// Case-insensitive.
	spec, ok = s.TryClassify(param("MainDimension", reflect.TypeOf("")), cfg)
	if !ok || spec.Name != "dimension" {
		t.Fatalf("MainDimension: got (%q,%v), want (dimension,true)", spec.Name, ok)
	}

	if _, ok := s.TryClassify(param("", reflect.TypeOf("")), cfg); ok {
		t.Fatalf("empty name: want unclassified")
	}
	if _, ok := s.TryClassify(param("title", reflect.TypeOf("")), cfg); ok {
		t.Fatalf("title: want unclassified")
	}
}

func TestNameStrategy_InsertionOrderBreaksTies(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)
	a := apis.Spec{Name: "size", Kinds: []apis.Kind{apis.KindNumber}}
	b := apis.Spec{Name: "sizecolor", Kinds: []apis.Kind{apis.KindColor}}
	if err := reg.Register(a); err != nil {
		t.Fatalf("Register(size): %v", err)
	}
	if err := reg.Register(b); err != nil {
		t.Fatalf("Register(sizecolor): %v", err)
	}
	s := strategy.NewNameStrategy(reg)

	// Both entries match; the earlier registration wins.
	spec, ok := s.TryClassify(param("sizecolor", reflect.TypeOf("")), cfg)
	if !ok || spec.Name != "size" {
		t.Fatalf("sizecolor: got (%q,%v), want (size,true)", spec.Name, ok)
	}
}

func TestKeywordStrategy(t *testing.T) {
	cfg := config.DefaultConfig()
	s := strategy.NewKeywordStrategy(newRegistry(t))

	cases := []struct {
		name string
		want string
	}{
		{"x", "temporal"},
		{"xaxis_col", "temporal"},
		{"orderDate", "temporal"},
		{"y", "metric"},
		{"measureValue", "metric"},
		{"seriesBy", "dimension"},
		{"fontScale", "number"},
		{"fill", "color"},
		{"strokeColour", "color"},
	}
	for _, tc := range cases {
		spec, ok := s.TryClassify(param(tc.name, reflect.TypeOf("")), cfg)
		if !ok || spec.Name != tc.want {
			t.Fatalf("%s: got (%q,%v), want (%s,true)", tc.name, spec.Name, ok, tc.want)
		}
	}
}

func TestKeywordStrategy_ShortKeywordsMatchExactly(t *testing.T) {
	cfg := config.DefaultConfig()
	s := strategy.NewKeywordStrategy(newRegistry(t))

	// "box" contains "x" but single-letter keywords require the whole name.
	if spec, ok := s.TryClassify(param("box", reflect.TypeOf("")), cfg); ok {
		t.Fatalf("box: got %q, want unclassified", spec.Name)
	}
	if _, ok := s.TryClassify(param("title", reflect.TypeOf("")), cfg); ok {
		t.Fatalf("title: want unclassified")
	}
}

func TestKeywordStrategy_DataKindsBeatStylingKinds(t *testing.T) {
	cfg := config.DefaultConfig()
	s := strategy.NewKeywordStrategy(newRegistry(t))

	// "dateSize" matches both the temporal and number groups; the data kind
	// wins by probe order.
	spec, ok := s.TryClassify(param("dateSize", reflect.TypeOf("")), cfg)
	if !ok || spec.Name != "temporal" {
		t.Fatalf("dateSize: got (%q,%v), want (temporal,true)", spec.Name, ok)
	}
}
