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

package argument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/argument"
)

func TestDerive_OverridesAndInherits(t *testing.T) {
	fontSize := argument.Derive(argument.NumberSpec,
		argument.WithName("font_size"),
		argument.WithLabel("Font Size"),
		argument.WithMin(12),
		argument.WithMax(200),
		argument.WithDefault("14"),
	)

	assert.Equal(t, "font_size", fontSize.Name)
	assert.Equal(t, "Font Size", fontSize.Label)
	assert.Equal(t, "14", fontSize.Default)
	require.NotNil(t, fontSize.Min)
	require.NotNil(t, fontSize.Max)
	assert.Equal(t, 12.0, *fontSize.Min)
	assert.Equal(t, 200.0, *fontSize.Max)

	// Fields without options are inherited from the base.
	require.NotNil(t, fontSize.Step)
	assert.Equal(t, *argument.NumberSpec.Step, *fontSize.Step)
	assert.Equal(t, apis.KindNumber, fontSize.Kind())
	assert.Equal(t, argument.NumberSpec.Of, fontSize.Of)
}

func TestDerive_DoesNotMutateBase(t *testing.T) {
	derived := argument.Derive(argument.MetricSpec,
		argument.WithName("revenue"),
		argument.WithKinds(apis.KindMetric, apis.KindNumber),
	)
	derived.Kinds[0] = apis.KindColor

	assert.Equal(t, "metric", argument.MetricSpec.Name)
	assert.Equal(t, []apis.Kind{apis.KindMetric}, argument.MetricSpec.Kinds)
	assert.Nil(t, argument.MetricSpec.Min)
}

func TestZeroValuesReportBuiltinSpecs(t *testing.T) {
	assert.Equal(t, argument.MetricSpec, argument.Metric{}.Spec())
	assert.Equal(t, argument.DimensionSpec, argument.Dimension{}.Spec())
	assert.Equal(t, argument.TemporalSpec, argument.Temporal{}.Spec())
	assert.Equal(t, argument.NumberSpec, argument.Number{}.Spec())
	assert.Equal(t, argument.ColorSpec, argument.Color{}.Spec())
	assert.Equal(t, argument.PaletteSpec, argument.Palette{}.Spec())
	assert.Equal(t, argument.TextSpec, argument.Text{}.Spec())
}

func TestConstructors(t *testing.T) {
	m := argument.NewMetric("SUM(revenue)")
	assert.Equal(t, "SUM(revenue)", m.Value())
	assert.Equal(t, apis.KindMetric, m.Spec().Kind())

	c := argument.NewColor("#e04355")
	assert.Equal(t, "#e04355", c.Hex())

	p := argument.NewPalette(argument.PaletteSpec, "supersetColors", []string{"#1fa8c9", "#454e7c"})
	assert.Equal(t, "supersetColors", p.Scheme())
	assert.Equal(t, []string{"#1fa8c9", "#454e7c"}, p.Colors())
}

func TestNumber_CoercesUnparseableToZero(t *testing.T) {
	assert.Equal(t, 12.5, argument.NewNumber("12.5").Num())
	assert.Equal(t, 0.0, argument.NewNumber("not-a-number").Num())
	assert.Equal(t, "not-a-number", argument.NewNumber("not-a-number").Value())
}

func TestNew_DispatchesOnKind(t *testing.T) {
	cases := []struct {
		spec apis.Spec
		raw  string
		want any
	}{
		{argument.MetricSpec, "count", argument.Metric{}},
		{argument.DimensionSpec, "region", argument.Dimension{}},
		{argument.TemporalSpec, "ds", argument.Temporal{}},
		{argument.NumberSpec, "3", argument.Number{}},
		{argument.ColorSpec, "#1fa8c9", argument.Color{}},
		{argument.TextSpec, "hello", argument.Text{}},
	}
	for _, tc := range cases {
		got := argument.New(tc.spec, tc.raw)
		assert.IsType(t, tc.want, got, "spec %s", tc.spec.Name)
		assert.Equal(t, tc.raw, got.Value(), "spec %s", tc.spec.Name)
	}
}

func TestNew_DerivedSpecIsCarried(t *testing.T) {
	fontSize := argument.Derive(argument.NumberSpec,
		argument.WithName("font_size"),
		argument.WithMin(12),
	)
	got := argument.New(fontSize, "16")

	require.IsType(t, argument.Number{}, got)
	assert.Equal(t, "font_size", got.Spec().Name)
	assert.Equal(t, 16.0, got.(argument.Number).Num())
}

func TestNew_UnknownKindFallsBackToText(t *testing.T) {
	odd := apis.Spec{Name: "odd", Kinds: []apis.Kind{apis.Kind(99)}}
	got := argument.New(odd, "raw")
	assert.IsType(t, argument.Text{}, got)
	assert.Equal(t, "raw", got.Value())
}
