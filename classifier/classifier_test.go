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

package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/argument"
	"github.com/betodealmeida/glyph/chart"
	"github.com/betodealmeida/glyph/classifier"
	"github.com/betodealmeida/glyph/config"
	"github.com/betodealmeida/glyph/data"
	"github.com/betodealmeida/glyph/registry"
	"github.com/betodealmeida/glyph/strategy"
)

func newClassifier(tb testing.TB) apis.Classifier {
	tb.Helper()
	reg := registry.New(config.DefaultConfig())
	for _, s := range argument.Builtins() {
		require.NoError(tb, reg.Register(s))
	}
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

func TestClassify_MixedSignature(t *testing.T) {
	cls := newClassifier(t)
	cfg := config.DefaultConfig()

	fn := func(tbl *data.Table, x argument.Temporal, y argument.Metric, fill string,
		w chart.Width, h chart.Height) string {
		return ""
	}
	d := cls.Classify(fn, apis.Request{Names: []string{"x", "y", "fill"}}, cfg)

	require.Len(t, d.Bindings, 6)

	// Fixed infrastructure is recognized by type alone.
	assert.Equal(t, apis.FixedData, d.Bindings[0].Fixed)
	assert.False(t, d.Bindings[0].Classified)
	assert.Equal(t, apis.FixedWidth, d.Bindings[4].Fixed)
	assert.Equal(t, apis.FixedHeight, d.Bindings[5].Fixed)

	// Names attach to the classifiable parameters in order, skipping fixed
	// ones.
	assert.Equal(t, []string{"x", "y", "fill"}, d.ArgNames())

	specs := d.ArgSpecs()
	assert.Equal(t, apis.KindTemporal, specs["x"].Kind())
	assert.Equal(t, apis.KindMetric, specs["y"].Kind())
	// "fill" is a bare string classified by the keyword tier.
	assert.Equal(t, apis.KindColor, specs["fill"].Kind())

	assert.True(t, d.HasKind(apis.KindTemporal))
	assert.False(t, d.HasKind(apis.KindPalette))
}

func TestClassify_WrappedAndOptionalParams(t *testing.T) {
	cls := newClassifier(t)
	cfg := config.DefaultConfig()

	fn := func(m *argument.Metric, groups []argument.Dimension) {}
	d := cls.Classify(fn, apis.Request{Names: []string{"m", "groups"}}, cfg)

	specs := d.ArgSpecs()
	assert.Equal(t, apis.KindMetric, specs["m"].Kind())
	assert.Equal(t, apis.KindDimension, specs["groups"].Kind())
}

func TestClassify_OverrideBeatsEveryTier(t *testing.T) {
	cls := newClassifier(t)
	cfg := config.DefaultConfig()

	revenue := argument.Derive(argument.MetricSpec,
		argument.WithName("revenue"),
		argument.WithLabel("Revenue"),
	)
	// The declared type says Temporal; the override pins Metric.
	fn := func(x argument.Temporal) {}
	d := cls.Classify(fn, apis.Request{
		Names:     []string{"x"},
		Overrides: map[string]apis.Spec{"x": revenue},
	}, cfg)

	specs := d.ArgSpecs()
	require.Contains(t, specs, "x")
	assert.Equal(t, "revenue", specs["x"].Name)
	assert.Equal(t, apis.KindMetric, specs["x"].Kind())
}

func TestClassify_UnnamedParamsFallBackToSpecName(t *testing.T) {
	cls := newClassifier(t)
	cfg := config.DefaultConfig()

	fn := func(a argument.Metric, b argument.Metric, c argument.Dimension) {}
	d := cls.Classify(fn, apis.Request{}, cfg)

	// Repeated names get numeric suffixes to keep the value map unambiguous.
	assert.Equal(t, []string{"metric", "metric2", "dimension"}, d.ArgNames())
}

func TestClassify_UnclassifiedParamStaysAbsent(t *testing.T) {
	cls := newClassifier(t)
	cfg := config.DefaultConfig()

	fn := func(title string, y argument.Metric) {}
	d := cls.Classify(fn, apis.Request{Names: []string{"title", "y"}}, cfg)

	require.Len(t, d.Bindings, 2)
	assert.False(t, d.Bindings[0].Classified)
	assert.Equal(t, apis.FixedNone, d.Bindings[0].Fixed)
	assert.True(t, d.Bindings[1].Classified)
	assert.Equal(t, []string{"y"}, d.ArgNames())
}

func TestClassify_NonFunctionDegrades(t *testing.T) {
	cls := newClassifier(t)
	cfg := config.DefaultConfig()

	for _, in := range []any{nil, 42, "render", struct{}{}} {
		d := cls.Classify(in, apis.Request{}, cfg)
		require.NotNil(t, d, "input %v", in)
		assert.Empty(t, d.Bindings, "input %v", in)
		assert.False(t, d.Func.IsValid(), "input %v", in)
	}
}

func TestClassify_NoArgFunction(t *testing.T) {
	cls := newClassifier(t)
	cfg := config.DefaultConfig()

	d := cls.Classify(func() string { return "" }, apis.Request{}, cfg)
	assert.True(t, d.Func.IsValid())
	assert.Empty(t, d.Bindings)
}
