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

package plugin_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/argument"
	"github.com/betodealmeida/glyph/builder"
	"github.com/betodealmeida/glyph/chart"
	"github.com/betodealmeida/glyph/config"
	"github.com/betodealmeida/glyph/controls"
	"github.com/betodealmeida/glyph/data"
	"github.com/betodealmeida/glyph/plugin"
	"github.com/betodealmeida/glyph/transform"
)

func lineLoader(tb testing.TB, cfg apis.Config, loads *int) func() (*chart.Chart, error) {
	tb.Helper()
	b := builder.New()
	reg := b.BuildRegistry(cfg, nil, nil)
	cls := b.BuildClassifier(cfg, reg, nil, nil)

	fn := func(tbl *data.Table, x argument.Temporal, group argument.Dimension,
		y argument.Metric, stroke argument.Color, w chart.Width, h chart.Height) string {
		return ""
	}
	return func() (*chart.Chart, error) {
		if loads != nil {
			*loads++
		}
		return chart.New("line", fn, cls, cfg,
			chart.WithParams("x", "group", "y", "stroke"))
	}
}

func TestLoadChart_Memoizes(t *testing.T) {
	cfg := config.DefaultConfig()
	loads := 0
	p := plugin.New(plugin.Metadata{Name: "line"}, cfg, lineLoader(t, cfg, &loads))

	assert.Equal(t, 0, loads, "loader must not run before first use")

	ch1, err := p.LoadChart()
	require.NoError(t, err)
	ch2, err := p.LoadChart()
	require.NoError(t, err)

	assert.Same(t, ch1, ch2)
	assert.Equal(t, 1, loads)
}

func TestLoadChart_MemoizesError(t *testing.T) {
	cfg := config.DefaultConfig()
	wantErr := errors.New("chart too heavy")
	loads := 0
	p := plugin.New(plugin.Metadata{Name: "broken"}, cfg, func() (*chart.Chart, error) {
		loads++
		return nil, wantErr
	})

	_, err := p.LoadChart()
	assert.ErrorIs(t, err, wantErr)
	_, err = p.LoadChart()
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, loads)

	_, err = p.ControlPanel()
	assert.ErrorIs(t, err, wantErr)
}

func TestControlPanel(t *testing.T) {
	cfg := config.DefaultConfig()
	p := plugin.New(plugin.Metadata{Name: "line"}, cfg, lineLoader(t, cfg, nil))

	panel, err := p.ControlPanel()
	require.NoError(t, err)

	require.NotEmpty(t, panel.Sections)
	query := panel.Sections[0]
	assert.Equal(t, controls.SectionQuery, query.Label)
	// Temporal argument prepends the time pair.
	assert.Equal(t, controls.NameTimeColumn, query.Rows[0][0].Name)
	assert.True(t, panel.AllowEmptyState)
}

func TestTransformProps_CarriesViewport(t *testing.T) {
	cfg := config.DefaultConfig()
	p := plugin.New(plugin.Metadata{Name: "line"}, cfg, lineLoader(t, cfg, nil))

	props, err := p.TransformProps(
		transform.FormData{"metric": "revenue"},
		[]map[string]any{{"ds": "2026-01-01", "revenue": 10.0}},
		800, 600,
	)
	require.NoError(t, err)

	assert.Equal(t, 800, props.Width)
	assert.Equal(t, 600, props.Height)
	assert.Equal(t, 1, props.Data.Len())
	assert.Equal(t, "revenue", props.Args["y"].Value())
}

func TestBuildQuery_RequiresBuilder(t *testing.T) {
	cfg := config.DefaultConfig()
	p := plugin.New(plugin.Metadata{Name: "line"}, cfg, lineLoader(t, cfg, nil))

	_, err := p.BuildQuery(transform.FormData{})
	assert.ErrorIs(t, err, plugin.ErrNoQueryBuilder)
}

func TestBuildQuery_LiftsDataControlsAndStripsStyling(t *testing.T) {
	cfg := config.DefaultConfig()

	var got plugin.QueryContext
	p := plugin.New(plugin.Metadata{Name: "line"}, cfg, lineLoader(t, cfg, nil),
		plugin.WithQueryBuilder(func(qc plugin.QueryContext) any {
			got = qc
			return "payload"
		}),
	)

	out, err := p.BuildQuery(transform.FormData{
		"metric":           "revenue",
		"groupby":          []string{"region"},
		"granularity_sqla": "ds",
		"time_grain_sqla":  "P1D",
		"stroke":           map[string]any{"r": 224.0, "g": 67.0, "b": 85.0, "a": 1.0},
		"color_scheme":     "blues",
	})
	require.NoError(t, err)
	assert.Equal(t, "payload", out)

	assert.Equal(t, []string{"revenue"}, got.Metrics)
	assert.Equal(t, []plugin.QueryColumn{
		{Column: "region"},
		{Column: "ds", TimeGrain: "P1D"},
	}, got.Columns)
	assert.Equal(t, "ds", got.Granularity)

	// Styling-only controls never reach the query layer.
	assert.NotContains(t, got.Form, "stroke")
	assert.NotContains(t, got.Form, "color_scheme")
	assert.Contains(t, got.Form, "metric")
}

func TestBuildQuery_StripsEveryNonDataControl(t *testing.T) {
	cfg := config.DefaultConfig()
	b := builder.New()
	reg := b.BuildRegistry(cfg, nil, nil)
	cls := b.BuildClassifier(cfg, reg, nil, nil)

	fn := func(tbl *data.Table, y argument.Metric, size argument.Number,
		title argument.Text) string {
		return ""
	}
	var got plugin.QueryContext
	p := plugin.New(plugin.Metadata{Name: "big-number"}, cfg,
		func() (*chart.Chart, error) {
			return chart.New("big-number", fn, cls, cfg,
				chart.WithParams("y", "size", "title"))
		},
		plugin.WithQueryBuilder(func(qc plugin.QueryContext) any {
			got = qc
			return nil
		}),
	)

	_, err := p.BuildQuery(transform.FormData{
		"metric": "revenue",
		"size":   42,
		"title":  "Quarterly",
	})
	require.NoError(t, err)

	// Slider and text controls are visualization-only: they stay out of the
	// query form alongside color and palette controls.
	assert.NotContains(t, got.Form, "size")
	assert.NotContains(t, got.Form, "title")
	assert.Contains(t, got.Form, "metric")
	assert.Equal(t, []string{"revenue"}, got.Metrics)
}

func TestBuildQuery_TemporalDefaultsToSentinelColumn(t *testing.T) {
	cfg := config.DefaultConfig()

	var got plugin.QueryContext
	p := plugin.New(plugin.Metadata{Name: "line"}, cfg, lineLoader(t, cfg, nil),
		plugin.WithQueryBuilder(func(qc plugin.QueryContext) any {
			got = qc
			return nil
		}),
	)

	_, err := p.BuildQuery(transform.FormData{})
	require.NoError(t, err)

	require.Len(t, got.Columns, 1)
	assert.Equal(t, config.DefaultTimeColumn, got.Columns[0].Column)
	assert.Equal(t, config.DefaultTimeColumn, got.Granularity)
}

func TestMetadataAndOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	p := plugin.New(
		plugin.Metadata{Name: "line", Category: "Evolution", Tags: []string{"timeseries"}},
		cfg,
		lineLoader(t, cfg, nil),
		plugin.WithThumbnail("https://charts.example/line.png"),
	)

	meta := p.Metadata()
	assert.Equal(t, "line", meta.Name)
	assert.Equal(t, "Evolution", meta.Category)
	assert.Equal(t, "https://charts.example/line.png", meta.Thumbnail)
}
