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

// Package plugin bundles a chart with the derived host surfaces: the
// control panel definition, the form-data-to-props transform, and the
// query-context builder. A plugin is what gets registered with a host;
// everything it exposes is computed from the chart's classified parameters.
package plugin

import (
	"errors"
	"sync"

	"github.com/spf13/cast"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/chart"
	"github.com/betodealmeida/glyph/controls"
	"github.com/betodealmeida/glyph/transform"
)

// ErrNoQueryBuilder reports a BuildQuery call on a plugin whose host never
// supplied a query-context builder.
var ErrNoQueryBuilder = errors.New("glyph(plugin): no query-context builder configured")

// Metadata describes a plugin in host listings.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
}

// QueryColumn is one column request inside a QueryContext.
type QueryColumn struct {
	Column    string `json:"column"`
	TimeGrain string `json:"time_grain,omitempty"`
}

// QueryContext is the host-agnostic description of the data a chart needs.
// Hosts convert it to their native query payload via a ContextBuilder.
type QueryContext struct {
	Form        map[string]any `json:"form_data"`
	Metrics     []string       `json:"metrics,omitempty"`
	Columns     []QueryColumn  `json:"columns,omitempty"`
	Granularity string         `json:"granularity,omitempty"`
}

// ContextBuilder converts a QueryContext into a host query payload.
type ContextBuilder func(qc QueryContext) any

// Option configures a plugin.
type Option func(*Plugin)

// WithThumbnail sets the listing thumbnail URL.
func WithThumbnail(url string) Option {
	return func(p *Plugin) {
		p.meta.Thumbnail = url
	}
}

// WithSchemeResolver forwards the host's color-scheme lookup to the
// plugin's transform.
func WithSchemeResolver(r transform.SchemeResolver) Option {
	return func(p *Plugin) {
		p.resolver = r
	}
}

// WithQueryBuilder installs the host hook that turns query contexts into
// native query payloads.
func WithQueryBuilder(b ContextBuilder) Option {
	return func(p *Plugin) {
		p.qb = b
	}
}

// Plugin exposes a chart to a host. Charts are classified lazily on first
// use so that registering many plugins at startup stays cheap.
type Plugin struct {
	meta     Metadata
	load     func() (*chart.Chart, error)
	resolver transform.SchemeResolver
	qb       ContextBuilder
	cfg      apis.Config

	once sync.Once
	ch   *chart.Chart
	err  error
}

// New builds a plugin around a lazily-loaded chart. The loader runs at most
// once, on the first call that needs the chart.
func New(meta Metadata, cfg apis.Config, load func() (*chart.Chart, error), opts ...Option) *Plugin {
	p := &Plugin{meta: meta, cfg: cfg, load: load}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Metadata returns the listing metadata.
func (p *Plugin) Metadata() Metadata { return p.meta }

// LoadChart classifies and returns the underlying chart, memoizing the
// result including any error.
func (p *Plugin) LoadChart() (*chart.Chart, error) {
	p.once.Do(func() {
		p.ch, p.err = p.load()
	})
	return p.ch, p.err
}

// ControlPanel derives the host control panel from the chart's parameters.
func (p *Plugin) ControlPanel() (controls.Panel, error) {
	ch, err := p.LoadChart()
	if err != nil {
		return controls.Panel{}, err
	}
	return controls.Generate(ch.Descriptor(), p.cfg), nil
}

// TransformProps converts host form data and query results into the typed
// props the chart renders from.
func (p *Plugin) TransformProps(form transform.FormData, records []map[string]any, width, height int) (chart.Props, error) {
	ch, err := p.LoadChart()
	if err != nil {
		return chart.Props{}, err
	}
	props := transform.Props(ch, form, records, p.cfg, transform.WithSchemeResolver(p.resolver))
	props.Width = width
	props.Height = height
	return props, nil
}

// BuildQuery derives a query context from form data and hands it to the
// host's builder. Styling-only controls are stripped from the forwarded
// form; data controls are lifted into the structured fields.
func (p *Plugin) BuildQuery(form transform.FormData) (any, error) {
	if p.qb == nil {
		return nil, ErrNoQueryBuilder
	}
	ch, err := p.LoadChart()
	if err != nil {
		return nil, err
	}
	return p.qb(p.queryContext(ch, form)), nil
}

// Visualization-only control fields never reach the query layer. Parameter
// names of non-data kinds (number, color, palette, text) are added per
// chart; the scheme field is a well-known host name stripped regardless.
var styleFields = map[string]struct{}{
	controls.NameColorScheme: {},
}

func (p *Plugin) queryContext(ch *chart.Chart, form transform.FormData) QueryContext {
	d := ch.Descriptor()

	styled := make(map[string]struct{}, len(styleFields))
	for k := range styleFields {
		styled[k] = struct{}{}
	}
	for _, b := range d.Bindings {
		if b.Classified && !b.Spec.IsData() {
			styled[b.Param.Name] = struct{}{}
		}
	}

	qc := QueryContext{Form: make(map[string]any, len(form))}
	for k, v := range form {
		if _, skip := styled[k]; skip {
			continue
		}
		qc.Form[k] = v
	}
	for _, b := range d.Bindings {
		if !b.Classified {
			continue
		}
		switch b.Spec.Kind().Semantic() {
		case apis.KindMetric:
			if raw, ok := form.Get(controls.NameMetric); ok {
				if m := cast.ToString(raw); m != "" {
					qc.Metrics = append(qc.Metrics, m)
				}
			}
		case apis.KindDimension:
			if raw, ok := form.Get(controls.NameGroupBy); ok {
				for _, col := range cast.ToStringSlice(raw) {
					qc.Columns = append(qc.Columns, QueryColumn{Column: col})
				}
			}
		case apis.KindTemporal:
			col := p.cfg.TimeColumn
			if raw, ok := form.Get(controls.NameTimeColumn); ok {
				if c := cast.ToString(raw); c != "" {
					col = c
				}
			}
			grain := ""
			if raw, ok := form.Get(controls.NameTimeGrain); ok {
				grain = cast.ToString(raw)
			}
			qc.Columns = append(qc.Columns, QueryColumn{Column: col, TimeGrain: grain})
			qc.Granularity = col
		}
	}
	return qc
}
