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

// Package transform converts host form data and query result rows into the
// typed argument values a chart's render function receives. Each classified
// parameter is populated from the well-known control field its kind maps to,
// falling back to the parameter's declared default where the host sent
// nothing.
package transform

import (
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/argument"
	"github.com/betodealmeida/glyph/chart"
	"github.com/betodealmeida/glyph/data"
	"github.com/betodealmeida/glyph/utils/colors"
)

// SchemeResolver maps a host color-scheme name to its ordered color list.
type SchemeResolver func(scheme string) []string

// Option configures a transform.
type Option func(*options)

type options struct {
	resolver SchemeResolver
}

// WithSchemeResolver supplies the host's scheme-name-to-colors lookup.
// Without one, palettes fall back to DefaultPalette.
func WithSchemeResolver(r SchemeResolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// DefaultPalette returns the categorical colors used when no scheme
// resolver is configured or the resolver does not know the scheme.
func DefaultPalette() []string {
	return []string{
		"#1fa8c9", "#454e7c", "#5ac189", "#ff7f44", "#666666",
		"#e04355", "#fcc700", "#a868b7", "#3ccccb", "#a38f79",
	}
}

// Props builds the render-time property set for ch from the host's form
// data and result rows. Extraction is best effort: a malformed or absent
// control value yields the parameter's declared default, never an error.
func Props(ch *chart.Chart, form FormData, records []map[string]any, cfg apis.Config, opts ...Option) chart.Props {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	props := chart.Props{
		Data: data.FromRecords(records),
		Args: make(map[string]apis.Argument),
	}

	for _, b := range ch.Descriptor().Bindings {
		if !b.Classified {
			continue
		}
		name := b.Param.Name
		switch b.Spec.Kind().Semantic() {
		case apis.KindMetric:
			if label, ok := metricLabel(form); ok {
				props.Args[name] = argument.New(b.Spec, label)
			} else {
				cfg.Log().Debug("transform: no metric in form data", zap.String("param", name))
			}
		case apis.KindDimension:
			props.Args[name] = argument.New(b.Spec, firstColumn(form))
		case apis.KindTemporal:
			props.Args[name] = argument.New(b.Spec, timeColumn(form, cfg))
		default:
			switch b.Spec.Kind() {
			case apis.KindNumber:
				props.Args[name] = argument.New(b.Spec, numberValue(form, name, b.Spec))
			case apis.KindColor:
				props.Args[name] = argument.New(b.Spec, colorValue(form, name, b.Spec))
			case apis.KindPalette:
				props.Args[name] = paletteValue(form, b.Spec, cfg, o.resolver)
			default:
				if raw, ok := form.Get(name); ok {
					props.Args[name] = argument.New(b.Spec, cast.ToString(raw))
				}
			}
		}
	}
	return props
}

// metricLabel extracts the selected metric, accepting either the singular
// "metric" field or the first entry of "metrics", each holding a bare
// string or an ad-hoc metric object with a label.
func metricLabel(form FormData) (string, bool) {
	raw, ok := form.Get("metric")
	if !ok {
		if arr, ok2 := form.Get("metrics"); ok2 {
			raw, ok = firstElem(arr)
		}
	}
	if !ok || raw == nil {
		return "", false
	}
	switch v := raw.(type) {
	case string:
		return v, v != ""
	case map[string]any:
		label := cast.ToString(v["label"])
		return label, label != ""
	default:
		s := cast.ToString(raw)
		return s, s != ""
	}
}

// firstColumn extracts the first grouping column, or "" when the host sent
// none. Dimensions are always instantiated so charts can distinguish "no
// grouping" from "no control".
func firstColumn(form FormData) string {
	raw, ok := form.Get("groupby")
	if !ok {
		raw, ok = form.Get("columns")
	}
	if !ok {
		return ""
	}
	if first, ok := firstElem(raw); ok {
		return cast.ToString(first)
	}
	return cast.ToString(raw)
}

func timeColumn(form FormData, cfg apis.Config) string {
	if raw, ok := form.Get("xAxis", "granularity_sqla"); ok {
		if col := cast.ToString(raw); col != "" {
			return col
		}
	}
	return cfg.TimeColumn
}

func numberValue(form FormData, name string, spec apis.Spec) string {
	if raw, ok := form.Get(name); ok {
		return cast.ToString(cast.ToFloat64(raw))
	}
	return spec.Default
}

// colorValue normalizes the control value to a hex string. Hosts send color
// picker values as {r,g,b,a} objects; declared defaults are hex strings.
func colorValue(form FormData, name string, spec apis.Spec) string {
	raw, ok := form.Get(name)
	if !ok {
		return colors.RGBAToHex(colors.HexToRGBA(spec.Default))
	}
	if m, isMap := raw.(map[string]any); isMap {
		c := colors.Black
		if err := mapstructure.Decode(m, &c); err != nil {
			return colors.RGBAToHex(colors.Black)
		}
		return colors.RGBAToHex(c)
	}
	return colors.RGBAToHex(colors.HexToRGBA(cast.ToString(raw)))
}

func paletteValue(form FormData, spec apis.Spec, cfg apis.Config, resolver SchemeResolver) apis.Argument {
	scheme := ""
	if raw, ok := form.Get("color_scheme"); ok {
		scheme = cast.ToString(raw)
	}
	if scheme == "" {
		scheme = spec.Default
	}
	if scheme == "" {
		scheme = cfg.DefaultScheme
	}
	var cols []string
	if resolver != nil {
		cols = resolver(scheme)
	}
	if len(cols) == 0 {
		cols = DefaultPalette()
	}
	return argument.NewPalette(spec, scheme, cols)
}

func firstElem(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Len() == 0 {
		return nil, false
	}
	return rv.Index(0).Interface(), true
}
