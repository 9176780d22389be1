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

package argument

import (
	"github.com/spf13/cast"

	"github.com/betodealmeida/glyph/apis"
)

// base carries the raw value and the (possibly derived) spec behind every
// argument type. A zero base has a zero spec; the concrete types substitute
// their builtin spec in that case so declared-type classification works on
// zero values.
type base struct {
	spec  apis.Spec
	value string
}

func (b base) Value() string { return b.value }

func (b base) specOr(def apis.Spec) apis.Spec {
	if b.spec.IsZero() {
		return def
	}
	return b.spec
}

// Metric is an aggregatable measure selection.
type Metric struct{ base }

// NewMetric wraps a metric label under the builtin metric spec.
func NewMetric(value string) Metric { return Metric{base{MetricSpec, value}} }

// Spec implements apis.Argument.
func (m Metric) Spec() apis.Spec { return m.specOr(MetricSpec) }

// Dimension is a grouping column selection.
type Dimension struct{ base }

// NewDimension wraps a column name under the builtin dimension spec.
func NewDimension(value string) Dimension { return Dimension{base{DimensionSpec, value}} }

// Spec implements apis.Argument.
func (d Dimension) Spec() apis.Spec { return d.specOr(DimensionSpec) }

// Temporal is a time column selection.
type Temporal struct{ base }

// NewTemporal wraps a time column name under the builtin temporal spec.
func NewTemporal(value string) Temporal { return Temporal{base{TemporalSpec, value}} }

// Spec implements apis.Argument.
func (t Temporal) Spec() apis.Spec { return t.specOr(TemporalSpec) }

// Number is a numeric styling value. The raw string is kept alongside the
// parsed value; unparseable input coerces to zero by contract.
type Number struct {
	base
	num float64
}

// NewNumber parses value under the builtin number spec.
func NewNumber(value string) Number {
	return Number{base{NumberSpec, value}, cast.ToFloat64(value)}
}

// Spec implements apis.Argument.
func (n Number) Spec() apis.Spec { return n.specOr(NumberSpec) }

// Num returns the parsed numeric value (0 when the raw value did not parse).
func (n Number) Num() float64 { return n.num }

// Color is a single-color styling value; the raw value is a hex string.
type Color struct{ base }

// NewColor wraps a hex color string under the builtin color spec.
func NewColor(value string) Color { return Color{base{ColorSpec, value}} }

// Spec implements apis.Argument.
func (c Color) Spec() apis.Spec { return c.specOr(ColorSpec) }

// Hex returns the hex string form of the color.
func (c Color) Hex() string { return c.value }

// Palette is a categorical color-scheme selection: the scheme name plus the
// resolved ordered color list.
type Palette struct {
	base
	colors []string
}

// NewPalette wraps a scheme name and its resolved colors under spec.
func NewPalette(spec apis.Spec, scheme string, colors []string) Palette {
	return Palette{base{spec, scheme}, colors}
}

// Spec implements apis.Argument.
func (p Palette) Spec() apis.Spec { return p.specOr(PaletteSpec) }

// Scheme returns the scheme name.
func (p Palette) Scheme() string { return p.value }

// Colors returns the resolved ordered color list.
func (p Palette) Colors() []string { return p.colors }

// Text is the catch-all free-form argument.
type Text struct{ base }

// NewText wraps a raw string under the builtin text spec.
func NewText(value string) Text { return Text{base{TextSpec, value}} }

// Spec implements apis.Argument.
func (t Text) Spec() apis.Spec { return t.specOr(TextSpec) }

// Compile-time interface checks.
var (
	_ apis.Argument = Metric{}
	_ apis.Argument = Dimension{}
	_ apis.Argument = Temporal{}
	_ apis.Argument = Number{}
	_ apis.Argument = Color{}
	_ apis.Argument = Palette{}
	_ apis.Argument = Text{}
)

// New constructs the argument instance matching spec's primary kind from a
// raw value. Construction always succeeds: numeric parse failures coerce to
// zero and unrecognized kinds fall back to Text.
func New(spec apis.Spec, raw string) apis.Argument {
	switch spec.Kind() {
	case apis.KindMetric:
		return Metric{base{spec, raw}}
	case apis.KindDimension:
		return Dimension{base{spec, raw}}
	case apis.KindTemporal:
		return Temporal{base{spec, raw}}
	case apis.KindNumber:
		return Number{base{spec, raw}, cast.ToFloat64(raw)}
	case apis.KindColor:
		return Color{base{spec, raw}}
	case apis.KindPalette:
		return Palette{base{spec, raw}, nil}
	default:
		return Text{base{spec, raw}}
	}
}
