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
	"reflect"

	"github.com/betodealmeida/glyph/apis"
)

func f64(v float64) *float64 { return &v }

// Builtin argument specs, registered at process start. Registration order
// matters: the name-substring classification tier iterates it.
var (
	// MetricSpec classifies aggregatable measure selections.
	MetricSpec = apis.Spec{
		Name:        "metric",
		Label:       "Metric",
		Description: "Metric to display",
		Kinds:       []apis.Kind{apis.KindMetric},
		Of:          reflect.TypeOf(Metric{}),
	}

	// DimensionSpec classifies grouping column selections.
	DimensionSpec = apis.Spec{
		Name:        "dimension",
		Label:       "Dimension",
		Description: "Column to group by",
		Kinds:       []apis.Kind{apis.KindDimension},
		Of:          reflect.TypeOf(Dimension{}),
	}

	// TemporalSpec classifies time column selections.
	TemporalSpec = apis.Spec{
		Name:        "temporal",
		Label:       "Time column",
		Description: "Column containing the time axis",
		Kinds:       []apis.Kind{apis.KindTemporal},
		Of:          reflect.TypeOf(Temporal{}),
	}

	// NumberSpec classifies numeric styling values.
	NumberSpec = apis.Spec{
		Name:  "number",
		Label: "Number",
		Kinds: []apis.Kind{apis.KindNumber},
		Of:    reflect.TypeOf(Number{}),
		Step:  f64(1),
	}

	// ColorSpec classifies single-color styling values.
	ColorSpec = apis.Spec{
		Name:    "color",
		Label:   "Color",
		Kinds:   []apis.Kind{apis.KindColor},
		Of:      reflect.TypeOf(Color{}),
		Default: "#1fa8c9",
	}

	// PaletteSpec classifies categorical color-scheme selections.
	PaletteSpec = apis.Spec{
		Name:        "palette",
		Label:       "Color scheme",
		Description: "Categorical color scheme",
		Kinds:       []apis.Kind{apis.KindPalette},
		Of:          reflect.TypeOf(Palette{}),
	}

	// TextSpec is the catch-all for free-form arguments.
	TextSpec = apis.Spec{
		Name:  "text",
		Label: "Value",
		Kinds: []apis.Kind{apis.KindGeneric},
		Of:    reflect.TypeOf(Text{}),
	}
)

// Builtins returns the builtin specs in canonical registration order.
func Builtins() []apis.Spec {
	return []apis.Spec{
		MetricSpec,
		DimensionSpec,
		TemporalSpec,
		NumberSpec,
		ColorSpec,
		PaletteSpec,
		TextSpec,
	}
}
