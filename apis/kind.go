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

package apis

// Kind is the semantic classification of a chart argument. Data kinds
// (Metric, Dimension, Temporal) drive query building; styling kinds (Number,
// Color, Palette) drive visual configuration and fold to Generic at the
// semantic level.
type Kind uint8

const (
	// KindGeneric is the catch-all kind for free-form arguments.
	KindGeneric Kind = iota
	// KindMetric marks an aggregatable measure column selection.
	KindMetric
	// KindDimension marks a grouping column selection.
	KindDimension
	// KindTemporal marks a time column selection.
	KindTemporal
	// KindNumber marks a numeric styling value.
	KindNumber
	// KindColor marks a single-color styling value (hex encoded).
	KindColor
	// KindPalette marks a categorical color-scheme selection.
	KindPalette
)

// kindNames are the canonical lowercase names, used as registry keys for the
// builtin argument specs.
var kindNames = [...]string{
	KindGeneric:   "text",
	KindMetric:    "metric",
	KindDimension: "dimension",
	KindTemporal:  "temporal",
	KindNumber:    "number",
	KindColor:     "color",
	KindPalette:   "palette",
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Semantic folds styling kinds (Number, Color, Palette) to KindGeneric.
// Data kinds are returned unchanged.
func (k Kind) Semantic() Kind {
	switch k {
	case KindMetric, KindDimension, KindTemporal:
		return k
	default:
		return KindGeneric
	}
}

// IsData reports whether the kind selects data (query section) rather than
// styling (customize section).
func (k Kind) IsData() bool {
	return k == KindMetric || k == KindDimension || k == KindTemporal
}
