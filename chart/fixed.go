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

package chart

import (
	"reflect"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/data"
)

// Theme carries host presentation settings passed through to render
// functions, never classified as an argument.
type Theme struct {
	// Colors is the host's current categorical palette.
	Colors []string
	// FontFamily is the host's base font stack.
	FontFamily string
	// Background is the chart background color (hex).
	Background string
}

// Width is the pixel width fixed parameter. Declaring a parameter as
// chart.Width (rather than a bare int) is what marks it as fixed
// infrastructure for the classifier.
type Width int

// Height is the pixel height fixed parameter.
type Height int

// Hooks bundles the host-interaction callbacks available to a render
// function.
type Hooks struct {
	// SetControlValue pushes a control value back into the host panel
	// (direct-manipulation interactions, e.g. dropping a column on the
	// chart).
	SetControlValue func(name string, value any)
	// OnContextMenu opens the host context menu at chart coordinates.
	OnContextMenu func(x, y int)
}

// fixedTypes maps the well-known fixed parameter types to their kinds.
var fixedTypes = map[reflect.Type]apis.FixedKind{
	reflect.TypeOf((*data.Table)(nil)):  apis.FixedData,
	reflect.TypeOf(Theme{}):             apis.FixedTheme,
	reflect.TypeOf(Width(0)):            apis.FixedWidth,
	reflect.TypeOf(Height(0)):           apis.FixedHeight,
	reflect.TypeOf(Hooks{}):             apis.FixedHooks,
	reflect.TypeOf(data.Columns(nil)):   apis.FixedColumns,
}

// FixedKindOf reports whether t is one of the fixed infrastructure
// parameter types, and which.
func FixedKindOf(t reflect.Type) apis.FixedKind {
	if t == nil {
		return apis.FixedNone
	}
	return fixedTypes[t]
}
