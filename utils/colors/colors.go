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

// Package colors converts between the two color encodings on the host
// boundary: lowercase 6-digit hex strings on the chart side and RGBA objects
// on the host control side.
//
// Conversions are permissive: malformed hex input decodes to black rather
// than failing, so a misconfigured host control degrades to a rendered chart
// instead of an error. Well-formed 6-digit hex with full opacity round-trips
// bit-exactly.
package colors

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA is the host-side color object shape ({r, g, b, a} fields, with alpha
// in [0, 1]).
type RGBA struct {
	R uint8   `json:"r" mapstructure:"r"`
	G uint8   `json:"g" mapstructure:"g"`
	B uint8   `json:"b" mapstructure:"b"`
	A float64 `json:"a" mapstructure:"a"`
}

// Black is the fallback for malformed hex input.
var Black = RGBA{R: 0, G: 0, B: 0, A: 1}

// HexToRGBA decodes a "#rrggbb" (or "#rgb") string into an RGBA with full
// opacity. Malformed input yields Black.
func HexToRGBA(hex string) RGBA {
	c, err := colorful.Hex(strings.ToLower(strings.TrimSpace(hex)))
	if err != nil {
		return Black
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGBAToHex encodes an RGBA as a lowercase "#rrggbb" string. Alpha is
// dropped: the chart-side encoding has implicit full opacity.
func RGBAToHex(c RGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}
