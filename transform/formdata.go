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

package transform

import (
	"strings"
	"unicode"
)

// FormData is the host-supplied control-value bag. Hosts have historically
// keyed it under both snake_case and camelCase conventions, so lookups try
// both spellings of every key.
type FormData map[string]any

// Get returns the first present value among keys, trying each key verbatim
// and then under the alternate casing convention. Precedence follows the
// key order given.
func (f FormData) Get(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := f[key]; ok {
			return v, true
		}
		for _, alt := range []string{toSnake(key), toCamel(key)} {
			if alt == key {
				continue
			}
			if v, ok := f[alt]; ok {
				return v, true
			}
		}
	}
	return nil, false
}

// toSnake converts camelCase to snake_case ("xAxis" -> "x_axis").
func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// toCamel converts snake_case to camelCase ("color_scheme" -> "colorScheme").
func toCamel(s string) string {
	parts := strings.Split(s, "_")
	if len(parts) == 1 {
		return s
	}
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
