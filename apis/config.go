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

import "go.uber.org/zap"

// Config carries read-only knobs that influence classification and prop
// transformation. It is passed by value and treated as immutable.
type Config struct {
	// MaxUnwrap limits container unwrapping depth (ptr/slice/array) in the
	// union-unwrapping tier. Guards against pathological nesting.
	MaxUnwrap int

	// Keywords is the final-fallback tier table: semantic kind to the
	// parameter-name keywords that imply it.
	Keywords map[Kind][]string

	// DefaultScheme is the palette scheme name used when the host form data
	// carries none.
	DefaultScheme string

	// TimeColumn is the sentinel temporal column name used when the host
	// form data carries no time column selection.
	TimeColumn string

	// Logger receives classification and transformation diagnostics.
	// Nil means no logging.
	Logger *zap.Logger
}

var nopLogger = zap.NewNop()

// Log returns the configured logger, or a nop logger when unset.
func (c Config) Log() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return nopLogger
}
