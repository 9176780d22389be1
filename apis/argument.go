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

// Argument is a typed wrapper around a single configurable chart input: the
// raw value supplied by the host, plus the spec that classified it.
//
// Implementations are plain immutable values. A zero-value implementation
// returns its builtin spec from Spec, which lets the classifier recognize a
// declared parameter type without an instance in hand.
//
// # Contract
//
//   - Spec MUST return a spec with a non-empty kind set.
//   - Value MUST return the raw string form of the wrapped value; typed
//     accessors (parsed numbers, resolved palettes) are implementation
//     specific.
//   - Implementations MUST be safe for concurrent use; they are passed
//     across the host render cycle without synchronization.
type Argument interface {
	// Spec returns the argument class that produced this value.
	Spec() Spec
	// Value returns the raw string form of the value.
	Value() string
}
