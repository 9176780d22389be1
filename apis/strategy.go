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

import "reflect"

// Param is a single render-function parameter under classification.
type Param struct {
	// Index is the parameter's position in the function signature.
	Index int
	// Name is the author-supplied parameter name ("" when not provided).
	Name string
	// Type is the declared parameter type.
	Type reflect.Type
}

// Strategy is a pluggable classification tier. A Classifier chains multiple
// strategies in order (direct type -> registry name -> unwrap -> name
// substring -> keyword) and stops at the first one that handles a parameter.
type Strategy interface {
	// TryClassify attempts to classify parameter p according to cfg.
	// It returns (spec, true) if handled; otherwise a zero Spec and false
	// to fall through to the next tier.
	TryClassify(p Param, cfg Config) (Spec, bool)
}
