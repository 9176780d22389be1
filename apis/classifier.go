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

// Request carries the author-supplied inputs that steer classification of a
// render function: parameter names (Go reflection does not retain them) and
// explicit per-name overrides that beat every reflective tier.
type Request struct {
	// Names are the classifiable (non-fixed) parameter names in declaration
	// order. Missing names fall back to the resolved spec's registry name.
	Names []string
	// Overrides maps a parameter name to the spec to use for it,
	// bypassing all classification tiers.
	Overrides map[string]Spec
}

// Classifier inspects a render function and produces its Descriptor: the
// ordered call plan with each parameter either recognized as fixed
// infrastructure, classified into an argument spec, or left unclassified.
//
// Classification is best-effort by contract: inputs that cannot be
// introspected yield an empty descriptor rather than an error, so chart
// creation always succeeds.
type Classifier interface {
	// Classify builds the descriptor for fn. The result is never nil.
	Classify(fn any, req Request, cfg Config) *Descriptor
}
