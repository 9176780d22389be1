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

import "github.com/betodealmeida/glyph/apis"

// Option is a functional option that overrides one field of a derived spec.
type Option func(*apis.Spec)

// Derive produces a new spec from base: each field set by an option is
// overridden, every other field is inherited. The base is never mutated.
//
// This is how named, pre-configured variants are made:
//
//	fontSize := argument.Derive(argument.NumberSpec,
//	    argument.WithName("font_size"),
//	    argument.WithLabel("Font Size"),
//	    argument.WithMin(12),
//	    argument.WithMax(200),
//	    argument.WithDefault("14"),
//	)
func Derive(base apis.Spec, opts ...Option) apis.Spec {
	s := base
	// Copy the kind set so the derived spec shares nothing mutable.
	s.Kinds = append([]apis.Kind(nil), base.Kinds...)
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithName sets the registry name.
func WithName(name string) Option {
	return func(s *apis.Spec) { s.Name = name }
}

// WithLabel sets the control label.
func WithLabel(label string) Option {
	return func(s *apis.Spec) { s.Label = label }
}

// WithDescription sets the control help text.
func WithDescription(desc string) Option {
	return func(s *apis.Spec) { s.Description = desc }
}

// WithDefault sets the raw default value.
func WithDefault(def string) Option {
	return func(s *apis.Spec) { s.Default = def }
}

// WithMin sets the numeric minimum.
func WithMin(min float64) Option {
	return func(s *apis.Spec) { s.Min = &min }
}

// WithMax sets the numeric maximum.
func WithMax(max float64) Option {
	return func(s *apis.Spec) { s.Max = &max }
}

// WithStep sets the numeric step.
func WithStep(step float64) Option {
	return func(s *apis.Spec) { s.Step = &step }
}

// WithKinds replaces the kind set.
func WithKinds(kinds ...apis.Kind) Option {
	return func(s *apis.Spec) { s.Kinds = kinds }
}
