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

// Package glyph turns the typed parameters of a chart render function into
// a declarative description a BI host can use: which controls to show in
// the editor, what data to query, and how to convert host form data back
// into the typed values the function receives.
//
// A chart author writes an ordinary Go function:
//
//	func Line(tbl *data.Table, x argument.Temporal, y argument.Metric,
//		stroke argument.Color, width chart.Width, height chart.Height) (string, error)
//
// and glyph's classifier inspects the signature, decides what each
// parameter means (a metric, a grouping dimension, a time axis, a styling
// knob, or plumbing like the data table and viewport size), and freezes
// that decision into a Descriptor. Everything else is derived from the
// Descriptor: the control panel (package controls), the form-data
// transform (package transform), and the query context (package plugin).
//
// # Design
//
// The core of glyph is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: rules that control classification (how deep to unwrap
//     pointers/slices, the name-keyword table, the default color scheme
//     and time column).
//
//   - Registry: a process-wide mapping from spec names and Go types to
//     argument specs. It is seeded with the builtin specs (metric,
//     dimension, temporal, number, color, palette, text) and can be
//     written to at runtime (Register) to add domain-specific specs or
//     override the builtins.
//
//   - Classifier: a read-only object that answers "what does this
//     parameter mean?". The default classifier tries strategies in
//     priority order:
//     1. The parameter's type is registered or implements apis.Argument.
//     2. The lowercased type name is a registered spec name.
//     3. Pointer/slice wrappers are unwrapped and tiers 1-2 retried.
//     4. A registered spec name is a substring of the parameter name.
//     5. The parameter name matches the configured keyword table.
//     Classifier is expected to be concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct Registry
//     and Classifier instances for a given Config (and optional extension
//     data). The Builder is also allowed to reuse/migrate state from
//     previous Registry/Classifier instances.
//
// All of these live inside a single immutable struct called state.
// The package holds an atomic pointer to the current state. Readers load
// that pointer, use it, and never mutate it. Writers build a brand-new
// state and atomically swap it in.
//
// This means classification is lock-free on the hot path:
//
//	ch, err := glyph.New("line", Line, chart.WithParams("data", "x", "y", "stroke"))
//	desc := glyph.Classify(Line, apis.Request{})
//
// and concurrent callers always see a consistent snapshot.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     New(name string, fn any, opts ...chart.Option) (*chart.Chart, error)
//     Classify(fn any, req apis.Request) *apis.Descriptor
//     Lookup(name string) (apis.Spec, bool)
//     Registry() apis.Registry
//     Classifier() apis.Classifier
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     Register(s apis.Spec) error
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetRegistry(reg apis.Registry)
//     SetClassifier(cls apis.Classifier)
//     UnpinRegistry()
//     UnpinClassifier()
//     SetAll(...)
//
//     Each of these (except Register, which writes through to the live
//     registry) acquires an internal build lock, derives a new snapshot
//     (rebuilding or reusing Registry / Classifier as needed), and then
//     atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects how parameters are classified. Calling SetConfig()
//     may trigger a rebuild of Registry and/or Classifier, unless they
//     are explicitly "pinned".
//
//     - Builder controls how Registry and Classifier are constructed.
//     Swapping the Builder lets you replace classification logic at
//     runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     glyph itself. It is simply passed down to the Builder so custom
//     builders (in host binaries) can carry extra policy/state.
//
//     - SetRegistry() / SetClassifier() directly overwrite the current
//     Registry / Classifier in the snapshot and "pin" them. Once a
//     layer is pinned, glyph will stop rebuilding that layer
//     automatically until you call UnpinRegistry()/UnpinClassifier().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Registry, Classifier in one shot. This is
//     mainly used by tests to get a clean deterministic state
//     between test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     // plus Registry().Entries(), etc.
//
// # Concurrency model
//
// Reads (New, Classify, Lookup, Registry, Classifier) are wait-free: they
// load the current *state atomically and never take locks. The Classifier
// and Registry returned by that state must themselves be concurrency-safe
// for reads.
//
// Writes take a short build mutex, assemble a brand-new state struct, and
// then publish it via an atomic pointer swap. This gives the calling
// binary a predictable "last write wins" behavior without forcing
// per-classification locking.
//
// Note that a chart's Descriptor is frozen at chart.New time: later
// registry or config changes affect charts built afterwards, never the
// bindings of an existing chart.
//
// # Usage pattern in a host
//
// A typical host does:
//
//  1. Let glyph init with the default builder/config.
//
//  2. Optionally register domain specs up front:
//
//     glyph.Register(argument.Derive(argument.MetricSpec,
//     argument.WithName("revenue"), argument.WithLabel("Revenue")))
//
//  3. Build charts with glyph.New and wrap them in plugin.New for the
//     host-facing surfaces (control panel, transform, query building).
//
//  4. In tests, call glyph.SetAll(...) to get deterministic snapshots.
//
// # Scope
//
// glyph is intentionally small. It does not render anything, talk to a
// database, or serve HTTP. It only solves one job:
//
//	"Given a render function's signature, derive the controls, queries,
//	 and typed inputs a BI host needs to drive it."
//
// Everything else (rendering, query execution, dashboards) belongs to the
// host.
package glyph
