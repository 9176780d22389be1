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

// Package chart binds a render function and its classification into a
// single immutable, invocable unit.
package chart

import (
	"errors"
	"reflect"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/data"
)

var (
	// ErrEmptyName is returned when a chart is created without a name.
	ErrEmptyName = errors.New("glyph(chart): empty chart name")
	// ErrNilRender is returned when the render function is nil.
	ErrNilRender = errors.New("glyph(chart): nil render function")
	// ErrNotFunc is returned when the render argument is not a function.
	ErrNotFunc = errors.New("glyph(chart): render argument is not a function")
	// ErrVariadic is returned for variadic render functions, which have no
	// positional call plan.
	ErrVariadic = errors.New("glyph(chart): variadic render functions are not supported")
	// ErrNilClassifier is returned when no classifier is provided.
	ErrNilClassifier = errors.New("glyph(chart): nil classifier")
)

// Meta is the free-form chart metadata fixed at creation.
type Meta struct {
	Description string
	Category    string
	Tags        []string
}

// Chart is a render function plus its frozen argument classification.
// Charts are immutable after creation.
type Chart struct {
	name string
	meta Meta
	desc *apis.Descriptor
}

// Props is the property bag a render cycle supplies: the pivoted data
// table, the fixed presentation parameters, and the named argument values.
type Props struct {
	Data    *data.Table
	Theme   Theme
	Width   int
	Height  int
	Hooks   Hooks
	Columns data.Columns
	// Args maps classified argument names to their typed instances.
	// Missing entries are passed to the render function as absent (zero)
	// values; the render function is responsible for defaulting.
	Args map[string]apis.Argument
}

// options accumulates creation-time settings.
type options struct {
	meta      Meta
	names     []string
	overrides map[string]apis.Spec
}

// Option is a creation-time chart option.
type Option func(*options)

// WithDescription sets the chart description.
func WithDescription(desc string) Option {
	return func(o *options) { o.meta.Description = desc }
}

// WithCategory sets the chart category.
func WithCategory(category string) Option {
	return func(o *options) { o.meta.Category = category }
}

// WithTags sets the chart tags.
func WithTags(tags ...string) Option {
	return func(o *options) { o.meta.Tags = tags }
}

// WithParams supplies the classifiable parameter names in declaration
// order. Go reflection does not retain parameter names, so name-driven
// classification and control labeling need them spelled out.
func WithParams(names ...string) Option {
	return func(o *options) { o.names = names }
}

// WithArg pins the spec for a named parameter, bypassing every
// classification tier.
func WithArg(name string, spec apis.Spec) Option {
	return func(o *options) {
		if o.overrides == nil {
			o.overrides = make(map[string]apis.Spec)
		}
		o.overrides[name] = spec
	}
}

// New classifies fn with cls and wraps it into a Chart.
//
// Classification is permissive (an uninspectable function yields a chart
// with no arguments), but structural misuse (nil or non-function fn) is an
// error since such a chart could never render.
func New(name string, fn any, cls apis.Classifier, cfg apis.Config, opts ...Option) (*Chart, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if fn == nil {
		return nil, ErrNilRender
	}
	if cls == nil {
		return nil, ErrNilClassifier
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, ErrNotFunc
	}
	if v.Type().IsVariadic() {
		return nil, ErrVariadic
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	desc := cls.Classify(fn, apis.Request{Names: o.names, Overrides: o.overrides}, cfg)
	return &Chart{name: name, meta: o.meta, desc: desc}, nil
}

// Name returns the chart name.
func (c *Chart) Name() string { return c.name }

// Meta returns the chart metadata.
func (c *Chart) Meta() Meta { return c.meta }

// Descriptor returns the frozen classification.
func (c *Chart) Descriptor() *apis.Descriptor { return c.desc }

// ArgNames returns the classified argument names in declaration order.
func (c *Chart) ArgNames() []string { return c.desc.ArgNames() }

// ArgSpecs returns the classified name -> spec mapping.
func (c *Chart) ArgSpecs() map[string]apis.Spec { return c.desc.ArgSpecs() }

// Render marshals the property bag into the positional call the render
// function declared: data table, fixed parameters, then classified
// arguments, all in declaration order. Missing argument values are passed
// through as zero values, not manufactured defaults.
func (c *Chart) Render(p Props) (any, error) {
	if !c.desc.Func.IsValid() {
		return nil, ErrNilRender
	}
	in := make([]reflect.Value, len(c.desc.Bindings))
	for i, b := range c.desc.Bindings {
		in[i] = c.bind(b, p)
	}
	out := c.desc.Func.Call(in)
	return splitResult(out)
}

// bind produces the positional value for one parameter.
func (c *Chart) bind(b apis.Binding, p Props) reflect.Value {
	t := b.Param.Type
	switch b.Fixed {
	case apis.FixedData:
		if p.Data == nil {
			return reflect.Zero(t)
		}
		return reflect.ValueOf(p.Data)
	case apis.FixedTheme:
		return reflect.ValueOf(p.Theme)
	case apis.FixedWidth:
		return reflect.ValueOf(p.Width).Convert(t)
	case apis.FixedHeight:
		return reflect.ValueOf(p.Height).Convert(t)
	case apis.FixedHooks:
		return reflect.ValueOf(p.Hooks)
	case apis.FixedColumns:
		if p.Columns == nil {
			return reflect.Zero(t)
		}
		return reflect.ValueOf(p.Columns)
	}
	if !b.Classified {
		return reflect.Zero(t)
	}
	arg, ok := p.Args[b.Param.Name]
	if !ok || arg == nil {
		// Absent by contract: the render function defaults.
		return reflect.Zero(t)
	}
	return adapt(reflect.ValueOf(arg), t)
}

// adapt fits an argument instance to the declared parameter type,
// degrading to the zero value when the shapes cannot meet.
func adapt(v reflect.Value, t reflect.Type) reflect.Value {
	if v.Type() == t || (t.Kind() == reflect.Interface && v.Type().Implements(t)) {
		return v
	}
	// Optional parameter: *X from X.
	if t.Kind() == reflect.Ptr && v.Type() == t.Elem() {
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(v)
		return ptr
	}
	// Multi-valued parameter: []X from a single X.
	if t.Kind() == reflect.Slice && v.Type() == t.Elem() {
		s := reflect.MakeSlice(t, 1, 1)
		s.Index(0).Set(v)
		return s
	}
	// Loosely-typed parameters: carry the raw value across.
	if arg, ok := v.Interface().(apis.Argument); ok {
		switch t.Kind() {
		case reflect.String:
			return reflect.ValueOf(arg.Value()).Convert(t)
		case reflect.Float32, reflect.Float64,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if n, ok := arg.(interface{ Num() float64 }); ok {
				return reflect.ValueOf(n.Num()).Convert(t)
			}
		}
	}
	return reflect.Zero(t)
}

// splitResult maps the render function's return values onto (any, error).
func splitResult(out []reflect.Value) (any, error) {
	errType := reflect.TypeOf((*error)(nil)).Elem()
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if out[0].Type().Implements(errType) {
			err, _ := out[0].Interface().(error)
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		var err error
		if e, ok := out[1].Interface().(error); ok {
			err = e
		}
		return out[0].Interface(), err
	}
}
