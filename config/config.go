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

package config

import (
	"go.uber.org/zap"

	"github.com/betodealmeida/glyph/apis"
)

const (
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultScheme is the palette scheme assumed when the host supplies none.
	DefaultScheme = "supersetColors"
	// DefaultTimeColumn is the sentinel temporal column injected when the
	// host supplies no time column selection.
	DefaultTimeColumn = "__timestamp"
)

// DefaultKeywords returns the builtin keyword-convention table for the final
// classification tier. One-letter keywords ("x", "y") match parameter names
// exactly; longer keywords match as substrings.
func DefaultKeywords() map[apis.Kind][]string {
	return map[apis.Kind][]string{
		apis.KindTemporal:  {"time", "date", "temporal", "x", "xaxis"},
		apis.KindMetric:    {"metric", "value", "measure", "y", "yaxis"},
		apis.KindDimension: {"group", "dimension", "category", "series"},
		apis.KindNumber:    {"size", "width", "height", "font"},
		apis.KindColor:     {"color", "colour", "fill", "stroke"},
	}
}

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		MaxUnwrap:     DefaultMaxUnwrap,
		Keywords:      DefaultKeywords(),
		DefaultScheme: DefaultScheme,
		TimeColumn:    DefaultTimeColumn,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithKeywords replaces the whole keyword-convention table.
func WithKeywords(kw map[apis.Kind][]string) Option {
	return func(c *apis.Config) {
		c.Keywords = kw
	}
}

// WithKeyword adds keywords for a single kind, keeping the rest of the table.
func WithKeyword(k apis.Kind, words ...string) Option {
	return func(c *apis.Config) {
		if c.Keywords == nil {
			c.Keywords = DefaultKeywords()
		}
		c.Keywords[k] = append(c.Keywords[k], words...)
	}
}

// WithDefaultScheme sets the fallback palette scheme name.
func WithDefaultScheme(scheme string) Option {
	return func(c *apis.Config) {
		c.DefaultScheme = scheme
	}
}

// WithTimeColumn sets the sentinel temporal column name.
func WithTimeColumn(col string) Option {
	return func(c *apis.Config) {
		c.TimeColumn = col
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
