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

// Package controls turns a chart's argument classification into the host
// control-panel schema: labeled sections of ordered control rows, each
// control either a well-known host control name or a {name, config} pair.
//
// The schema is derived purely from specs, regenerated on demand, and never
// persisted.
package controls

import (
	"github.com/spf13/cast"

	"github.com/betodealmeida/glyph/apis"
	"github.com/betodealmeida/glyph/utils/colors"
)

// Well-known host control names.
const (
	NameMetric      = "metric"
	NameGroupBy     = "groupby"
	NameFilters     = "adhoc_filters"
	NameTimeColumn  = "granularity_sqla"
	NameTimeGrain   = "time_grain_sqla"
	NameColorScheme = "color_scheme"
)

// Section labels.
const (
	SectionQuery     = "Query"
	SectionCustomize = "Customize"
)

// Type names a generated control widget.
type Type string

const (
	// TypeSlider is a bounded numeric control.
	TypeSlider Type = "SliderControl"
	// TypeColorPicker is a single-color control with an RGBA default.
	TypeColorPicker Type = "ColorPickerControl"
	// TypeText is the generic free-form control.
	TypeText Type = "TextControl"
)

// Config is the kind-specific configuration of a generated control.
type Config struct {
	Type          Type     `json:"type"`
	Label         string   `json:"label,omitempty"`
	Description   string   `json:"description,omitempty"`
	Default       any      `json:"default,omitempty"`
	Min           *float64 `json:"min,omitempty"`
	Max           *float64 `json:"max,omitempty"`
	Step          *float64 `json:"step,omitempty"`
	RenderTrigger bool     `json:"renderTrigger,omitempty"`
}

// Control is one generated control: a well-known host control name (nil
// Config) or a custom {name, config} pair.
type Control struct {
	Name   string  `json:"name"`
	Config *Config `json:"config,omitempty"`
}

// Row is one row of controls in a section.
type Row []Control

// Section is a labeled, expandable group of control rows.
type Section struct {
	Label    string `json:"label"`
	Expanded bool   `json:"expandSectionByDefault"`
	Rows     []Row  `json:"controlSetRows"`
}

// Panel is the generated control-panel schema. AllowEmptyState tells the
// host the chart renders meaningfully before any data control has a value
// (chart-skeleton onboarding).
type Panel struct {
	Sections        []Section `json:"sections"`
	AllowEmptyState bool      `json:"allowEmptyState"`
}

// Generate maps each classified argument of d to a host control and groups
// them into sections: data-selection controls (metric, grouping, time) in
// Query, styling controls in Customize, each in argument-declaration order.
// A catch-all filter control always closes the Query section; when any
// temporal argument exists, the time-column and time-grain controls are
// prepended to it.
func Generate(d *apis.Descriptor, cfg apis.Config) Panel {
	var query, customize []Row
	hasTemporal := false

	for _, b := range d.Bindings {
		if !b.Classified {
			continue
		}
		spec := b.Spec
		switch spec.Kind() {
		case apis.KindMetric:
			query = append(query, Row{{Name: NameMetric}})
		case apis.KindDimension:
			query = append(query, Row{{Name: NameGroupBy}})
		case apis.KindTemporal:
			// Temporal arguments surface as the fixed time pair below.
			hasTemporal = true
		case apis.KindNumber:
			customize = append(customize, Row{{
				Name:   b.Param.Name,
				Config: numberConfig(spec),
			}})
		case apis.KindColor:
			customize = append(customize, Row{{
				Name:   b.Param.Name,
				Config: colorConfig(spec),
			}})
		case apis.KindPalette:
			customize = append(customize, Row{{Name: NameColorScheme}})
		default:
			customize = append(customize, Row{{
				Name: b.Param.Name,
				Config: &Config{
					Type:          TypeText,
					Label:         spec.Label,
					Description:   spec.Description,
					Default:       orNil(spec.Default),
					RenderTrigger: true,
				},
			}})
		}
	}

	if hasTemporal {
		query = append([]Row{{{Name: NameTimeColumn}}, {{Name: NameTimeGrain}}}, query...)
	}
	query = append(query, Row{{Name: NameFilters}})

	sections := []Section{{Label: SectionQuery, Expanded: true, Rows: query}}
	if len(customize) > 0 {
		sections = append(sections, Section{
			Label:    SectionCustomize,
			Expanded: true,
			Rows:     customize,
		})
	}
	return Panel{Sections: sections, AllowEmptyState: true}
}

func numberConfig(spec apis.Spec) *Config {
	c := &Config{
		Type:          TypeSlider,
		Label:         spec.Label,
		Description:   spec.Description,
		Min:           spec.Min,
		Max:           spec.Max,
		Step:          spec.Step,
		RenderTrigger: true,
	}
	if spec.Default != "" {
		c.Default = cast.ToFloat64(spec.Default)
	}
	return c
}

func colorConfig(spec apis.Spec) *Config {
	return &Config{
		Type:          TypeColorPicker,
		Label:         spec.Label,
		Description:   spec.Description,
		Default:       colors.HexToRGBA(spec.Default),
		RenderTrigger: true,
	}
}

func orNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
