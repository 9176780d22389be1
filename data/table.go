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

// Package data holds the tabular abstraction passed to render functions:
// query results pivoted from host row records into column-oriented arrays.
package data

import "sort"

// Column describes a datasource column as reported by the host.
type Column struct {
	// Name is the column name.
	Name string `json:"column_name"`
	// Type is the host-reported type ("number", "string", "temporal").
	Type string `json:"type,omitempty"`
	// IsTemporal marks time columns.
	IsTemporal bool `json:"is_dttm,omitempty"`
}

// Columns is the datasource column list, one of the fixed render-function
// parameters.
type Columns []Column

// Table is a column-oriented view over query results. Column order is
// sorted by name so pivoting host rows (unordered maps) is deterministic.
type Table struct {
	names []string
	cols  map[string][]any
	rows  int
}

// FromRecords pivots host row records into a column-oriented Table. Columns
// missing from some records hold nil in those positions.
func FromRecords(records []map[string]any) *Table {
	seen := map[string]bool{}
	for _, rec := range records {
		for k := range rec {
			seen[k] = true
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)

	cols := make(map[string][]any, len(names))
	for _, name := range names {
		col := make([]any, len(records))
		for i, rec := range records {
			col[i] = rec[name]
		}
		cols[name] = col
	}
	return &Table{names: names, cols: cols, rows: len(records)}
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	return append([]string(nil), t.names...)
}

// Column returns the values of the named column in row order.
func (t *Table) Column(name string) ([]any, bool) {
	col, ok := t.cols[name]
	return col, ok
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.rows
}

// Row reconstructs row i as a record. Out-of-range indexes return nil.
func (t *Table) Row(i int) map[string]any {
	if i < 0 || i >= t.rows {
		return nil
	}
	rec := make(map[string]any, len(t.names))
	for _, name := range t.names {
		rec[name] = t.cols[name][i]
	}
	return rec
}
