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

package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betodealmeida/glyph/data"
)

func TestFromRecords_Pivots(t *testing.T) {
	tbl := data.FromRecords([]map[string]any{
		{"ds": "2026-01-01", "revenue": 10.0, "region": "EMEA"},
		{"ds": "2026-01-02", "revenue": 20.0, "region": "APAC"},
	})

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"ds", "region", "revenue"}, tbl.ColumnNames())

	col, ok := tbl.Column("revenue")
	require.True(t, ok)
	assert.Equal(t, []any{10.0, 20.0}, col)

	_, ok = tbl.Column("missing")
	assert.False(t, ok)
}

func TestFromRecords_RaggedRecordsHoldNil(t *testing.T) {
	tbl := data.FromRecords([]map[string]any{
		{"ds": "2026-01-01", "revenue": 10.0},
		{"ds": "2026-01-02"},
	})

	col, ok := tbl.Column("revenue")
	require.True(t, ok)
	assert.Equal(t, []any{10.0, nil}, col)
}

func TestRow_Reconstructs(t *testing.T) {
	tbl := data.FromRecords([]map[string]any{
		{"ds": "2026-01-01", "revenue": 10.0},
	})

	assert.Equal(t, map[string]any{"ds": "2026-01-01", "revenue": 10.0}, tbl.Row(0))
	assert.Nil(t, tbl.Row(1))
	assert.Nil(t, tbl.Row(-1))
}

func TestFromRecords_Empty(t *testing.T) {
	tbl := data.FromRecords(nil)
	assert.Equal(t, 0, tbl.Len())
	assert.Empty(t, tbl.ColumnNames())
}
