package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fullHeader is a header carrying every column the stages read.
var fullHeader = RequiredColumns()

// mustTable parses string cells into a table.
func mustTable(t *testing.T, header []string, rows ...[]string) *Table {
	t.Helper()
	parsed := make([]Row, len(rows))
	for i, cells := range rows {
		row := make(Row, len(cells))
		for j, c := range cells {
			row[j] = ParseValue(c)
		}
		parsed[i] = row
	}
	tbl, err := NewTable(header, parsed)
	require.NoError(t, err)
	return tbl
}

// record builds a full-header row from the interesting fields; every
// demographic field gets its index as a value.
func record(state, lat, lon, dom, groupQ string) []string {
	vals := map[string]string{
		ColState:         state,
		ColLatitude:      lat,
		ColLongitude:     lon,
		ColDensityDOM:    dom,
		ColDensityGroupQ: groupQ,
		ColLocation:      "Place " + state,
		ColDOM:           "42",
	}
	row := make([]string, len(fullHeader))
	for i, c := range fullHeader {
		if v, ok := vals[c]; ok {
			row[i] = v
			continue
		}
		row[i] = "7"
	}
	return row
}

func column(t *testing.T, tbl *Table, name string) []Value {
	t.Helper()
	col, err := tbl.ColumnIndex(name)
	require.NoError(t, err)
	out := make([]Value, tbl.Len())
	for i := range tbl.Len() {
		out[i] = tbl.Row(i)[col]
	}
	return out
}
