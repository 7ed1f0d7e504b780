package domain

import (
	"html"
	"strings"
)

// tooltipBreak separates tooltip lines; it is the only markup in the text.
const tooltipBreak = "<br>"

// tooltipNull is how a null cell reads in a tooltip.
const tooltipNull = "nan"

// Tooltipper renders marker hover text for rows of one table. Column
// positions are resolved once, so a missing column fails at construction.
type Tooltipper struct {
	location int
	state    int
	dom      int
	groupQ   int
	fields   []int
}

// NewTooltipper resolves the tooltip columns of t.
func NewTooltipper(t *Table) (*Tooltipper, error) {
	var tt Tooltipper
	var err error

	for _, c := range []struct {
		name string
		dst  *int
	}{
		{ColLocation, &tt.location},
		{ColState, &tt.state},
		{ColDOM, &tt.dom},
	} {
		if *c.dst, err = t.ColumnIndex(c.name); err != nil {
			return nil, err
		}
	}

	tt.fields = make([]int, len(DemographicFields))
	for i, name := range DemographicFields {
		if tt.fields[i], err = t.ColumnIndex(name); err != nil {
			return nil, err
		}
	}

	if tt.groupQ, err = t.ColumnIndex(ColDensityGroupQ); err != nil {
		return nil, err
	}
	return &tt, nil
}

// Text composes the summary for one row: location, state, days on market,
// each demographic field, then the group-quarters density, one per line.
func (tt *Tooltipper) Text(row Row) string {
	lines := make([]string, 0, len(tt.fields)+4)
	lines = append(lines,
		line("Location", row[tt.location]),
		line("State", row[tt.state]),
		line(ColDOM, row[tt.dom]),
	)
	for i, col := range tt.fields {
		lines = append(lines, line(DemographicFields[i], row[col]))
	}
	lines = append(lines, line(ColDensityGroupQ, row[tt.groupQ]))
	return strings.Join(lines, tooltipBreak)
}

// Tooltip renders the hover text for row i of t.
func Tooltip(t *Table, i int) (string, error) {
	tt, err := NewTooltipper(t)
	if err != nil {
		return "", err
	}
	return tt.Text(t.rows[i]), nil
}

func line(label string, v Value) string {
	s := tooltipNull
	if !v.IsNull() {
		s = v.String()
	}
	return label + ": " + html.EscapeString(s)
}
