package domain

import "sort"

// StateOptions returns the selection list for the state control: AllStates
// followed by the distinct non-null StateName values, sorted.
func StateOptions(t *Table) ([]string, error) {
	col, err := t.ColumnIndex(ColState)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, row := range t.rows {
		v := row[col]
		if v.IsNull() {
			continue
		}
		seen[v.String()] = struct{}{}
	}

	states := make([]string, 0, len(seen))
	for s := range seen {
		states = append(states, s)
	}
	sort.Strings(states)

	return append([]string{AllStates}, states...), nil
}

// FilterByState narrows t to the rows whose StateName equals selection,
// keeping their original order. AllStates returns every row. A selection
// that matches nothing yields an empty table, not an error.
func FilterByState(t *Table, selection string) (*Table, error) {
	col, err := t.ColumnIndex(ColState)
	if err != nil {
		return nil, err
	}
	if selection == AllStates {
		return t.withRows(t.rows), nil
	}

	rows := make([]Row, 0)
	for _, row := range t.rows {
		v := row[col]
		if !v.IsNull() && v.String() == selection {
			rows = append(rows, row)
		}
	}
	return t.withRows(rows), nil
}
