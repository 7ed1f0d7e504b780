package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColumnKind is the inferred type of a column.
type ColumnKind int

const (
	// KindText columns hold at least one non-null cell that is not a number.
	KindText ColumnKind = iota
	// KindNumber columns hold only numbers and nulls.
	KindNumber
)

func (k ColumnKind) String() string {
	if k == KindNumber {
		return "number"
	}
	return "text"
}

// nullTokens are the cell spellings read as null, matching what spreadsheet
// and dataframe exports commonly write for missing values.
var nullTokens = map[string]struct{}{
	"":         {},
	"NA":       {},
	"#NA":      {},
	"N/A":      {},
	"n/a":      {},
	"NaN":      {},
	"nan":      {},
	"-NaN":     {},
	"-nan":     {},
	"null":     {},
	"NULL":     {},
	"None":     {},
	"<NA>":     {},
	"#N/A":     {},
	"#N/A N/A": {},
	"1.#IND":   {},
	"-1.#IND":  {},
	"1.#QNAN":  {},
	"-1.#QNAN": {},
}

// Value is a single table cell. The zero Value is null.
type Value struct {
	raw     string
	num     float64
	valid   bool
	numeric bool
}

// Null returns a null cell.
func Null() Value { return Value{} }

// Text returns a non-null text cell.
func Text(s string) Value { return Value{raw: s, valid: true} }

// Number returns a non-null numeric cell with no source text.
func Number(f float64) Value { return Value{num: f, valid: true, numeric: true} }

// ParseValue reads one cell as written in a source file. Null tokens become
// null, anything strconv.ParseFloat accepts becomes a number that remembers
// its source text, and everything else is text.
func ParseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if _, ok := nullTokens[trimmed]; ok {
		return Null()
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Text(raw)
	}
	// ParseFloat accepts any casing of "NaN"; all of them are missing values.
	// Infinities stay numbers.
	if math.IsNaN(f) {
		return Null()
	}
	return Value{raw: raw, num: f, valid: true, numeric: true}
}

// IsNull reports whether the cell is null.
func (v Value) IsNull() bool { return !v.valid }

// IsNumber reports whether the cell holds a number.
func (v Value) IsNumber() bool { return v.valid && v.numeric }

// Float returns the numeric value and true, or false for null and text cells.
func (v Value) Float() (float64, bool) {
	if !v.IsNumber() {
		return 0, false
	}
	return v.num, true
}

// String renders the cell the way it is written back out: source text when
// the cell came from a file, the shortest float form for computed numbers,
// and "" for null.
func (v Value) String() string {
	switch {
	case !v.valid:
		return ""
	case v.raw != "":
		return v.raw
	case v.numeric:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Row is one record; cell i belongs to column i of its table.
type Row []Value

// Table is an ordered, column-named collection of rows. Tables are never
// mutated after construction: filtering and scoring return new tables that
// share cells with their source.
type Table struct {
	columns []string
	kinds   []ColumnKind
	index   map[string]int
	rows    []Row
}

// NewTable builds a table and infers each column's kind. Column names must be
// unique and every row must have exactly one cell per column.
func NewTable(columns []string, rows []Row) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d fields, want %d", i+1, len(row), len(columns))
		}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)

	return &Table{
		columns: cols,
		kinds:   inferKinds(len(cols), rows),
		index:   index,
		rows:    rows,
	}, nil
}

func inferKinds(width int, rows []Row) []ColumnKind {
	kinds := make([]ColumnKind, width)
	for c := range width {
		kind := KindNumber
		for _, row := range rows {
			if v := row[c]; v.valid && !v.numeric {
				kind = KindText
				break
			}
		}
		kinds[c] = kind
	}
	return kinds
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Kind returns the inferred kind of column i.
func (t *Table) Kind(i int) ColumnKind { return t.kinds[i] }

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns row i. Callers must not modify it.
func (t *Table) Row(i int) Row { return t.rows[i] }

// HasColumn reports whether the table has a column called name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// ColumnIndex resolves a column name, failing with *MissingColumnError.
func (t *Table) ColumnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, &MissingColumnError{Column: name}
	}
	return i, nil
}

// Record returns row i as a column-name keyed map: numbers as float64, text
// as string, and nulls as nil. Infinite numbers are also nil since JSON has
// no spelling for them.
func (t *Table) Record(i int) map[string]any {
	rec := make(map[string]any, len(t.columns))
	for c, name := range t.columns {
		v := t.rows[i][c]
		switch {
		case v.IsNull(), math.IsInf(v.num, 0):
			rec[name] = nil
		case v.IsNumber() && t.kinds[c] == KindNumber:
			rec[name] = v.num
		default:
			rec[name] = v.String()
		}
	}
	return rec
}

// withRows returns a table with the same columns and the given rows.
func (t *Table) withRows(rows []Row) *Table {
	return &Table{
		columns: t.columns,
		kinds:   t.kinds,
		index:   t.index,
		rows:    rows,
	}
}

// WithColumn returns a copy of t with the named column set to values,
// appending it when absent and replacing it in place otherwise. The source
// table is left untouched.
func (t *Table) WithColumn(name string, values []Value) (*Table, error) {
	if len(values) != len(t.rows) {
		return nil, fmt.Errorf("column %q has %d values, want %d", name, len(values), len(t.rows))
	}

	pos, exists := t.index[name]
	columns := t.columns
	index := t.index
	if !exists {
		pos = len(t.columns)
		columns = make([]string, len(t.columns)+1)
		copy(columns, t.columns)
		columns[pos] = name

		index = make(map[string]int, len(columns))
		for i, c := range columns {
			index[c] = i
		}
	}

	rows := make([]Row, len(t.rows))
	for i, src := range t.rows {
		row := make(Row, len(columns))
		copy(row, src)
		row[pos] = values[i]
		rows[i] = row
	}

	return &Table{
		columns: columns,
		kinds:   inferKinds(len(columns), rows),
		index:   index,
		rows:    rows,
	}, nil
}
