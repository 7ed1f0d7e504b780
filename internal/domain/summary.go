package domain

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the combined score column of a scored table.
type Summary struct {
	Rows   int     `json:"rows"`
	Scored int     `json:"scored"`
	Nulls  int     `json:"nulls"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes descriptive statistics over the non-null scores of t.
// StdDev is the sample standard deviation and is 0 for fewer than two scores.
func Summarize(t *Table) (Summary, error) {
	col, err := t.ColumnIndex(ColCombinedScore)
	if err != nil {
		return Summary{}, err
	}

	scores := make([]float64, 0, len(t.rows))
	for _, row := range t.rows {
		if s, ok := row[col].Float(); ok {
			scores = append(scores, s)
		}
	}

	sum := Summary{
		Rows:   len(t.rows),
		Scored: len(scores),
		Nulls:  len(t.rows) - len(scores),
	}
	if len(scores) == 0 {
		return sum, nil
	}

	sum.Min = floats.Min(scores)
	sum.Max = floats.Max(scores)
	sum.Mean = stat.Mean(scores, nil)
	if len(scores) > 1 {
		sum.StdDev = stat.StdDev(scores, nil)
	}
	if math.IsNaN(sum.StdDev) {
		sum.StdDev = 0
	}
	return sum, nil
}
