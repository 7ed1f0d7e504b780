package domain

import "math"

// CombinedScore computes the normalized difference index of the two density
// measures. A zero denominator is replaced by 1, so two zero densities score
// 0 rather than dividing by zero. Negative inputs are used as given. The
// second return is false when either input is null or the result is not
// finite.
func CombinedScore(dom, groupQ Value) (float64, bool) {
	d, ok := dom.Float()
	if !ok {
		return 0, false
	}
	g, ok := groupQ.Float()
	if !ok {
		return 0, false
	}

	denom := d + g
	if denom == 0 {
		denom = 1
	}
	score := (d - g) / denom
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, false
	}
	return score, true
}

// Score returns a copy of t with a combined_score column computed for every
// row. Scoring an already scored table recomputes the column in place, so
// the operation is idempotent. Text cells in a density column score null.
func Score(t *Table) (*Table, error) {
	domCol, err := t.ColumnIndex(ColDensityDOM)
	if err != nil {
		return nil, err
	}
	groupQCol, err := t.ColumnIndex(ColDensityGroupQ)
	if err != nil {
		return nil, err
	}

	scores := make([]Value, len(t.rows))
	for i, row := range t.rows {
		if s, ok := CombinedScore(row[domCol], row[groupQCol]); ok {
			scores[i] = Number(s)
		}
	}
	return t.WithColumn(ColCombinedScore, scores)
}
