package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinedScore(t *testing.T) {
	tests := []struct {
		name     string
		dom      Value
		groupQ   Value
		expected float64
		ok       bool
	}{
		{"normalized difference", Number(10), Number(2), 8.0 / 12.0, true},
		{"both zero", Number(0), Number(0), 0, true},
		{"only groupq", Number(0), Number(5), -1, true},
		{"only dom", Number(5), Number(0), 1, true},
		{"negative inputs are not clamped", Number(-3), Number(1), 4, true},
		{"opposite sum uses denominator one", Number(2), Number(-2), 4, true},
		{"null dom", Null(), Number(1), 0, false},
		{"null groupq", Number(1), Null(), 0, false},
		{"text dom", Text("high"), Number(1), 0, false},
		{"infinite inputs", Number(math.Inf(1)), Number(math.Inf(1)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CombinedScore(tt.dom, tt.groupQ)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestCombinedScore_RangeForNonNegativeInputs(t *testing.T) {
	for d := 0.0; d <= 50; d += 2.5 {
		for g := 0.0; g <= 50; g += 3.5 {
			s, ok := CombinedScore(Number(d), Number(g))
			require.True(t, ok)
			assert.False(t, math.IsNaN(s) || math.IsInf(s, 0))
			assert.GreaterOrEqual(t, s, -1.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestScore_AppendsColumnToEveryRow(t *testing.T) {
	src := mustTable(t, fullHeader,
		record("PA", "40.0", "-75.0", "10", "2"),
		record("PA", "", "", "0", "0"),
		record("PA", "40.1", "-75.1", "", "2"),
	)

	scored, err := Score(src)
	require.NoError(t, err)

	assert.False(t, src.HasColumn(ColCombinedScore), "source must not gain the column")
	scores := column(t, scored, ColCombinedScore)
	require.Len(t, scores, 3)

	s, ok := scores[0].Float()
	require.True(t, ok)
	assert.InDelta(t, 0.6667, s, 1e-4)

	s, ok = scores[1].Float()
	require.True(t, ok, "zero denominator scores 0, not null")
	assert.Equal(t, 0.0, s)

	assert.True(t, scores[2].IsNull(), "null density propagates")
}

func TestScore_Idempotent(t *testing.T) {
	src := mustTable(t, fullHeader,
		record("PA", "40.0", "-75.0", "10", "2"),
		record("OH", "39.0", "-82.0", "1", "9"),
	)

	once, err := Score(src)
	require.NoError(t, err)
	twice, err := Score(once)
	require.NoError(t, err)

	assert.Equal(t, once.Columns(), twice.Columns())
	assert.Equal(t, column(t, once, ColCombinedScore), column(t, twice, ColCombinedScore))
}

func TestScore_MissingDensityColumn(t *testing.T) {
	tbl := mustTable(t, []string{ColDensityDOM}, []string{"1"})

	_, err := Score(tbl)

	var mce *MissingColumnError
	require.True(t, errors.As(err, &mce))
	assert.Equal(t, ColDensityGroupQ, mce.Column)
}
