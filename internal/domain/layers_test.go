package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredTable(t *testing.T, rows ...[]string) *Table {
	t.Helper()
	scored, err := Score(mustTable(t, fullHeader, rows...))
	require.NoError(t, err)
	return scored
}

func TestBuildHeatLayer(t *testing.T) {
	tbl := scoredTable(t,
		record("PA", "40.0", "-75.0", "10", "2"),
		record("PA", "", "-75.0", "10", "2"),
		record("PA", "40.5", "", "10", "2"),
		record("PA", "41.0", "-76.0", "", "2"),
		record("PA", "42.0", "-77.0", "0", "0"),
	)

	heat, err := BuildHeatLayer(tbl)
	require.NoError(t, err)

	want := []HeatPoint{
		{Lat: 40.0, Lon: -75.0, Weight: 8.0 / 12.0},
		{Lat: 42.0, Lon: -77.0, Weight: 0},
	}
	if diff := cmp.Diff(want, heat, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("heat layer mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildHeatLayer_RequiresScore(t *testing.T) {
	tbl := mustTable(t, fullHeader, record("PA", "40.0", "-75.0", "10", "2"))

	_, err := BuildHeatLayer(tbl)

	var mce *MissingColumnError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, ColCombinedScore, mce.Column)
}

func TestBuildMarkerLayer(t *testing.T) {
	tbl := scoredTable(t,
		record("PA", "40.0", "-75.0", "10", "2"),
		record("PA", "", "-75.0", "10", "2"),
		record("PA", "41.0", "-76.0", "", "2"),
	)

	markers, err := BuildMarkerLayer(tbl)
	require.NoError(t, err)

	require.Len(t, markers, 2, "null-score rows still get markers, null coordinates never do")
	assert.Equal(t, 40.0, markers[0].Lat)
	assert.Equal(t, -75.0, markers[0].Lon)
	assert.Equal(t, 41.0, markers[1].Lat)
	assert.True(t, strings.HasPrefix(markers[0].Tooltip, "Location: Place PA<br>"))
}

func TestLayers_EmptyTable(t *testing.T) {
	tbl := scoredTable(t)

	heat, err := BuildHeatLayer(tbl)
	require.NoError(t, err)
	markers, err := BuildMarkerLayer(tbl)
	require.NoError(t, err)

	assert.NotNil(t, heat)
	assert.Empty(t, heat)
	assert.NotNil(t, markers)
	assert.Empty(t, markers)
}

func TestLayers_SkipNonFiniteCoordinates(t *testing.T) {
	tbl := scoredTable(t,
		record("PA", "NAN", "-75.0", "10", "2"),
		record("PA", "40.0", "Nan", "10", "2"),
		record("PA", "inf", "-75.0", "10", "2"),
		record("PA", "40.0", "-Infinity", "10", "2"),
		record("PA", "40.0", "-75.0", "10", "2"),
	)

	heat, err := BuildHeatLayer(tbl)
	require.NoError(t, err)
	markers, err := BuildMarkerLayer(tbl)
	require.NoError(t, err)

	require.Len(t, heat, 1)
	require.Len(t, markers, 1)
	assert.Equal(t, 40.0, markers[0].Lat)

	_, err = json.Marshal(heat)
	require.NoError(t, err)
	_, err = json.Marshal(markers)
	require.NoError(t, err)
}

func TestLayers_EveryPlottableRowAppearsOnce(t *testing.T) {
	tbl := scoredTable(t,
		record("PA", "40.0", "-75.0", "10", "2"),
		record("PA", "40.0", "-75.0", "10", "2"),
		record("OH", "39.0", "-82.0", "3", "1"),
	)

	heat, err := BuildHeatLayer(tbl)
	require.NoError(t, err)
	markers, err := BuildMarkerLayer(tbl)
	require.NoError(t, err)

	assert.Len(t, heat, 3, "duplicate rows are not deduplicated")
	assert.Len(t, markers, 3)
}

func TestHeatPoint_JSONTriple(t *testing.T) {
	data, err := json.Marshal([]HeatPoint{{Lat: 40, Lon: -75, Weight: 0.5}})
	require.NoError(t, err)
	assert.JSONEq(t, `[[40,-75,0.5]]`, string(data))

	var back []HeatPoint
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, []HeatPoint{{Lat: 40, Lon: -75, Weight: 0.5}}, back)
}

func TestMarkerBounds(t *testing.T) {
	t.Run("encloses all markers", func(t *testing.T) {
		b, ok := MarkerBounds([]Marker{
			{Lat: 40.0, Lon: -75.0},
			{Lat: 39.0, Lon: -82.0},
			{Lat: 41.5, Lon: -77.0},
		})
		require.True(t, ok)
		assert.InDelta(t, 39.0, b.South, 1e-9)
		assert.InDelta(t, 41.5, b.North, 1e-9)
		assert.InDelta(t, -82.0, b.West, 1e-9)
		assert.InDelta(t, -75.0, b.East, 1e-9)
	})

	t.Run("no markers", func(t *testing.T) {
		_, ok := MarkerBounds(nil)
		assert.False(t, ok)
	})
}
