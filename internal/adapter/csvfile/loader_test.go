package csvfile

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePath = "testdata/sample.csv"

func TestLoad_Sample(t *testing.T) {
	tbl, err := Load(samplePath)
	require.NoError(t, err)

	assert.Equal(t, 5, tbl.Len())
	assert.Len(t, domain.MissingColumns(tbl), 0)

	col, err := tbl.ColumnIndex(domain.ColLatitude)
	require.NoError(t, err)
	assert.Equal(t, domain.KindNumber, tbl.Kind(col))
	assert.True(t, tbl.Row(3)[col].IsNull(), "empty latitude reads as null")

	col, err = tbl.ColumnIndex(domain.ColState)
	require.NoError(t, err)
	assert.Equal(t, domain.KindText, tbl.Kind(col))
	assert.Equal(t, "PA", tbl.Row(0)[col].String())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))

	var le *domain.LoadError
	require.ErrorAs(t, err, &le)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty file", "", "header row required"},
		{"long row", "a,b\n1,2\n3,4,5\n", "line 3: 3 fields, header has 2: wrong number of fields"},
		{"bare quote", "a,b\n1,\"2\n", "extraneous or missing"},
		{"duplicate header", "a,a\n1,2\n", "duplicate column"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), "inline")

			var le *domain.LoadError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, "inline", le.Path)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRead_PadsShortRows(t *testing.T) {
	tbl, err := Read(strings.NewReader("StateName,Latitude_zillow,Longitude_zillow\nPA,40.0\nOH\n"), "short")
	require.NoError(t, err)

	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "PA", tbl.Row(0)[0].String())
	assert.True(t, tbl.Row(0)[2].IsNull())
	assert.True(t, tbl.Row(1)[1].IsNull())
	assert.True(t, tbl.Row(1)[2].IsNull())

	col, err := tbl.ColumnIndex(domain.ColLatitude)
	require.NoError(t, err)
	assert.Equal(t, domain.KindNumber, tbl.Kind(col))
}

func TestRead_StripsBOM(t *testing.T) {
	tbl, err := Read(strings.NewReader("\ufeffStateName,x\nPA,1\n"), "bom")
	require.NoError(t, err)
	assert.True(t, tbl.HasColumn(domain.ColState))
}

func TestRead_HeaderOnly(t *testing.T) {
	tbl, err := Read(strings.NewReader("StateName,x\n"), "header-only")
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, []string{"StateName", "x"}, tbl.Columns())
}
