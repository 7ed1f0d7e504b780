package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTooltip_Layout(t *testing.T) {
	tbl := mustTable(t, fullHeader, record("PA", "40.0", "-75.0", "10", "2.5"))

	text, err := Tooltip(tbl, 0)
	require.NoError(t, err)

	lines := strings.Split(text, "<br>")
	require.Len(t, lines, 3+len(DemographicFields)+1)
	assert.Equal(t, "Location: Place PA", lines[0])
	assert.Equal(t, "State: PA", lines[1])
	assert.Equal(t, "DOM: 42", lines[2])
	for i, f := range DemographicFields {
		assert.Equal(t, f+": 7", lines[3+i])
	}
	assert.Equal(t, "DENSITY_GROUPQ: 2.5", lines[len(lines)-1])
	assert.NotContains(t, text, "combined_score")
}

func TestTooltip_NullAndEscaping(t *testing.T) {
	row := record("PA", "40.0", "-75.0", "10", "")
	for i, c := range fullHeader {
		if c == ColLocation {
			row[i] = "Smith & <Jones>"
		}
		if c == "E_UNEMP" {
			row[i] = ""
		}
	}
	tbl := mustTable(t, fullHeader, row)

	text, err := Tooltip(tbl, 0)
	require.NoError(t, err)

	assert.Contains(t, text, "Location: Smith &amp; &lt;Jones&gt;<br>")
	assert.Contains(t, text, "E_UNEMP: nan<br>")
	assert.True(t, strings.HasSuffix(text, "DENSITY_GROUPQ: nan"))
}

func TestNewTooltipper_MissingColumn(t *testing.T) {
	header := make([]string, 0, len(fullHeader))
	for _, c := range fullHeader {
		if c != "E_CROWD" {
			header = append(header, c)
		}
	}
	tbl := mustTable(t, header)

	_, err := NewTooltipper(tbl)

	var mce *MissingColumnError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, "E_CROWD", mce.Column)
}
