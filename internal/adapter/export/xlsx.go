package export

import (
	"fmt"

	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/xuri/excelize/v2"
)

// XLSX download metadata.
const (
	XLSXFilename    = "filtered_data.xlsx"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	XLSXSheet       = "filtered_data"
)

// XLSX writes t as a single-sheet workbook. Numeric columns become number
// cells, text columns stay text, and nulls are left blank.
func XLSX(t *domain.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", XLSXSheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	columns := t.Columns()
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(XLSXSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}

	cells := make([]any, len(columns))
	for i := range t.Len() {
		for c, v := range t.Row(i) {
			cells[c] = cellValue(v, t.Kind(c))
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(XLSXSheet, axis, &cells); err != nil {
			return nil, fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func cellValue(v domain.Value, kind domain.ColumnKind) any {
	if v.IsNull() {
		return nil
	}
	if f, ok := v.Float(); ok && kind == domain.KindNumber {
		return f
	}
	return v.String()
}

// XLSXExporter adapts XLSX to the pipeline's exporter contract.
type XLSXExporter struct{}

func (XLSXExporter) Format() string      { return "xlsx" }
func (XLSXExporter) Filename() string    { return XLSXFilename }
func (XLSXExporter) ContentType() string { return XLSXContentType }

func (XLSXExporter) Export(t *domain.Table) ([]byte, error) { return XLSX(t) }
