// Package export serializes a filtered, scored table for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/couchcryptid/svi-heatmap/internal/domain"
)

// CSV download metadata.
const (
	CSVFilename    = "filtered_data.csv"
	CSVContentType = "text/csv"
)

// CSV writes t as comma-delimited UTF-8 text with a header row and no index
// column. Rows keep table order and nulls are empty fields, so the same table
// always yields the same bytes.
func CSV(t *domain.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Columns()); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(t.Columns()))
	for i := range t.Len() {
		for c, v := range t.Row(i) {
			record[c] = v.String()
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// CSVExporter adapts CSV to the pipeline's exporter contract.
type CSVExporter struct{}

func (CSVExporter) Format() string      { return "csv" }
func (CSVExporter) Filename() string    { return CSVFilename }
func (CSVExporter) ContentType() string { return CSVContentType }

func (CSVExporter) Export(t *domain.Table) ([]byte, error) { return CSV(t) }
