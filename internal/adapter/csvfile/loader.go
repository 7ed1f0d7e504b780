// Package csvfile loads the dashboard dataset from a comma-delimited file.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/couchcryptid/svi-heatmap/internal/domain"
)

const utf8BOM = "\ufeff"

// Load reads the CSV file at path into a table. Any failure to open or parse
// the file is returned as *domain.LoadError.
func Load(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return Read(f, path)
}

// Read parses CSV from r. name identifies the source in errors. Rows shorter
// than the header are padded with nulls; longer rows fail the load.
func Read(r io.Reader, name string) (*domain.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.LoadError{Path: name, Err: errors.New("empty file: header row required")}
	}
	if err != nil {
		return nil, &domain.LoadError{Path: name, Err: fmt.Errorf("read header: %w", err)}
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows []domain.Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &domain.LoadError{Path: name, Err: err}
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, &domain.LoadError{
				Path: name,
				Err:  fmt.Errorf("line %d: %d fields, header has %d: %w", line, len(rec), len(header), csv.ErrFieldCount),
			}
		}
		row := make(domain.Row, len(header))
		for i, cell := range rec {
			row[i] = domain.ParseValue(cell)
		}
		rows = append(rows, row)
	}

	t, err := domain.NewTable(header, rows)
	if err != nil {
		return nil, &domain.LoadError{Path: name, Err: err}
	}
	return t, nil
}
