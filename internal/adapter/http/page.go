package http

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/couchcryptid/svi-heatmap/internal/adapter/export"
	"github.com/couchcryptid/svi-heatmap/internal/pipeline"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/dashboard.html"))

// PageOptions controls how a dashboard page is written.
type PageOptions struct {
	// PreviewRows caps the rows in the table preview; 0 shows every row.
	PreviewRows int
	// Static pages carry no state selector or download links, since there
	// is no server behind them.
	Static bool
}

type pageData struct {
	View     *pipeline.View
	ViewJSON template.JS
	Static   bool
	CSVHref  string
	XLSXHref string

	// Table preview.
	Columns   []string
	Rows      [][]string
	Shown     int
	Hidden    int
	TotalRows int
}

// WritePage renders the dashboard page for view into w. The page is built
// in memory first so a template error never leaves a half-written page.
func WritePage(w io.Writer, view *pipeline.View, opts PageOptions) error {
	viewJSON, err := marshalTemplateJS(view)
	if err != nil {
		return fmt.Errorf("encode view: %w", err)
	}

	data := pageData{
		View:      view,
		ViewJSON:  viewJSON,
		Static:    opts.Static,
		Columns:   view.Table.Columns(),
		TotalRows: view.Table.Len(),
		CSVHref:   downloadHref(export.CSVFilename, view.Selection),
		XLSXHref:  downloadHref(export.XLSXFilename, view.Selection),
	}
	n := view.Table.Len()
	if opts.PreviewRows > 0 && n > opts.PreviewRows {
		n = opts.PreviewRows
	}
	data.Rows = make([][]string, n)
	for i := range n {
		row := view.Table.Row(i)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		data.Rows[i] = cells
	}
	data.Shown = n
	data.Hidden = view.Table.Len() - n

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// marshalTemplateJS inlines v as a JavaScript literal. encoding/json escapes
// <, > and & so the payload cannot close the script element.
func marshalTemplateJS(v any) (template.JS, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return template.JS(payload), nil //nolint:gosec // JSON-encoded, HTML-safe
}

func downloadHref(file, selection string) string {
	return "/download/" + file + "?" + url.Values{"state": {selection}}.Encode()
}
