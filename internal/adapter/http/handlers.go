package http

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/couchcryptid/svi-heatmap/internal/adapter/export"
	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/couchcryptid/svi-heatmap/internal/pipeline"
)

var exporters = map[string]pipeline.Exporter{
	export.CSVFilename:  export.CSVExporter{},
	export.XLSXFilename: export.XLSXExporter{},
}

// selection reads the state query parameter, defaulting to every state when
// it is absent or empty. The value is matched as sent, padding included.
func selection(r *http.Request) string {
	if s := r.URL.Query().Get("state"); s != "" {
		return s
	}
	return domain.AllStates
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	view, err := s.dash.Render(selection(r))
	if err != nil {
		http.Error(w, "render dashboard: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	opts := PageOptions{PreviewRows: s.dash.Options().TablePreviewRows}
	if err := WritePage(&buf, view, opts); err != nil {
		s.logger.Error("page template failed", "error", err)
		http.Error(w, "render dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}

func (s *Server) handleStates(w http.ResponseWriter, _ *http.Request) {
	states, err := s.dash.States()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, states)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	view, err := s.dash.Render(selection(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	e, ok := exporters[r.PathValue("file")]
	if !ok {
		http.NotFound(w, r)
		return
	}

	data, err := s.dash.Export(selection(r), e)
	if err != nil {
		s.logger.Error("export failed", "format", e.Format(), "error", err)
		http.Error(w, "export: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", e.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+e.Filename()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data) //nolint:errcheck // client went away
}
