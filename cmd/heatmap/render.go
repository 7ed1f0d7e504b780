package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/couchcryptid/svi-heatmap/internal/adapter/export"
	httpadapter "github.com/couchcryptid/svi-heatmap/internal/adapter/http"
	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/spf13/cobra"
)

func newRenderCommand(a *app) *cobra.Command {
	var state, out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write a static dashboard snapshot and its CSV export to a directory",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.render(state, out)
		},
	}
	cmd.Flags().StringVar(&state, "state", domain.AllStates, "state selection")
	cmd.Flags().StringVar(&out, "out", "site", "output directory")
	return cmd
}

func (a *app) render(state, out string) error {
	dash, err := a.dashboard()
	if err != nil {
		return err
	}

	view, err := dash.Render(state)
	if err != nil {
		return err
	}
	csvData, err := dash.Export(state, export.CSVExporter{})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	page, err := os.Create(filepath.Join(out, "index.html"))
	if err != nil {
		return fmt.Errorf("create page: %w", err)
	}
	pageOpts := httpadapter.PageOptions{PreviewRows: a.cfg.TablePreviewRows, Static: true}
	if err := httpadapter.WritePage(page, view, pageOpts); err != nil {
		page.Close()
		return fmt.Errorf("write page: %w", err)
	}
	if err := page.Close(); err != nil {
		return fmt.Errorf("write page: %w", err)
	}

	if err := os.WriteFile(filepath.Join(out, export.CSVFilename), csvData, 0o644); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	a.logger.Info("snapshot written", "dir", out, "selection", state, "rows", view.Table.Len())
	return nil
}
