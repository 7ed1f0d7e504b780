package main

import (
	"fmt"
	"os"

	"github.com/couchcryptid/svi-heatmap/internal/adapter/export"
	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/couchcryptid/svi-heatmap/internal/pipeline"
	"github.com/spf13/cobra"
)

var exporters = map[string]pipeline.Exporter{
	"csv":  export.CSVExporter{},
	"xlsx": export.XLSXExporter{},
}

func newExportCommand(a *app) *cobra.Command {
	var state, format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered, scored table as CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, ok := exporters[format]
			if !ok {
				return fmt.Errorf("unknown format %q: want csv or xlsx", format)
			}
			dash, err := a.dashboard()
			if err != nil {
				return err
			}
			data, err := dash.Export(state, e)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(output, data, 0o644)
		},
	}
	cmd.Flags().StringVar(&state, "state", domain.AllStates, "state selection")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format: csv|xlsx")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
