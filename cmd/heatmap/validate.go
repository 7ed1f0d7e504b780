package main

import (
	"fmt"

	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/spf13/cobra"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the dataset for the columns the dashboard reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := a.loadTable()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d rows, %d columns\n", a.cfg.DataPath, tbl.Len(), len(tbl.Columns()))

			missing := domain.MissingColumns(tbl)
			for _, col := range missing {
				fmt.Fprintf(w, "  MISSING %s\n", col)
			}
			if len(missing) > 0 {
				return fmt.Errorf("%d required columns missing", len(missing))
			}
			fmt.Fprintln(w, "  all required columns present")
			return nil
		},
	}
}
