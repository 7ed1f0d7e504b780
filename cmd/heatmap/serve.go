package main

import (
	"context"
	"errors"
	"net/http"

	httpadapter "github.com/couchcryptid/svi-heatmap/internal/adapter/http"
	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the dataset and serve the dashboard over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	dash, err := a.dashboard()
	if err != nil {
		return err
	}

	srv := httpadapter.NewServer(a.cfg.HTTPAddr, dash, a.logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			a.logger.Error("http server error", "error", err)
			return err
		}
	}
	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", "error", err)
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
