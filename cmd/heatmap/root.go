package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/svi-heatmap/internal/adapter/csvfile"
	"github.com/couchcryptid/svi-heatmap/internal/config"
	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/couchcryptid/svi-heatmap/internal/observability"
	"github.com/couchcryptid/svi-heatmap/internal/pipeline"
	"github.com/spf13/cobra"
)

// app carries the dependencies every subcommand shares.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

type rootOptions struct {
	configPath string
	dataPath   string
	logLevel   string
}

func newRootCommand(a *app) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Heat map dashboard of social vulnerability by location",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (default: $CONFIG_FILE)")
	pf.StringVar(&opts.dataPath, "data", "", "dataset path (default: $DATA_PATH)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (default: $LOG_LEVEL)")

	cmd.AddCommand(
		newServeCommand(a),
		newRenderCommand(a),
		newExportCommand(a),
		newPublishCommand(a),
		newValidateCommand(a),
	)
	return cmd
}

func (a *app) init(opts *rootOptions) error {
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.dataPath != "" {
		cfg.DataPath = opts.dataPath
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	a.cfg = cfg
	a.logger = observability.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if a.metrics == nil {
		a.metrics = observability.NewMetrics()
	}
	return nil
}

// loadTable reads the dataset once. A load failure is fatal to every command.
func (a *app) loadTable() (*domain.Table, error) {
	tbl, err := csvfile.Load(a.cfg.DataPath)
	if err != nil {
		a.metrics.LoadErrors.Inc()
		a.logger.Error("failed to load dataset", "path", a.cfg.DataPath, "error", err)
		return nil, err
	}
	a.metrics.DatasetRows.Set(float64(tbl.Len()))
	a.logger.Info("dataset loaded", "path", a.cfg.DataPath, "rows", tbl.Len(), "columns", len(tbl.Columns()))

	if missing := domain.MissingColumns(tbl); len(missing) > 0 {
		a.logger.Warn("dataset is missing columns", "columns", missing)
	}
	return tbl, nil
}

func (a *app) dashboard() (*pipeline.Dashboard, error) {
	tbl, err := a.loadTable()
	if err != nil {
		return nil, err
	}
	return pipeline.New(tbl, a.options(), a.logger, a.metrics), nil
}

func (a *app) options() pipeline.Options {
	opts := pipeline.DefaultOptions().WithMapbox(a.cfg.MapboxToken, a.cfg.MapboxStyle)
	opts.Map.CenterLat = a.cfg.MapCenterLat
	opts.Map.CenterLon = a.cfg.MapCenterLon
	opts.Map.Zoom = a.cfg.MapZoom
	opts.Heat.Radius = a.cfg.HeatRadius
	opts.Heat.MaxZoom = a.cfg.HeatMaxZoom
	opts.Markers.DisableClusteringAtZoom = a.cfg.DisableClusteringAtZoom
	opts.TablePreviewRows = a.cfg.TablePreviewRows
	return opts
}
