package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/svi-heatmap/internal/domain"
	"github.com/couchcryptid/svi-heatmap/internal/observability"
)

// Exporter serializes a filtered, scored table.
type Exporter interface {
	Format() string
	Filename() string
	ContentType() string
	Export(t *domain.Table) ([]byte, error)
}

// Sink receives the scored rows of one selection.
type Sink interface {
	Publish(ctx context.Context, selection string, t *domain.Table) (int, error)
}

// HeatOverlay is the weighted-point overlay group.
type HeatOverlay struct {
	Name    string             `json:"name"`
	Points  []domain.HeatPoint `json:"points"`
	Options domain.HeatOptions `json:"options"`
}

// MarkerOverlay is the clustered hover-marker overlay group.
type MarkerOverlay struct {
	Name    string               `json:"name"`
	Markers []domain.Marker      `json:"markers"`
	Options domain.MarkerOptions `json:"options"`
}

// View is everything the presentation shell needs to draw one selection.
type View struct {
	Selection   string         `json:"selection"`
	States      []string       `json:"states"`
	Map         MapView        `json:"map"`
	Heat        HeatOverlay    `json:"heat"`
	Markers     MarkerOverlay  `json:"markers"`
	Bounds      *domain.Bounds `json:"bounds,omitempty"`
	Summary     domain.Summary `json:"summary"`
	GeneratedAt time.Time      `json:"generated_at"`

	// Table is the filtered, scored table behind the overlays.
	Table *domain.Table `json:"-"`
}

// Dashboard runs the filter, score and layer stages over a loaded dataset.
// The source table is only read, so one Dashboard serves concurrent requests.
type Dashboard struct {
	source  *domain.Table
	opts    Options
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Dashboard over a loaded source table.
func New(source *domain.Table, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Dashboard {
	return &Dashboard{
		source:  source,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
	}
}

// Options returns the rendering options the dashboard was built with.
func (d *Dashboard) Options() Options { return d.opts }

// CheckReadiness returns nil once a dataset is loaded.
func (d *Dashboard) CheckReadiness(_ context.Context) error {
	if d.source == nil {
		return errors.New("dataset not loaded")
	}
	return nil
}

// States returns the state selection list, AllStates first.
func (d *Dashboard) States() ([]string, error) {
	return domain.StateOptions(d.source)
}

// Select filters the source to selection and attaches the combined score.
func (d *Dashboard) Select(selection string) (*domain.Table, error) {
	filtered, err := domain.FilterByState(d.source, selection)
	if err != nil {
		return nil, fmt.Errorf("filter: %w", err)
	}
	scored, err := domain.Score(filtered)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	return scored, nil
}

// Render runs the whole pipeline for one selection. Nothing is cached: every
// call filters, scores and builds both layers from the source again.
func (d *Dashboard) Render(selection string) (*View, error) {
	start := clock.Now()

	view, err := d.render(selection)
	if err != nil {
		d.metrics.RenderErrors.Inc()
		d.logger.Error("render failed", "selection", selection, "error", err)
		return nil, err
	}

	d.metrics.Renders.WithLabelValues(scope(selection)).Inc()
	d.metrics.RenderDuration.Observe(clock.Since(start).Seconds())
	d.metrics.HeatPoints.Observe(float64(len(view.Heat.Points)))
	d.metrics.MarkerPoints.Observe(float64(len(view.Markers.Markers)))

	d.logger.Debug("dashboard rendered",
		"selection", selection,
		"rows", view.Table.Len(),
		"heat_points", len(view.Heat.Points),
		"markers", len(view.Markers.Markers),
	)
	return view, nil
}

func (d *Dashboard) render(selection string) (*View, error) {
	states, err := d.States()
	if err != nil {
		return nil, fmt.Errorf("states: %w", err)
	}

	scored, err := d.Select(selection)
	if err != nil {
		return nil, err
	}

	heat, err := domain.BuildHeatLayer(scored)
	if err != nil {
		return nil, fmt.Errorf("heat layer: %w", err)
	}
	markers, err := domain.BuildMarkerLayer(scored)
	if err != nil {
		return nil, fmt.Errorf("marker layer: %w", err)
	}
	summary, err := domain.Summarize(scored)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	view := &View{
		Selection: selection,
		States:    states,
		Map:       d.opts.Map,
		Heat: HeatOverlay{
			Name:    domain.HeatLayerName,
			Points:  heat,
			Options: d.opts.Heat,
		},
		Markers: MarkerOverlay{
			Name:    domain.MarkerLayerName,
			Markers: markers,
			Options: d.opts.Markers,
		},
		Summary:     summary,
		GeneratedAt: clock.Now().UTC(),
		Table:       scored,
	}
	if b, ok := domain.MarkerBounds(markers); ok {
		view.Bounds = &b
	}
	return view, nil
}

// Export filters and scores selection, then serializes it with e.
func (d *Dashboard) Export(selection string, e Exporter) ([]byte, error) {
	scored, err := d.Select(selection)
	if err != nil {
		return nil, err
	}
	data, err := e.Export(scored)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", e.Format(), err)
	}

	d.metrics.Exports.WithLabelValues(e.Format()).Inc()
	d.metrics.ExportBytes.WithLabelValues(e.Format()).Add(float64(len(data)))
	d.logger.Info("table exported",
		"selection", selection,
		"format", e.Format(),
		"rows", scored.Len(),
		"bytes", len(data),
	)
	return data, nil
}

// Publish filters and scores selection, then hands the rows to sink.
func (d *Dashboard) Publish(ctx context.Context, selection string, sink Sink) (int, error) {
	scored, err := d.Select(selection)
	if err != nil {
		return 0, err
	}
	n, err := sink.Publish(ctx, selection, scored)
	if err != nil {
		return n, fmt.Errorf("publish: %w", err)
	}

	d.metrics.Exports.WithLabelValues("kafka").Inc()
	d.metrics.RowsPublished.Add(float64(n))
	d.logger.Info("table published", "selection", selection, "rows", n)
	return n, nil
}

func scope(selection string) string {
	if selection == domain.AllStates {
		return "all"
	}
	return "state"
}
