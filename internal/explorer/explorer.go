package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"BikeShare/internal/config"
	"BikeShare/internal/dataset"
	"BikeShare/internal/prompt"
	"BikeShare/internal/report"
	"BikeShare/internal/session"
	"BikeShare/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Deps are the collaborators of an Explorer. Zero values fall back to
// stdin/stdout, a discarding logger and no-op telemetry
type Deps struct {
	In       io.Reader
	Out      io.Writer
	Progress io.Writer // load progress bar, nil hides it
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Meter    metric.Meter
}

// Explorer runs the prompt, load and report loop
type Explorer struct {
	config config.Config
	reader dataset.Reader
	loader *dataset.Loader
	prompt *prompt.Prompter
	out    io.Writer
	logger *slog.Logger
	tracer trace.Tracer
	ids    *session.IDs

	reportDuration metric.Float64Histogram
	rowsLoaded     metric.Int64Counter

	cleanup []func()
}

// New creates an Explorer reading trips through r
func New(cfg config.Config, r dataset.Reader, deps Deps) (*Explorer, error) {
	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.Tracer == nil {
		deps.Tracer = tracenoop.NewTracerProvider().Tracer("bikeshare")
	}
	if deps.Meter == nil {
		deps.Meter = metricnoop.NewMeterProvider().Meter("bikeshare")
	}

	histogram, err := deps.Meter.Float64Histogram(
		"bikeshare.report.duration",
		metric.WithDescription("Report computation time in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram: %w", err)
	}
	counter, err := deps.Meter.Int64Counter(
		"bikeshare.rows.loaded",
		metric.WithDescription("Trips kept after filtering"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	return &Explorer{
		config:         cfg,
		reader:         r,
		loader:         dataset.NewLoader(r, cfg, deps.Progress, deps.Logger),
		prompt:         prompt.New(deps.In, deps.Out),
		out:            deps.Out,
		logger:         deps.Logger,
		tracer:         deps.Tracer,
		ids:            session.NewIDs(),
		reportDuration: histogram,
		rowsLoaded:     counter,
	}, nil
}

// NewExplorer wires logging, telemetry and the configured data source
func NewExplorer(cfg config.Config) (*Explorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, closeLog, err := telemetry.InitLogger(cfg.LogDir, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx := context.Background()
	tracer, meter, shutdown, err := telemetry.InitTelemetry(ctx, cfg.LogDir)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	reader, err := dataset.NewReader(cfg)
	if err != nil {
		shutdown()
		closeLog()
		return nil, fmt.Errorf("failed to open data source: %w", err)
	}

	if cfg.Debug {
		logger.Info("Debug mode enabled")
	}
	if cfg.LegacyDayFilter {
		logger.Warn("legacy day filter enabled: day 0 selects Mondays, 7 selects nothing")
	}

	e, err := New(cfg, reader, Deps{
		Progress: os.Stderr,
		Logger:   logger,
		Tracer:   tracer,
		Meter:    meter,
	})
	if err != nil {
		reader.Close()
		shutdown()
		closeLog()
		return nil, err
	}
	e.cleanup = []func(){
		func() {
			if err := reader.Close(); err != nil {
				logger.Error("failed to close data source", "error", err)
			}
		},
		shutdown,
		closeLog,
	}
	return e, nil
}

// Close releases the data source and flushes telemetry
func (e *Explorer) Close() {
	for _, fn := range e.cleanup {
		fn()
	}
	e.cleanup = nil
}

// Run prompts, loads and reports until the user declines to restart or
// input ends. A load failure stops the loop and is returned
func (e *Explorer) Run(ctx context.Context) error {
	for {
		sel, err := e.prompt.Filters()
		if errors.Is(err, io.EOF) {
			e.logger.Info("input closed, stopping")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read filters: %w", err)
		}

		if err := e.RunOnce(ctx, sel); err != nil {
			return err
		}

		again, err := e.prompt.Restart()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read restart answer: %w", err)
		}
		if !again {
			e.logger.Info("session stopped")
			return nil
		}
	}
}

// RunOnce loads the selection and prints the four reports
func (e *Explorer) RunOnce(ctx context.Context, sel dataset.Selection) error {
	it := e.ids.Start()
	it.Selection = sel

	ctx, span := e.tracer.Start(ctx, "session_iteration", trace.WithAttributes(
		attribute.String("iteration.id", it.ID),
		attribute.String("city", sel.City),
		attribute.String("month", sel.Month),
		attribute.Int("day", sel.Day),
	))
	defer span.End()

	e.logger.Info("iteration started", "iteration_id", it.ID, "city", sel.City, "month", sel.Month, "day", sel.Day)

	loadCtx, loadSpan := e.tracer.Start(ctx, "load_dataset")
	tbl, err := e.loader.Load(loadCtx, sel)
	if err != nil {
		loadSpan.RecordError(err)
		loadSpan.SetStatus(codes.Error, "load failed")
		loadSpan.End()
		span.SetStatus(codes.Error, "load failed")
		e.logger.Error("failed to load dataset", "iteration_id", it.ID, "error", err)
		return err
	}
	loadSpan.SetAttributes(attribute.Int("rows", tbl.Len()))
	loadSpan.End()

	it.Rows = tbl.Len()
	e.rowsLoaded.Add(ctx, int64(it.Rows), metric.WithAttributes(attribute.String("city", sel.City)))

	for _, g := range report.Generators() {
		rctx, rspan := e.tracer.Start(ctx, "report."+g.Name)
		elapsed := report.Write(e.out, g, tbl)
		e.reportDuration.Record(rctx, float64(elapsed)/float64(time.Millisecond),
			metric.WithAttributes(attribute.String("report", g.Name)))
		rspan.End()
	}

	e.logger.Info("iteration finished", "iteration_id", it.ID, "rows", it.Rows,
		"elapsed_ms", time.Since(it.StartTime).Milliseconds())
	return nil
}

// Describe lists each city with where its data is read from
func (e *Explorer) Describe(w io.Writer) {
	for _, city := range config.Cities() {
		fmt.Fprintf(w, "%-14s %s\n", city, e.reader.Describe(city))
	}
}
