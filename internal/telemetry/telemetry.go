package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

const (
	serviceName    = "bikeshare"
	serviceVersion = "1.0.0"
)

func rotating(logDir, name string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir, name),
		MaxSize:    10, // 10 MB
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}

// InitLogger initializes structured logging with rotation.
// Logs go to <logDir>/bikeshare.log only; stdout carries the reports
func InitLogger(logDir string, debug bool) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile := rotating(logDir, "bikeshare.log")

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)

	cleanup := func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}

// Providers own the exporters writing traces and metrics to rotating files
type Providers struct {
	Tracer trace.Tracer
	Meter  metric.Meter

	tp    *sdktrace.TracerProvider
	mp    *sdkmetric.MeterProvider
	files []*lumberjack.Logger
}

// InitTelemetry sets up OpenTelemetry tracing and metrics under logDir.
// Spans go to bikeshare_traces.log; metrics are flushed to
// bikeshare_metrics.log every 10 seconds and on shutdown
func InitTelemetry(ctx context.Context, logDir string) (trace.Tracer, metric.Meter, func(), error) {
	p, err := NewProviders(ctx, logDir, 10*time.Second)
	if err != nil {
		return nil, nil, nil, err
	}
	otel.SetTracerProvider(p.tp)
	otel.SetMeterProvider(p.mp)
	return p.Tracer, p.Meter, p.Shutdown, nil
}

// NewProviders builds trace and meter providers without touching the otel globals
func NewProviders(ctx context.Context, logDir string, interval time.Duration) (*Providers, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	p := &Providers{}

	spans, err := stdouttrace.New(stdouttrace.WithWriter(p.open(logDir, "bikeshare_traces.log")))
	if err != nil {
		p.closeFiles()
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	points, err := stdoutmetric.New(stdoutmetric.WithWriter(p.open(logDir, "bikeshare_metrics.log")))
	if err != nil {
		p.closeFiles()
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	p.tp = sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	p.mp = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(points, sdkmetric.WithInterval(interval))),
		sdkmetric.WithResource(res),
	)
	p.Tracer = p.tp.Tracer(serviceName)
	p.Meter = p.mp.Meter(serviceName)
	return p, nil
}

func (p *Providers) open(logDir, name string) *lumberjack.Logger {
	f := rotating(logDir, name)
	p.files = append(p.files, f)
	return f
}

func (p *Providers) closeFiles() {
	for _, f := range p.files {
		if err := f.Close(); err != nil {
			slog.Error("failed to close telemetry file", "file", f.Filename, "error", err)
		}
	}
	p.files = nil
}

// Shutdown flushes pending spans and metrics, then closes the files
func (p *Providers) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := p.tp.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown tracer provider", "error", err)
	}
	if err := p.mp.Shutdown(ctx); err != nil {
		slog.Error("failed to shutdown meter provider", "error", err)
	}
	p.closeFiles()
}
