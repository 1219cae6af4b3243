package explorer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"BikeShare/internal/config"
	"BikeShare/internal/dataset"
	"BikeShare/internal/report"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

const chicagoCSV = `Start Time,End Time,Start Station,End Station,User Type,Gender,Birth Year
2017-01-01 09:00:00,2017-01-01 09:30:00,Canal St,Clark St,Subscriber,Male,1990
2017-03-06 08:15:00,2017-03-06 08:20:00,Canal St,Wells St,Subscriber,Female,1985
2017-03-07 17:00:00,2017-03-07 17:45:00,Wells St,Canal St,Customer,,
`

const washingtonCSV = `Start Time,End Time,Start Station,End Station,User Type
2017-03-06 07:00:00,2017-03-06 07:12:00,Union Station,Dupont Circle,Subscriber
`

func newTestExplorer(t *testing.T, input string, deps Deps) (*Explorer, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	for name, body := range map[string]string{"chicago.csv": chicagoCSV, "washington.csv": washingtonCSV} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	cfg := config.Default()
	cfg.DataDir = dir

	var out bytes.Buffer
	deps.In = strings.NewReader(input)
	deps.Out = &out
	e, err := New(cfg, dataset.NewCSVReader(cfg), deps)
	if err != nil {
		t.Fatalf("new explorer: %v", err)
	}
	return e, &out
}

func TestRun_SingleIteration(t *testing.T) {
	e, out := newTestExplorer(t, "chicago\nmarch\n0\nno\n", Deps{})
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	if !strings.Contains(text, "Most Common Month: march") {
		t.Errorf("filtered month should dominate:\n%s", text)
	}
	if !strings.Contains(text, "Earliest Birth Year: 1985") {
		t.Errorf("birth year section missing:\n%s", text)
	}
	// one separator after the prompts and one per report
	if n := strings.Count(text, report.Separator); n != 5 {
		t.Errorf("got %d separators, want 5", n)
	}
	if strings.Count(text, "Hello!") != 1 {
		t.Error("expected a single banner")
	}
}

func TestRun_RestartThenStop(t *testing.T) {
	input := "chicago\nall\n0\nYES\nwashington\nall\n0\nnope\n"
	e, out := newTestExplorer(t, input, Deps{})
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	text := out.String()
	if n := strings.Count(text, "Hello!"); n != 2 {
		t.Fatalf("expected 2 iterations, got %d", n)
	}
	second := text[strings.LastIndex(text, "Hello!"):]
	if strings.Contains(second, "Birth Year") {
		t.Error("washington report should not have a birth year section")
	}
}

func TestRun_EOFStops(t *testing.T) {
	e, _ := newTestExplorer(t, "chicago\n", Deps{})
	if err := e.Run(context.Background()); err != nil {
		t.Fatalf("closed input should stop cleanly, got %v", err)
	}
}

func TestRun_MissingFileIsFatal(t *testing.T) {
	e, out := newTestExplorer(t, "new york city\nall\n0\nyes\n", Deps{})
	err := e.Run(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	if strings.Contains(out.String(), "Calculating") {
		t.Error("no report should print after a failed load")
	}
}

func TestRun_MissingDatabaseFailsAtLoad(t *testing.T) {
	cfg := config.Default()
	cfg.Source = config.SourceSQLite
	cfg.DBPath = filepath.Join(t.TempDir(), "bikeshare.db")

	r, err := dataset.NewReader(cfg)
	if err != nil {
		t.Fatalf("reader: %v", err)
	}
	var out bytes.Buffer
	e, err := New(cfg, r, Deps{In: strings.NewReader("chicago\nall\n0\n"), Out: &out})
	if err != nil {
		t.Fatalf("new explorer: %v", err)
	}
	defer r.Close()

	err = e.Run(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
	if !strings.Contains(out.String(), "Hello!") {
		t.Error("prompts should run before the database is opened")
	}
}

func TestRunOnce_EmptySelection(t *testing.T) {
	e, out := newTestExplorer(t, "", Deps{})
	err := e.RunOnce(context.Background(), dataset.Selection{City: "chicago", Month: "december", Day: 0})
	if err != nil {
		t.Fatalf("run once: %v", err)
	}
	if !strings.Contains(out.String(), "no data") {
		t.Fatalf("empty selection should report no data:\n%s", out.String())
	}
}

func TestRunOnce_Telemetry(t *testing.T) {
	ctx := context.Background()
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	e, _ := newTestExplorer(t, "", Deps{Tracer: tp.Tracer("test"), Meter: mp.Meter("test")})
	if err := e.RunOnce(ctx, dataset.Selection{City: "chicago", Month: "all", Day: 0}); err != nil {
		t.Fatalf("run once: %v", err)
	}

	names := map[string]bool{}
	for _, s := range spans.Ended() {
		names[s.Name()] = true
	}
	for _, want := range []string{"session_iteration", "load_dataset", "report.time", "report.station", "report.duration", "report.user"} {
		if !names[want] {
			t.Errorf("missing span %q", want)
		}
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	found := false
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "bikeshare.report.duration" {
				continue
			}
			h, ok := m.Data.(metricdata.Histogram[float64])
			if !ok {
				t.Fatalf("unexpected data type %T", m.Data)
			}
			if len(h.DataPoints) != 4 {
				t.Errorf("expected one series per report, got %d", len(h.DataPoints))
			}
			found = true
		}
	}
	if !found {
		t.Fatal("report duration histogram not recorded")
	}
}

func TestDescribe(t *testing.T) {
	e, _ := newTestExplorer(t, "", Deps{})
	var b bytes.Buffer
	e.Describe(&b)
	text := b.String()
	for _, want := range []string{"chicago", "new_york_city.csv", "washington.csv"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
}
