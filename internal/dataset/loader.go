package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"BikeShare/internal/config"
	"BikeShare/internal/trip"
)

// Selection is one set of validated prompt answers
type Selection struct {
	City  string
	Month string // month name or config.AllMonths
	Day   int    // 0-7, see Filter for the meaning
}

// Loader reads a city's trips and applies a Selection
type Loader struct {
	reader    Reader
	legacyDay bool
	progress  io.Writer
	logger    *slog.Logger
}

// NewLoader creates a Loader. progress may be nil to hide the progress bar
func NewLoader(r Reader, cfg config.Config, progress io.Writer, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{
		reader:    r,
		legacyDay: cfg.LegacyDayFilter,
		progress:  progress,
		logger:    logger,
	}
}

// LoadAll reads every row for the city without filtering
func (l *Loader) LoadAll(ctx context.Context, city string) (*trip.Table, error) {
	rec, err := l.reader.Read(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", city, err)
	}
	tbl, err := decode(rec, city, l.progress)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", city, err)
	}
	l.logger.Debug("dataset read", "city", city, "source", l.reader.Describe(city), "rows", tbl.Len())
	return tbl, nil
}

// Load reads the city's trips and keeps the rows matching sel
func (l *Loader) Load(ctx context.Context, sel Selection) (*trip.Table, error) {
	all, err := l.LoadAll(ctx, sel.City)
	if err != nil {
		return nil, err
	}
	out := Filter(all, sel, l.legacyDay)
	l.logger.Info("dataset filtered",
		"city", sel.City, "month", sel.Month, "day", sel.Day,
		"rows_total", all.Len(), "rows_kept", out.Len())
	return out, nil
}

// Filter keeps rows whose derived month and weekday match sel, AND-combined.
//
// Month "all" keeps every month. Day 0 keeps every weekday and 1-7 select
// Monday to Sunday. With legacy set the day selector is compared directly
// against the Monday-based 0-6 index and is never skipped, so 0 means Monday
// and 7 matches nothing
func Filter(tbl *trip.Table, sel Selection, legacy bool) *trip.Table {
	byMonth := sel.Month != config.AllMonths
	byDay := legacy || sel.Day != config.AllDays
	if !byMonth && !byDay {
		return tbl
	}

	wantDay := sel.Day - 1
	if legacy {
		wantDay = sel.Day
	}

	return tbl.Where(func(t trip.Trip) bool {
		if byMonth && t.Month() != sel.Month {
			return false
		}
		if byDay && t.DayIndex() != wantDay {
			return false
		}
		return true
	})
}
