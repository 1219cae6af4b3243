// Package dataset loads city trip logs and applies the month/day filters
package dataset

import (
	"context"
	"fmt"

	"BikeShare/internal/config"
)

// Records is a header row plus string cells, as read from a source
type Records struct {
	Header []string
	Rows   [][]string
}

// Reader reads the raw trip log of one city
type Reader interface {
	// Read returns every row for the city. A missing backing file or table
	// is reported with an error wrapping os.ErrNotExist
	Read(ctx context.Context, city string) (Records, error)

	// Close releases the underlying source
	Close() error

	// Describe names where a city's data comes from, for display
	Describe(city string) string
}

// NewReader returns the Reader selected by cfg.Source
func NewReader(cfg config.Config) (Reader, error) {
	switch cfg.Source {
	case config.SourceCSV:
		return NewCSVReader(cfg), nil
	case config.SourceSQLite:
		return OpenSQLite(cfg.DBPath), nil
	default:
		return nil, fmt.Errorf("unknown source: %s", cfg.Source)
	}
}
