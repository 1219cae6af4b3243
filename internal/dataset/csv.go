package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"BikeShare/internal/config"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// CSVReader reads <data-dir>/<city_file>.csv
type CSVReader struct {
	cfg config.Config
}

// NewCSVReader creates a CSV-backed reader
func NewCSVReader(cfg config.Config) *CSVReader {
	return &CSVReader{cfg: cfg}
}

// Read loads the city CSV into a dataframe with every column kept as text
func (r *CSVReader) Read(ctx context.Context, city string) (Records, error) {
	path, err := r.cfg.CityFile(city)
	if err != nil {
		return Records{}, err
	}
	if err := ctx.Err(); err != nil {
		return Records{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Records{}, fmt.Errorf("open %s: %w", path, err)
	}

	// gota rejects a frame without rows, so a header-only file is answered here
	header, more, err := peekHeader(data)
	if err != nil {
		return Records{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if !more {
		return Records{Header: header}, nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{"", "NA", "NaN"}),
	)
	if df.Err != nil {
		return Records{}, fmt.Errorf("parse %s: %w", path, df.Err)
	}

	all := df.Records()
	return Records{Header: all[0], Rows: all[1:]}, nil
}

// peekHeader returns the first record and whether any record follows it
func peekHeader(data []byte) ([]string, bool, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, false, errors.New("no header")
	}
	if err != nil {
		return nil, false, err
	}
	_, err = cr.Read()
	if errors.Is(err, io.EOF) {
		return header, false, nil
	}
	return header, true, nil
}

// Describe returns the CSV path for the city
func (r *CSVReader) Describe(city string) string {
	path, err := r.cfg.CityFile(city)
	if err != nil {
		return err.Error()
	}
	return path
}

// Close is a no-op; files are opened per read
func (r *CSVReader) Close() error {
	return nil
}
