package dataset

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"BikeShare/internal/trip"

	"github.com/schollz/progressbar/v3"
)

// Column names of the city exports
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// ErrMissingColumn is returned when a required column is absent
var ErrMissingColumn = errors.New("missing column")

var required = []string{ColStartTime, ColEndTime, ColStartStation, ColEndStation, ColUserType}

// decode converts raw records into a trip table. Progress is drawn on w
func decode(rec Records, label string, w io.Writer) (*trip.Table, error) {
	idx := make(map[string]int, len(rec.Header))
	for i, h := range rec.Header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	genderCol, hasGender := idx[ColGender]
	birthCol, hasBirth := idx[ColBirthYear]
	cols := trip.Columns{Gender: hasGender, BirthYear: hasBirth}

	if len(rec.Rows) == 0 {
		return trip.NewTable(nil, cols), nil
	}

	if w == nil {
		w = io.Discard
	}
	bar := progressbar.NewOptions(len(rec.Rows),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("loading "+label),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)

	cell := func(row []string, i int) string {
		if i >= len(row) {
			return ""
		}
		return missing(row[i])
	}

	rows := make([]trip.Trip, 0, len(rec.Rows))
	for n, row := range rec.Rows {
		start, err := trip.ParseTime(cell(row, idx[ColStartTime]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", n+1, ColStartTime, err)
		}
		end, err := trip.ParseTime(cell(row, idx[ColEndTime]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %s: %w", n+1, ColEndTime, err)
		}

		t := trip.Trip{
			Start:        start,
			End:          end,
			StartStation: cell(row, idx[ColStartStation]),
			EndStation:   cell(row, idx[ColEndStation]),
			UserType:     cell(row, idx[ColUserType]),
		}
		if hasGender {
			t.Gender = cell(row, genderCol)
		}
		if hasBirth {
			if v := cell(row, birthCol); v != "" {
				f, err := strconv.ParseFloat(v, 64)
				if err != nil {
					return nil, fmt.Errorf("row %d: %s: %w", n+1, ColBirthYear, err)
				}
				t.BirthYear = int(f)
			}
		}
		rows = append(rows, t)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return trip.NewTable(rows, cols), nil
}

// missing normalises the empty markers a dataframe or database may produce
func missing(v string) string {
	v = strings.TrimSpace(v)
	switch v {
	case "NaN", "NA", "<nil>":
		return ""
	}
	return v
}
