package report

import (
	"io"
	"time"

	"BikeShare/internal/trip"
)

// DurationStats holds total and mean travel time
type DurationStats struct {
	Rows  int
	Total time.Duration
	Mean  time.Duration
}

// Durations sums end minus start over all rows
func Durations(tbl *trip.Table) DurationStats {
	st := DurationStats{Rows: tbl.Len()}
	tbl.Each(func(t trip.Trip) {
		st.Total += t.Duration()
	})
	if st.Rows > 0 {
		st.Mean = st.Total / time.Duration(st.Rows)
	}
	return st
}

// Render prints the duration block
func (s DurationStats) Render(w io.Writer) {
	if s.Rows == 0 {
		line(w, "Total Travel Time", noData)
		line(w, "Mean Travel Time", noData)
		return
	}
	line(w, "Total Travel Time", formatDuration(s.Total))
	line(w, "Mean Travel Time", formatDuration(s.Mean))
}
