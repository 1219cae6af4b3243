package report

import (
	"io"

	"BikeShare/internal/trip"
)

// TimeStats holds the most frequent times of travel
type TimeStats struct {
	Rows  int
	Month string
	Day   int // Monday = 0
	Hour  int
}

// TimeOfTravel finds the most common month, weekday and start hour
func TimeOfTravel(tbl *trip.Table) TimeStats {
	months := newCounter[string]()
	days := newCounter[int]()
	hours := newCounter[int]()

	tbl.Each(func(t trip.Trip) {
		months.add(t.Month())
		days.add(t.DayIndex())
		hours.add(t.Hour())
	})

	st := TimeStats{Rows: tbl.Len()}
	st.Month, _, _ = months.mode()
	st.Day, _, _ = days.mode()
	st.Hour, _, _ = hours.mode()
	return st
}

// Render prints the time block
func (s TimeStats) Render(w io.Writer) {
	if s.Rows == 0 {
		line(w, "Most Common Month", noData)
		line(w, "Most Common Day of Week", noData)
		line(w, "Most Common Start Hour", noData)
		return
	}
	line(w, "Most Common Month", s.Month)
	line(w, "Most Common Day of Week", trip.DayName(s.Day))
	line(w, "Most Common Start Hour", s.Hour)
}
