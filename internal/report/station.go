package report

import (
	"io"

	"BikeShare/internal/trip"
)

// Pair is a start/end station combination
type Pair struct {
	Start string
	End   string
}

func (p Pair) String() string {
	return p.Start + " and " + p.End
}

// StationStats holds the most popular stations and trip
type StationStats struct {
	Rows  int
	Start string
	End   string
	Trip  Pair
}

// Stations finds the most used start station, end station and combination.
// Pairs are keyed structurally so station names containing " and " cannot
// collide. Blank station names are skipped, and a pair needs both ends
func Stations(tbl *trip.Table) StationStats {
	starts := newCounter[string]()
	ends := newCounter[string]()
	pairs := newCounter[Pair]()

	tbl.Each(func(t trip.Trip) {
		if t.StartStation != "" {
			starts.add(t.StartStation)
		}
		if t.EndStation != "" {
			ends.add(t.EndStation)
		}
		if t.StartStation != "" && t.EndStation != "" {
			pairs.add(Pair{Start: t.StartStation, End: t.EndStation})
		}
	})

	st := StationStats{Rows: tbl.Len()}
	st.Start, _, _ = starts.mode()
	st.End, _, _ = ends.mode()
	st.Trip, _, _ = pairs.mode()
	return st
}

// Render prints the station block
func (s StationStats) Render(w io.Writer) {
	line(w, "Most Commonly Used Start Station", orNoData(s.Start))
	line(w, "Most Commonly Used End Station", orNoData(s.End))
	if s.Trip == (Pair{}) {
		line(w, "Most Frequent Combination of Start Station and End Station Trip", noData)
		return
	}
	line(w, "Most Frequent Combination of Start Station and End Station Trip", s.Trip)
}

func orNoData(v string) string {
	if v == "" {
		return noData
	}
	return v
}
