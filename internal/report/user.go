package report

import (
	"fmt"
	"io"
	"sort"

	"BikeShare/internal/trip"
)

// BirthYears summarises the known birth years
type BirthYears struct {
	Known    int
	Earliest int
	Latest   int
	Common   int
}

// UserStats holds user type, gender and birth year statistics. Gender and
// birth year are only filled when the source has those columns
type UserStats struct {
	Rows         int
	UserTypes    []Count
	HasGender    bool
	Genders      []Count
	HasBirthYear bool
	BirthYears   BirthYears
}

// Users counts user types, genders and birth years. Blank values are not
// counted
func Users(tbl *trip.Table) UserStats {
	types := newCounter[string]()
	genders := newCounter[string]()
	years := newCounter[int]()
	by := BirthYears{}

	tbl.Each(func(t trip.Trip) {
		if t.UserType != "" {
			types.add(t.UserType)
		}
		if t.Gender != "" {
			genders.add(t.Gender)
		}
		if t.BirthYear == 0 {
			return
		}
		years.add(t.BirthYear)
		if by.Known == 0 || t.BirthYear < by.Earliest {
			by.Earliest = t.BirthYear
		}
		if by.Known == 0 || t.BirthYear > by.Latest {
			by.Latest = t.BirthYear
		}
		by.Known++
	})

	st := UserStats{
		Rows:         tbl.Len(),
		UserTypes:    stringCounts(types, types.byCount()),
		HasGender:    tbl.HasGender(),
		HasBirthYear: tbl.HasBirthYear(),
	}
	if st.HasGender {
		keys := append([]string(nil), genders.order...)
		sort.Strings(keys)
		st.Genders = stringCounts(genders, keys)
	}
	if st.HasBirthYear {
		by.Common, _, _ = years.mode()
		st.BirthYears = by
	}
	return st
}

// Render prints the user block. Missing optional columns print nothing
func (s UserStats) Render(w io.Writer) {
	fmt.Fprintln(w, "Count of User Type:")
	writeCounts(w, s.UserTypes)

	if s.HasGender {
		fmt.Fprintln(w, "Count of Gender:")
		writeCounts(w, s.Genders)
	}

	if !s.HasBirthYear {
		return
	}
	if s.BirthYears.Known == 0 {
		line(w, "Earliest Birth Year", noData)
		line(w, "Most Recent Birth Year", noData)
		line(w, "Most Common Birth Year", noData)
		return
	}
	line(w, "Earliest Birth Year", s.BirthYears.Earliest)
	line(w, "Most Recent Birth Year", s.BirthYears.Latest)
	line(w, "Most Common Birth Year", s.BirthYears.Common)
}

func writeCounts(w io.Writer, counts []Count) {
	if len(counts) == 0 {
		fmt.Fprintf(w, "  %s\n", noData)
		return
	}
	width := 0
	for _, c := range counts {
		if len(c.Value) > width {
			width = len(c.Value)
		}
	}
	for _, c := range counts {
		fmt.Fprintf(w, "  %-*s %d\n", width, c.Value, c.N)
	}
}
