// Package report computes the descriptive statistics printed for a filtered
// trip table. Generators never modify the table they are given
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"BikeShare/internal/trip"
)

// Separator closes every report block
var Separator = strings.Repeat("-", 40)

const noData = "no data"

// Result is a computed report ready to print
type Result interface {
	Render(w io.Writer)
}

// Generator computes one report from a table
type Generator struct {
	Name  string // metric and span label
	Title string // heading printed before the block
	Run   func(*trip.Table) Result
}

// Generators returns the four reports in the order they are printed
func Generators() []Generator {
	return []Generator{
		{Name: "time", Title: "Calculating The Most Frequent Times of Travel...", Run: func(t *trip.Table) Result { return TimeOfTravel(t) }},
		{Name: "station", Title: "Calculating The Most Popular Stations and Trip...", Run: func(t *trip.Table) Result { return Stations(t) }},
		{Name: "duration", Title: "Calculating Trip Duration...", Run: func(t *trip.Table) Result { return Durations(t) }},
		{Name: "user", Title: "Calculating User Stats...", Run: func(t *trip.Table) Result { return Users(t) }},
	}
}

// Write computes g on tbl, prints its block to w and returns the wall-clock
// time spent computing and printing
func Write(w io.Writer, g Generator, tbl *trip.Table) time.Duration {
	fmt.Fprintf(w, "\n%s\n\n", g.Title)
	start := time.Now()

	g.Run(tbl).Render(w)

	elapsed := time.Since(start)
	fmt.Fprintf(w, "\nThis took %s seconds.\n", formatSeconds(elapsed))
	fmt.Fprintln(w, Separator)
	return elapsed
}

func line(w io.Writer, caption string, value interface{}) {
	fmt.Fprintf(w, "%s: %v\n", caption, value)
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}

// formatDuration prints d as "N days HH:MM:SS[.ffffff]"
func formatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	d = d.Round(time.Microsecond)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	us := (d - s*time.Second) / time.Microsecond

	out := fmt.Sprintf("%s%d days %02d:%02d:%02d", sign, days, h, m, s)
	if us > 0 {
		out += fmt.Sprintf(".%06d", us)
	}
	return out
}
