// Package trip defines bike share trip records and the read-only table the
// reports work on
package trip

import (
	"fmt"
	"strings"
	"time"
)

// Trip is a single row of a city's trip log
type Trip struct {
	Start        time.Time
	End          time.Time
	StartStation string
	EndStation   string
	UserType     string
	Gender       string // empty when unknown or not recorded
	BirthYear    int    // 0 when unknown or not recorded
}

// Month returns the lowercase English month name of the start time
func (t Trip) Month() string {
	return strings.ToLower(t.Start.Month().String())
}

// DayIndex returns the weekday of the start time with Monday = 0 and Sunday = 6
func (t Trip) DayIndex() int {
	return (int(t.Start.Weekday()) + 6) % 7
}

// Hour returns the start hour, 0-23
func (t Trip) Hour() int {
	return t.Start.Hour()
}

// Duration returns end minus start
func (t Trip) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// DayName is the English weekday for a Monday-based index
func DayName(index int) string {
	if index < 0 || index > 6 {
		return fmt.Sprintf("day %d", index)
	}
	return time.Weekday((index + 1) % 7).String()
}

// timestamp layouts seen in the city exports
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
}

// ParseTime parses a trip timestamp. Zone-less values are taken as UTC
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
