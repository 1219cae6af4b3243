package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// AllMonths disables the month filter
const AllMonths = "all"

// AllDays disables the day filter unless the legacy filter is enabled
const AllDays = 0

// Day selector bounds accepted at the prompt
const (
	MinDay = 0
	MaxDay = 7
)

// ErrUnknownCity is returned for a city outside the supported set
var ErrUnknownCity = errors.New("unknown city")

var cities = [...]string{"chicago", "new york city", "washington"}

var months = [...]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// Cities returns the supported city names in prompt order
func Cities() []string {
	out := make([]string, len(cities))
	copy(out, cities[:])
	return out
}

// IsCity reports whether name is a supported city
func IsCity(name string) bool {
	for _, c := range cities {
		if c == name {
			return true
		}
	}
	return false
}

// IsMonthSelector reports whether s is a month name or "all"
func IsMonthSelector(s string) bool {
	if s == AllMonths {
		return true
	}
	for _, m := range months {
		if m == s {
			return true
		}
	}
	return false
}

// IsDaySelector reports whether d is within the accepted day range
func IsDaySelector(d int) bool {
	return d >= MinDay && d <= MaxDay
}

// TableName maps a city to its file stem: "new york city" -> "new_york_city"
func TableName(city string) (string, error) {
	if !IsCity(city) {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	return strings.ReplaceAll(strings.ToLower(city), " ", "_"), nil
}

// CityFile resolves the CSV file backing a city under the data directory
func (c Config) CityFile(city string) (string, error) {
	name, err := TableName(city)
	if err != nil {
		return "", err
	}
	return filepath.Join(c.DataDir, name+".csv"), nil
}
